// Copyright 2025 CZD Tech
// Licensed under the Apache License, Version 2.0

package application

import "time"

// TTLCalculationResult is the recommended cache freshness for a schedule
// at one reference instant. It is recomputed per "now" and never stored.
type TTLCalculationResult struct {
	RemainingMs int64 `json:"remainingMs"` // until the current hour ends
	Sensitive   bool  `json:"sensitive"`   // near a transition; cached data soon shows the wrong hour
	TTLSeconds  int   `json:"ttlSeconds"`
}

// TTLPolicy holds the freshness tunables. The values are configuration,
// not contract; Calculate keeps the TTL monotonic in the remaining time
// and bounded by it, whatever the tunables are.
type TTLPolicy struct {
	Floor              time.Duration
	Ceiling            time.Duration
	SensitiveThreshold time.Duration
	Default            time.Duration // used when now is outside the schedule
}

func DefaultTTLPolicy() TTLPolicy {
	return TTLPolicy{
		Floor:              time.Minute,
		Ceiling:            30 * time.Minute,
		SensitiveThreshold: 5 * time.Minute,
		Default:            time.Minute,
	}
}

// Calculate recommends a cache lifetime for result as of now.
//
// The TTL is half the remaining time clamped to [Floor, Ceiling], then
// capped by the remaining time itself, so a cached response expires at or
// before the hour transition and never extends as the transition nears.
// An instant outside the schedule gets the conservative default and is
// flagged sensitive.
func (p TTLPolicy) Calculate(result *CalculationResult, now time.Time) TTLCalculationResult {
	hour, ok := result.CurrentHour(now)
	if !ok {
		return TTLCalculationResult{
			RemainingMs: 0,
			Sensitive:   true,
			TTLSeconds:  int(p.Default / time.Second),
		}
	}

	remaining := hour.End.Sub(now)

	ttl := remaining / 2
	if ttl < p.Floor {
		ttl = p.Floor
	}
	if ttl > p.Ceiling {
		ttl = p.Ceiling
	}
	if ttl > remaining {
		ttl = remaining
	}

	seconds := int(ttl / time.Second)
	if seconds < 1 {
		seconds = 1
	}

	return TTLCalculationResult{
		RemainingMs: remaining.Milliseconds(),
		Sensitive:   remaining < p.SensitiveThreshold,
		TTLSeconds:  seconds,
	}
}
