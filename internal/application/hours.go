// Copyright 2025 CZD Tech
// Licensed under the Apache License, Version 2.0

package application

import (
	"errors"
	"fmt"
	"time"
)

// ErrScheduleUnavailable marks the expected high-latitude outcome: the sun
// never crosses the horizon during the relevant window, so no schedule can
// be produced. It is a normal domain result, not a system fault; callers
// check it with errors.Is and must not retry.
var ErrScheduleUnavailable = errors.New("planetary hours are not available for this location and date")

// PlanetaryHour is one of the 24 unequal hours of a planetary day.
// The interval is half-open: an instant equal to End belongs to the next
// hour, never to both.
type PlanetaryHour struct {
	Ordinal int // 1..24; 1..12 day, 13..24 night
	Start   time.Time
	End     time.Time
	Ruler   Planet
	IsDay   bool
}

// Contains reports whether at falls inside the hour under the half-open rule.
func (h PlanetaryHour) Contains(at time.Time) bool {
	return !at.Before(h.Start) && at.Before(h.End)
}

// Duration returns the length of the hour.
func (h PlanetaryHour) Duration() time.Duration {
	return h.End.Sub(h.Start)
}

// CalculationResult is the complete planetary-hour schedule for one
// location and local calendar day. It is constructed atomically by
// BuildSchedule and never mutated afterwards.
type CalculationResult struct {
	Date        string // local calendar date, "2006-01-02"
	Latitude    float64
	Longitude   float64
	Timezone    string
	Sunrise     time.Time
	Sunset      time.Time
	NextSunrise time.Time
	DayRuler    Planet
	Hours       [24]PlanetaryHour

	loc *time.Location
}

// Location returns the timezone the schedule was computed for.
func (r *CalculationResult) Location() *time.Location {
	return r.loc
}

// BuildSchedule partitions [sunrise, sunset) into twelve equal day hours
// and [sunset, nextSunrise) into twelve equal night hours, assigning
// rulers from the weekday ruler of date (as observed in date's location)
// through the Chaldean rotation without interruption across the day/night
// boundary.
func BuildSchedule(events SunEvents, date time.Time, lat float64, lon float64) (*CalculationResult, error) {
	if !events.Sunrise.Before(events.Sunset) || !events.Sunset.Before(events.NextSunrise) {
		return nil, fmt.Errorf("sun events out of order: sunrise=%v sunset=%v nextSunrise=%v",
			events.Sunrise, events.Sunset, events.NextSunrise)
	}

	loc := date.Location()
	ruler := DayRuler(date.In(loc).Weekday())

	result := &CalculationResult{
		Date:        date.In(loc).Format(time.DateOnly),
		Latitude:    lat,
		Longitude:   lon,
		Timezone:    loc.String(),
		Sunrise:     events.Sunrise,
		Sunset:      events.Sunset,
		NextSunrise: events.NextSunrise,
		DayRuler:    ruler,
		loc:         loc,
	}

	daySpan := events.Sunset.Sub(events.Sunrise)
	nightSpan := events.NextSunrise.Sub(events.Sunset)

	for i := 0; i < 12; i++ {
		// Multiply before dividing so the twelfth hour ends exactly at
		// sunset regardless of span divisibility.
		result.Hours[i] = PlanetaryHour{
			Ordinal: i + 1,
			Start:   events.Sunrise.Add(time.Duration(i) * daySpan / 12),
			End:     events.Sunrise.Add(time.Duration(i+1) * daySpan / 12),
			Ruler:   advance(ruler, i),
			IsDay:   true,
		}
	}
	for i := 0; i < 12; i++ {
		result.Hours[12+i] = PlanetaryHour{
			Ordinal: 13 + i,
			Start:   events.Sunset.Add(time.Duration(i) * nightSpan / 12),
			End:     events.Sunset.Add(time.Duration(i+1) * nightSpan / 12),
			Ruler:   advance(ruler, 12+i),
			IsDay:   false,
		}
	}

	return result, nil
}

// CurrentHour returns the hour containing at, or false when at lies
// outside [sunrise, nextSunrise). A false return means the schedule
// exists but does not cover the instant; it is distinct from
// ErrScheduleUnavailable.
func (r *CalculationResult) CurrentHour(at time.Time) (PlanetaryHour, bool) {
	for _, h := range r.Hours {
		if h.Contains(at) {
			return h, true
		}
	}
	return PlanetaryHour{}, false
}
