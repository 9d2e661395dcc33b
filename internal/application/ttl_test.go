package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTTLShrinksTowardTransition(t *testing.T) {
	result := buildTestSchedule(t, "UTC", 2025, time.June, 14)
	policy := DefaultTTLPolicy()

	hour := result.Hours[0]

	tests := []struct {
		name string
		at   time.Time
		want int
	}{
		{"hour start", hour.Start, int(policy.Ceiling / time.Second)},
		{"mid hour", hour.Start.Add(30 * time.Minute), 918},
		{"sensitive period", hour.End.Add(-4 * time.Minute), 120},
		{"below floor", hour.End.Add(-30 * time.Second), 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ttl := policy.Calculate(result, tt.at)
			assert.Equal(t, tt.want, ttl.TTLSeconds)
			assert.Equal(t, hour.End.Sub(tt.at).Milliseconds(), ttl.RemainingMs)
		})
	}
}

func TestTTLMonotonicity(t *testing.T) {
	result := buildTestSchedule(t, "UTC", 2025, time.June, 14)
	policy := DefaultTTLPolicy()

	hour := result.Hours[0]

	var lastRemaining int64 = 1 << 62
	lastTTL := 1 << 30
	for at := hour.Start; at.Before(hour.End); at = at.Add(47 * time.Second) {
		ttl := policy.Calculate(result, at)

		assert.Less(t, ttl.RemainingMs, lastRemaining, "remaining must strictly decrease")
		assert.LessOrEqual(t, ttl.TTLSeconds, lastTTL, "TTL must not increase as the transition nears")

		remainingSeconds := int(ttl.RemainingMs / 1000)
		if ttl.Sensitive {
			assert.LessOrEqual(t, ttl.TTLSeconds, remainingSeconds+1,
				"sensitive TTL is bounded by the remaining time")
		}

		lastRemaining = ttl.RemainingMs
		lastTTL = ttl.TTLSeconds
	}
}

func TestTTLSensitiveFlag(t *testing.T) {
	result := buildTestSchedule(t, "UTC", 2025, time.June, 14)
	policy := DefaultTTLPolicy()

	hour := result.Hours[5]

	calm := policy.Calculate(result, hour.End.Add(-10*time.Minute))
	assert.False(t, calm.Sensitive)

	tight := policy.Calculate(result, hour.End.Add(-90*time.Second))
	assert.True(t, tight.Sensitive)
}

func TestTTLOutsideScheduleUsesDefault(t *testing.T) {
	result := buildTestSchedule(t, "UTC", 2025, time.June, 14)
	policy := DefaultTTLPolicy()

	ttl := policy.Calculate(result, result.Sunrise.Add(-time.Hour))
	assert.True(t, ttl.Sensitive)
	assert.Equal(t, int(policy.Default/time.Second), ttl.TTLSeconds)
	assert.Zero(t, ttl.RemainingMs)
}

func TestTTLNeverBelowOneSecond(t *testing.T) {
	result := buildTestSchedule(t, "UTC", 2025, time.June, 14)
	policy := DefaultTTLPolicy()

	hour := result.Hours[0]
	ttl := policy.Calculate(result, hour.End.Add(-200*time.Millisecond))
	require.GreaterOrEqual(t, ttl.TTLSeconds, 1)
	assert.True(t, ttl.Sensitive)
}
