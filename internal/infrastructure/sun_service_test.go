package infrastructure

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/czdtech/planetary-hours/internal/application"
)

func localDate(t *testing.T, timezone string, year int, month time.Month, day int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation(timezone)
	require.NoError(t, err)
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func TestComputeSunEventsMidLatitudes(t *testing.T) {
	srv := NewSunEventService()

	tests := []struct {
		name       string
		timezone   string
		year       int
		month      time.Month
		day        int
		lat, lon   float64
		minDaySpan time.Duration
		maxDaySpan time.Duration
	}{
		{
			name:     "new york midsummer",
			timezone: "America/New_York",
			year:     2025, month: time.June, day: 14,
			lat: 40.7128, lon: -74.0060,
			minDaySpan: 14 * time.Hour,
			maxDaySpan: 16 * time.Hour,
		},
		{
			name:     "sydney midwinter",
			timezone: "Australia/Sydney",
			year:     2025, month: time.June, day: 14,
			lat: -33.8688, lon: 151.2093,
			minDaySpan: 9 * time.Hour,
			maxDaySpan: 11 * time.Hour,
		},
		{
			name:     "equator",
			timezone: "UTC",
			year:     2025, month: time.March, day: 20,
			lat: 0, lon: 0,
			minDaySpan: 11*time.Hour + 30*time.Minute,
			maxDaySpan: 12*time.Hour + 30*time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date := localDate(t, tt.timezone, tt.year, tt.month, tt.day)
			events, err := srv.ComputeSunEvents(date, tt.lat, tt.lon)
			require.NoError(t, err)

			assert.True(t, events.Sunrise.Before(events.Sunset))
			assert.True(t, events.Sunset.Before(events.NextSunrise))

			daySpan := events.Sunset.Sub(events.Sunrise)
			assert.GreaterOrEqual(t, daySpan, tt.minDaySpan)
			assert.LessOrEqual(t, daySpan, tt.maxDaySpan)

			// Sunrise belongs to the requested local calendar day.
			assert.Equal(t, date.Format(time.DateOnly),
				events.Sunrise.In(date.Location()).Format(time.DateOnly))

			// Successive sunrises are about a solar day apart.
			gap := events.NextSunrise.Sub(events.Sunrise)
			assert.InDelta(t, float64(24*time.Hour), float64(gap), float64(15*time.Minute))

			// Millisecond precision throughout.
			for _, instant := range []time.Time{events.Sunrise, events.Sunset, events.NextSunrise} {
				assert.True(t, instant.Equal(instant.Truncate(time.Millisecond)))
			}
		})
	}
}

func TestComputeSunEventsPolarConditions(t *testing.T) {
	srv := NewSunEventService()

	tests := []struct {
		name     string
		timezone string
		year     int
		month    time.Month
		day      int
		lat, lon float64
	}{
		{"polar day", "UTC", 2025, time.June, 14, 82.5, 0},
		{"polar night", "Europe/Oslo", 2025, time.December, 21, 69.6, 18.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date := localDate(t, tt.timezone, tt.year, tt.month, tt.day)
			_, err := srv.ComputeSunEvents(date, tt.lat, tt.lon)
			assert.ErrorIs(t, err, application.ErrScheduleUnavailable)
		})
	}
}

func TestComputeSunEventsUnavailableNearPolarBoundary(t *testing.T) {
	// Polar conditions must surface as unavailable through the whole
	// calculation, never as a schedule with degenerate intervals.
	srv := NewSunEventService()
	cache := NewMemoryCache()
	calc := application.NewCalculator(srv, cache)

	result, err := calc.CalculateDate("2025-06-14", 82.5, 0, "UTC")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, application.ErrScheduleUnavailable)
}
