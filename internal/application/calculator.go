// Copyright 2025 CZD Tech
// Licensed under the Apache License, Version 2.0

package application

import (
	"errors"
	"fmt"
	"time"
)

// Calculator composes the sun-event service and the scheduler behind a
// memoization cache. Equivalent requests (same local calendar day,
// coordinates rounded to four decimals, same timezone) share one entry;
// the caller owns invalidation through ClearCache.
type Calculator struct {
	sun   SunEventService
	cache ScheduleCache
}

func NewCalculator(sun SunEventService, cache ScheduleCache) *Calculator {
	return &Calculator{
		sun:   sun,
		cache: cache,
	}
}

// Calculate produces the schedule for the local calendar day containing
// at, as observed in the named timezone. The host timezone never leaks
// into the result: the calendar day and weekday are resolved by
// projecting at through timezone's offset rules.
func (c *Calculator) Calculate(at time.Time, lat float64, lon float64, timezone string) (*CalculationResult, error) {
	loc, err := validate(lat, lon, timezone)
	if err != nil {
		return nil, err
	}

	local := at.In(loc)
	date := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return c.calculate(date, lat, lon)
}

// CalculateDate is Calculate for an explicit "2006-01-02" calendar date.
func (c *Calculator) CalculateDate(dateStr string, lat float64, lon float64, timezone string) (*CalculationResult, error) {
	loc, err := validate(lat, lon, timezone)
	if err != nil {
		return nil, err
	}

	date, err := time.ParseInLocation(time.DateOnly, dateStr, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", dateStr, err)
	}
	return c.calculate(date, lat, lon)
}

func (c *Calculator) calculate(date time.Time, lat float64, lon float64) (*CalculationResult, error) {
	key := cacheKey(date.Format(time.DateOnly), lat, lon, date.Location().String())
	if cached, ok := c.cache.Get(key); ok {
		return cached, nil
	}

	events, err := c.sun.ComputeSunEvents(date, lat, lon)
	if err != nil {
		return nil, err
	}

	result, err := BuildSchedule(events, date, lat, lon)
	if err != nil {
		return nil, err
	}

	c.cache.Set(key, result)
	return result, nil
}

// CurrentHour resolves the planetary day containing at and the hour
// within it. An instant before the civil date's sunrise belongs to the
// previous date's night hours, so that schedule is consulted as well.
// ok is false when no computed schedule covers at; the civil date's
// schedule is still returned for rendering.
func (c *Calculator) CurrentHour(at time.Time, lat float64, lon float64, timezone string) (*CalculationResult, PlanetaryHour, bool, error) {
	result, err := c.Calculate(at, lat, lon, timezone)
	if err != nil {
		return nil, PlanetaryHour{}, false, err
	}

	if hour, ok := result.CurrentHour(at); ok {
		return result, hour, true, nil
	}

	if at.Before(result.Sunrise) {
		local := at.In(result.Location())
		prevDate := time.Date(local.Year(), local.Month(), local.Day()-1, 0, 0, 0, 0, result.Location())
		prev, err := c.calculate(prevDate, lat, lon)
		switch {
		case errors.Is(err, ErrScheduleUnavailable):
			// The previous day has no schedule; fall through to not-found.
		case err != nil:
			return nil, PlanetaryHour{}, false, err
		default:
			if hour, ok := prev.CurrentHour(at); ok {
				return prev, hour, true, nil
			}
		}
	}

	return result, PlanetaryHour{}, false, nil
}

// ClearCache drops every memoized schedule.
func (c *Calculator) ClearCache() {
	c.cache.Clear()
}

func validate(lat float64, lon float64, timezone string) (*time.Location, error) {
	if lat < -90 || lat > 90 {
		return nil, fmt.Errorf("latitude %v out of range [-90, 90]", lat)
	}
	if lon < -180 || lon > 180 {
		return nil, fmt.Errorf("longitude %v out of range [-180, 180]", lon)
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return loc, nil
}

// cacheKey normalizes a request: calendar day, fixed-precision coordinates
// (four decimals, roughly 11 m), timezone name.
func cacheKey(date string, lat float64, lon float64, timezone string) string {
	return fmt.Sprintf("%s|%.4f|%.4f|%s", date, lat, lon, timezone)
}
