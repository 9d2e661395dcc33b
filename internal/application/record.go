// Copyright 2025 CZD Tech
// Licensed under the Apache License, Version 2.0

package application

import (
	"fmt"
	"time"
)

// instantLayout renders instants without precision loss; sun events are
// millisecond-truncated at the source, so parse-back is exact.
const instantLayout = time.RFC3339Nano

// HourRecord is the wire form of one planetary hour.
type HourRecord struct {
	Ordinal int    `json:"ordinal"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Ruler   string `json:"ruler"`
	IsDay   bool   `json:"isDay"`
}

// Record is the plain, serializable form of a CalculationResult.
type Record struct {
	Date        string       `json:"date"`
	Latitude    float64      `json:"latitude"`
	Longitude   float64      `json:"longitude"`
	Timezone    string       `json:"timezone"`
	Sunrise     string       `json:"sunrise"`
	Sunset      string       `json:"sunset"`
	NextSunrise string       `json:"nextSunrise"`
	DayRuler    string       `json:"dayRuler"`
	Hours       []HourRecord `json:"hours"`
}

// Record converts the schedule to its plain serializable form.
func (r *CalculationResult) Record() Record {
	rec := Record{
		Date:        r.Date,
		Latitude:    r.Latitude,
		Longitude:   r.Longitude,
		Timezone:    r.Timezone,
		Sunrise:     r.Sunrise.Format(instantLayout),
		Sunset:      r.Sunset.Format(instantLayout),
		NextSunrise: r.NextSunrise.Format(instantLayout),
		DayRuler:    string(r.DayRuler),
		Hours:       make([]HourRecord, 0, len(r.Hours)),
	}
	for _, h := range r.Hours {
		rec.Hours = append(rec.Hours, HourRecord{
			Ordinal: h.Ordinal,
			Start:   h.Start.Format(instantLayout),
			End:     h.End.Format(instantLayout),
			Ruler:   string(h.Ruler),
			IsDay:   h.IsDay,
		})
	}
	return rec
}

// ParseRecord reconstructs a CalculationResult from its plain form.
func ParseRecord(rec Record) (*CalculationResult, error) {
	loc, err := time.LoadLocation(rec.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", rec.Timezone, err)
	}
	if len(rec.Hours) != 24 {
		return nil, fmt.Errorf("expected 24 hours, got %d", len(rec.Hours))
	}

	result := &CalculationResult{
		Date:      rec.Date,
		Latitude:  rec.Latitude,
		Longitude: rec.Longitude,
		Timezone:  rec.Timezone,
		DayRuler:  Planet(rec.DayRuler),
		loc:       loc,
	}

	if result.Sunrise, err = parseInstant(rec.Sunrise, loc); err != nil {
		return nil, err
	}
	if result.Sunset, err = parseInstant(rec.Sunset, loc); err != nil {
		return nil, err
	}
	if result.NextSunrise, err = parseInstant(rec.NextSunrise, loc); err != nil {
		return nil, err
	}

	for i, h := range rec.Hours {
		start, err := parseInstant(h.Start, loc)
		if err != nil {
			return nil, err
		}
		end, err := parseInstant(h.End, loc)
		if err != nil {
			return nil, err
		}
		result.Hours[i] = PlanetaryHour{
			Ordinal: h.Ordinal,
			Start:   start,
			End:     end,
			Ruler:   Planet(h.Ruler),
			IsDay:   h.IsDay,
		}
	}

	return result, nil
}

func parseInstant(s string, loc *time.Location) (time.Time, error) {
	t, err := time.Parse(instantLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid instant %q: %w", s, err)
	}
	return t.In(loc), nil
}

// FormatClock renders an instant as a clock string in the given timezone.
func FormatClock(t time.Time, loc *time.Location, twentyFour bool) string {
	if twentyFour {
		return t.In(loc).Format("15:04")
	}
	return t.In(loc).Format("3:04 PM")
}

// FormatRange renders the hour's interval as clock strings in loc.
func (h PlanetaryHour) FormatRange(loc *time.Location, twentyFour bool) string {
	return fmt.Sprintf("%s - %s", FormatClock(h.Start, loc, twentyFour), FormatClock(h.End, loc, twentyFour))
}
