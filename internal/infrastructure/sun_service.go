// Copyright 2025 CZD Tech
// Licensed under the Apache License, Version 2.0

package infrastructure

import (
	"fmt"
	"time"

	"github.com/czdtech/planetary-hours/internal/application"
	"github.com/nathan-osman/go-sunrise"
	"github.com/rs/zerolog/log"
	"github.com/sixdouglas/suncalc"
)

type sunEventService struct {
}

func NewSunEventService() application.SunEventService {
	return &sunEventService{}
}

// ComputeSunEvents resolves sunrise and sunset for the local calendar day
// of date plus the following day's sunrise. All returned instants are
// absolute and millisecond-truncated; local day boundaries come from
// date's own location, never from the host timezone.
func (s *sunEventService) ComputeSunEvents(date time.Time, lat float64, lon float64) (application.SunEvents, error) {
	loc := date.Location()
	local := date.In(loc)

	rise, set, err := s.calc(local, lat, lon)
	if err != nil {
		return application.SunEvents{}, err
	}

	nextRise, _, err := s.calc(local.AddDate(0, 0, 1), lat, lon)
	if err != nil {
		return application.SunEvents{}, err
	}

	events := application.SunEvents{
		Sunrise:     rise,
		Sunset:      set,
		NextSunrise: nextRise,
	}
	if !events.Sunrise.Before(events.Sunset) || !events.Sunset.Before(events.NextSunrise) {
		log.Debug().
			Float64("lat", lat).Float64("lon", lon).
			Str("date", local.Format(time.DateOnly)).
			Msg("sun events out of order, treating as unavailable")
		return application.SunEvents{}, application.ErrScheduleUnavailable
	}

	return events, nil
}

// calc computes sunrise and sunset for the calendar day of date. The
// observer reference is local noon to avoid premature date translation at
// day boundaries.
func (s *sunEventService) calc(date time.Time, lat float64, lon float64) (time.Time, time.Time, error) {
	// go-sunrise returns zero values when the sun never crosses the
	// horizon on the given day, which suncalc does not signal.
	probeRise, probeSet := sunrise.SunriseSunset(lat, lon, date.Year(), date.Month(), date.Day())
	if probeRise.IsZero() || probeSet.IsZero() {
		log.Debug().
			Float64("lat", lat).Float64("lon", lon).
			Str("date", date.Format(time.DateOnly)).
			Msg("polar day or night detected")
		return time.Time{}, time.Time{}, application.ErrScheduleUnavailable
	}

	noon := time.Date(date.Year(), date.Month(), date.Day(), 12, 0, 0, 0, date.Location())
	times := suncalc.GetTimesWithObserver(
		noon,
		suncalc.Observer{Latitude: lat, Longitude: lon, Location: date.Location()},
	)

	rise := times[suncalc.Sunrise].Value
	set := times[suncalc.Sunset].Value
	if rise.IsZero() || set.IsZero() {
		return time.Time{}, time.Time{}, application.ErrScheduleUnavailable
	}
	if !withinDay(rise, noon) || !withinDay(set, noon) {
		return time.Time{}, time.Time{}, fmt.Errorf("sunEventService → implausible sun events for %s at (%v, %v)",
			date.Format(time.DateOnly), lat, lon)
	}

	return rise.Truncate(time.Millisecond), set.Truncate(time.Millisecond), nil
}

// withinDay guards against the degenerate values suncalc produces when
// its hour-angle term leaves the [-1, 1] domain at high latitudes.
func withinDay(t time.Time, noon time.Time) bool {
	return t.After(noon.Add(-24*time.Hour)) && t.Before(noon.Add(24*time.Hour))
}
