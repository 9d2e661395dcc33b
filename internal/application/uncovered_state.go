// Copyright 2025 CZD Tech
// Licensed under the Apache License, Version 2.0

package application

import (
	"errors"
	"time"
)

// UncoveredState runs while no schedule covers the current instant. When
// one does, it announces the planetary day and hands over to the covered
// state. Polar unavailability is reported once per calendar date and is
// never turned into a fabricated schedule.
type UncoveredState struct {
	tracker *HourTracker
	calcSrv *Calculator
	notify  NotifyService

	lat      float64
	lon      float64
	timezone string

	unavailableDate string
	now             func() time.Time
}

func NewUncoveredState(calc *Calculator, notify NotifyService, lat float64, lon float64, timezone string) *UncoveredState {
	return &UncoveredState{
		calcSrv:  calc,
		notify:   notify,
		lat:      lat,
		lon:      lon,
		timezone: timezone,
		now:      time.Now,
	}
}

func (s *UncoveredState) SetTracker(tracker *HourTracker) {
	s.tracker = tracker
}

func (s *UncoveredState) check() error {
	at := s.now()
	result, _, ok, err := s.calcSrv.CurrentHour(at, s.lat, s.lon, s.timezone)
	if errors.Is(err, ErrScheduleUnavailable) {
		return s.reportUnavailable(at)
	}
	if err != nil {
		return err
	}

	if !ok {
		return nil
	}

	if err := s.notify.SendScheduleStarted(result); err != nil {
		return err
	}

	s.unavailableDate = ""
	s.tracker.switchState(s.tracker.covered)
	s.tracker.Check()

	return nil
}

func (s *UncoveredState) reportUnavailable(at time.Time) error {
	loc, err := time.LoadLocation(s.timezone)
	if err != nil {
		return err
	}

	date := at.In(loc).Format(time.DateOnly)
	if date == s.unavailableDate {
		return nil
	}

	if err := s.notify.SendUnavailable(date); err != nil {
		return err
	}
	s.unavailableDate = date

	return nil
}
