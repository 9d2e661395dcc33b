// Copyright 2025 CZD Tech
// Licensed under the Apache License, Version 2.0

package application

import (
	"time"
)

// CoveredState runs while the schedule contains the current instant. It
// announces each planetary-hour transition and hands back to the
// uncovered state once the last night hour has passed.
type CoveredState struct {
	tracker *HourTracker
	calcSrv *Calculator
	notify  NotifyService

	lat      float64
	lon      float64
	timezone string

	lastOrdinal int
	now         func() time.Time
}

func NewCoveredState(calc *Calculator, notify NotifyService, lat float64, lon float64, timezone string) *CoveredState {
	return &CoveredState{
		calcSrv:  calc,
		notify:   notify,
		lat:      lat,
		lon:      lon,
		timezone: timezone,
		now:      time.Now,
	}
}

func (s *CoveredState) SetTracker(tracker *HourTracker) {
	s.tracker = tracker
}

func (s *CoveredState) check() error {
	at := s.now()
	result, hour, ok, err := s.calcSrv.CurrentHour(at, s.lat, s.lon, s.timezone)
	if err != nil {
		s.leave()
		return err
	}

	if !ok {
		if err := s.notify.SendScheduleEnded(); err != nil {
			s.leave()
			return err
		}
		s.leave()
		return nil
	}

	if hour.Ordinal != s.lastOrdinal {
		if err := s.notify.SendHourUpdate(hour, result); err != nil {
			return err
		}
		s.lastOrdinal = hour.Ordinal
	}

	return nil
}

func (s *CoveredState) leave() {
	s.lastOrdinal = 0
	s.tracker.switchState(s.tracker.uncovered)
}
