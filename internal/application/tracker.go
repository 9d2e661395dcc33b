// Copyright 2025 CZD Tech
// Licensed under the Apache License, Version 2.0

package application

import "fmt"

type State interface {
	check() error
	SetTracker(tracker *HourTracker)
}

// HourTracker watches the planetary-hour schedule for one location and
// switches between a covered state (the schedule contains "now") and an
// uncovered one (before sunrise, after the last night hour, or polar
// conditions).
type HourTracker struct {
	covered   State
	uncovered State

	currentState State
}

func NewHourTracker(covered State, uncovered State) *HourTracker {
	t := &HourTracker{
		covered:   covered,
		uncovered: uncovered,
	}
	covered.SetTracker(t)
	uncovered.SetTracker(t)
	t.switchState(uncovered)
	return t
}

func (t *HourTracker) switchState(s State) {
	t.currentState = s
}

func (t *HourTracker) Check() {
	err := t.currentState.check()
	if err != nil {
		fmt.Printf("Tracker → %v\n", err)
	}
}
