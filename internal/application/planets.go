// Copyright 2025 CZD Tech
// Licensed under the Apache License, Version 2.0

package application

import "time"

// Planet is one of the seven classical planets ruling days and hours.
type Planet string

const (
	Saturn  Planet = "Saturn"
	Jupiter Planet = "Jupiter"
	Mars    Planet = "Mars"
	Sun     Planet = "Sun"
	Venus   Planet = "Venus"
	Mercury Planet = "Mercury"
	Moon    Planet = "Moon"
)

// chaldeanOrder is the fixed rotation used for successive hour rulers.
// It is shared, read-only state; never mutate it.
var chaldeanOrder = [7]Planet{Saturn, Jupiter, Mars, Sun, Venus, Mercury, Moon}

var dayRulers = map[time.Weekday]Planet{
	time.Sunday:    Sun,
	time.Monday:    Moon,
	time.Tuesday:   Mars,
	time.Wednesday: Mercury,
	time.Thursday:  Jupiter,
	time.Friday:    Venus,
	time.Saturday:  Saturn,
}

var planetSymbols = map[Planet]string{
	Saturn:  "♄",
	Jupiter: "♃",
	Mars:    "♂",
	Sun:     "☉",
	Venus:   "♀",
	Mercury: "☿",
	Moon:    "☽",
}

// DayRuler returns the planet governing the given weekday. It equals the
// ruler of that day's first planetary hour.
func DayRuler(weekday time.Weekday) Planet {
	return dayRulers[weekday]
}

// Symbol returns the astrological glyph for the planet.
func (p Planet) Symbol() string {
	return planetSymbols[p]
}

// advance steps n positions forward through the Chaldean order, wrapping
// after seven steps.
func advance(p Planet, n int) Planet {
	var start int
	for i, c := range chaldeanOrder {
		if c == p {
			start = i
			break
		}
	}
	return chaldeanOrder[(start+n)%len(chaldeanOrder)]
}
