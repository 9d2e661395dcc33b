package application

import "time"

type SunEventService interface {
	// ComputeSunEvents returns sunrise and sunset for the calendar day of
	// date (interpreted in date's location) plus the following day's
	// sunrise. ErrScheduleUnavailable is returned when the sun does not
	// rise or set within the relevant window.
	ComputeSunEvents(date time.Time, lat float64, lon float64) (SunEvents, error)
}

type ScheduleCache interface {
	Get(key string) (*CalculationResult, bool)
	Set(key string, result *CalculationResult)
	Clear()
}

type NotifyService interface {
	SendScheduleStarted(result *CalculationResult) error
	SendHourUpdate(hour PlanetaryHour, result *CalculationResult) error
	SendScheduleEnded() error
	SendUnavailable(date string) error
}

// SunEvents holds the three absolute instants bounding one planetary day.
type SunEvents struct {
	Sunrise     time.Time
	Sunset      time.Time
	NextSunrise time.Time
}
