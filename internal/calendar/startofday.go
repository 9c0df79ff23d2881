package calendar

import "time"

// StartOfDay defines when a calendar day begins relative to civil
// midnight. Some calendars open the day at a traditionally defined
// moment other than midnight; the deviation shifts timestamps near the
// boundary into the correct calendar day.
type StartOfDay interface {
	// Deviation returns the offset in seconds between the true start
	// of the calendar day and civil midnight for the given date and
	// zone. Negative values mean the day begins before midnight.
	Deviation(date time.Time, loc *time.Location) int
}

// Midnight is the default policy: the calendar day coincides with the
// civil day.
var Midnight StartOfDay = midnight{}

type midnight struct{}

func (midnight) Deviation(time.Time, *time.Location) int { return 0 }

// ClockShift returns a policy whose day begins a fixed number of seconds
// after civil midnight, regardless of date and zone. The traditional
// zi-hour reckoning, where the day opens at 23:00 of the previous civil
// day, is ClockShift(-3600).
func ClockShift(seconds int) StartOfDay {
	return clockShift(seconds)
}

type clockShift int

func (s clockShift) Deviation(time.Time, *time.Location) int { return int(s) }
