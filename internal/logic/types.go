// Package logic contains pure decision logic for the relay controllers.
// This package has NO external dependencies (no GPIO, OS, or time.Sleep).
// Time is always injected as a TimeOfDay or an elapsed time.Duration.
package logic

import (
	"errors"
	"fmt"
	"time"
)

// State represents the logical state of a device.
type State string

const (
	StateOn  State = "ON"
	StateOff State = "OFF"
)

// StateOf converts an active flag into a State.
func StateOf(active bool) State {
	if active {
		return StateOn
	}
	return StateOff
}

// Day is the length of a civil day as seen by TimeOfDay.
const Day = 24 * time.Hour

// TimeOfDay is the offset since local midnight, in [0, Day).
type TimeOfDay time.Duration

// Clock builds a TimeOfDay from hours, minutes and seconds.
func Clock(hour, min, sec int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second)
}

// TimeOfDayOf extracts the time of day from t in t's own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	h, m, s := t.Clock()
	return Clock(h, m, s) + TimeOfDay(t.Nanosecond())
}

// Valid reports whether t lies within a single day.
func (t TimeOfDay) Valid() bool {
	return t >= 0 && time.Duration(t) < Day
}

// String formats t as 15:04:05.
func (t TimeOfDay) String() string {
	d := time.Duration(t)
	return fmt.Sprintf("%02d:%02d:%02d", int(d/time.Hour), int(d/time.Minute)%60, int(d/time.Second)%60)
}

// Validation errors.
var (
	ErrInvalidWindow = errors.New("invalid window")
	ErrInvalidCycle  = errors.New("invalid duty cycle")
)
