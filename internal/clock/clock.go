// Package clock provides the two time sources used by the controllers:
// a wall clock for time-of-day schedules and a monotonic stopwatch for
// duty cycles. They are kept as separate interfaces so a duty cycle can
// never be driven by wall-clock time.
package clock

import (
	"time"

	"github.com/sweeney/terrarium/internal/logic"
)

// Wall reports the local time of day.
type Wall interface {
	TimeOfDay() logic.TimeOfDay
}

// Instant is a reading of a monotonic clock. Only differences between
// instants from the same clock are meaningful.
type Instant time.Duration

// Monotonic measures elapsed time, unaffected by wall-clock adjustments.
type Monotonic interface {
	Now() Instant
	Since(Instant) time.Duration
}

// System is the real clock. It implements both Wall and Monotonic.
type System struct {
	loc   *time.Location
	start time.Time
}

// NewSystem returns a System reading wall time in loc.
func NewSystem(loc *time.Location) *System {
	if loc == nil {
		loc = time.Local
	}
	return &System{loc: loc, start: time.Now()}
}

// TimeOfDay returns the current time of day in the configured location.
func (s *System) TimeOfDay() logic.TimeOfDay {
	return logic.TimeOfDayOf(time.Now().In(s.loc))
}

// Now returns the time elapsed since the clock was created.
// time.Since uses the monotonic reading carried by start.
func (s *System) Now() Instant {
	return Instant(time.Since(s.start))
}

// Since returns the time elapsed since i.
func (s *System) Since(i Instant) time.Duration {
	return time.Duration(s.Now() - i)
}
