package clock

import (
	"time"

	"github.com/sweeney/terrarium/internal/logic"
)

// Fake is a manually driven clock for tests. It implements Wall and Monotonic.
// The two readings are independent: Set moves only the time of day, Advance
// moves only the stopwatch.
type Fake struct {
	tod     logic.TimeOfDay
	elapsed time.Duration
}

// NewFake creates a Fake showing tod with the stopwatch at zero.
func NewFake(tod logic.TimeOfDay) *Fake {
	return &Fake{tod: tod}
}

// TimeOfDay returns the time of day last Set.
func (f *Fake) TimeOfDay() logic.TimeOfDay {
	return f.tod
}

// Set changes the time of day, as if the wall clock were adjusted.
func (f *Fake) Set(tod logic.TimeOfDay) {
	f.tod = tod
}

// Now returns the current stopwatch reading.
func (f *Fake) Now() Instant {
	return Instant(f.elapsed)
}

// Since returns the stopwatch time elapsed since i.
func (f *Fake) Since(i Instant) time.Duration {
	return f.elapsed - time.Duration(i)
}

// Advance moves the stopwatch forward by d.
func (f *Fake) Advance(d time.Duration) {
	f.elapsed += d
}
