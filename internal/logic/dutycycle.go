package logic

import (
	"fmt"
	"time"
)

// DutyCycle alternates a device between active and inactive on a stopwatch.
// On is how long the device stays active, Off how long it rests.
type DutyCycle struct {
	On  time.Duration
	Off time.Duration
}

// Threshold returns how long the device must remain in its current state
// before switching.
func (d DutyCycle) Threshold(active bool) time.Duration {
	if active {
		return d.On
	}
	return d.Off
}

// Next decides the next level given the current level and the time elapsed
// since the last switch. switched is true when the caller must drive the new
// level and restart its stopwatch.
func (d DutyCycle) Next(active bool, elapsed time.Duration) (next bool, switched bool) {
	if elapsed >= d.Threshold(active) {
		return !active, true
	}
	return active, false
}

// Validate checks that both phases are positive.
func (d DutyCycle) Validate() error {
	if d.On <= 0 || d.Off <= 0 {
		return fmt.Errorf("%w: on=%v off=%v", ErrInvalidCycle, d.On, d.Off)
	}
	return nil
}

func (d DutyCycle) String() string {
	return fmt.Sprintf("on=%v off=%v", d.On, d.Off)
}
