package logic

import "fmt"

// Window is an open time-of-day interval (On, Off).
// Windows never wrap past midnight.
type Window struct {
	On  TimeOfDay
	Off TimeOfDay
}

// Contains reports whether t lies strictly inside the window.
// Both boundary instants are outside.
func (w Window) Contains(t TimeOfDay) bool {
	return t > w.On && t < w.Off
}

// Validate checks that both edges fall within a day and On precedes Off.
func (w Window) Validate() error {
	if !w.On.Valid() || !w.Off.Valid() {
		return fmt.Errorf("%w: %s-%s outside of day", ErrInvalidWindow, w.On, w.Off)
	}
	if w.On >= w.Off {
		return fmt.Errorf("%w: on %s not before off %s", ErrInvalidWindow, w.On, w.Off)
	}
	return nil
}

func (w Window) String() string {
	return w.On.String() + "-" + w.Off.String()
}
