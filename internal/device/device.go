// Package device implements the relay controllers. Each controller owns one
// output line and decides its level on every Update from a clock reading.
package device

import (
	"fmt"

	"github.com/sweeney/terrarium/internal/gpio"
)

// Controller is a device re-evaluated by the scheduler loop.
type Controller interface {
	// Name identifies the device in logs and errors.
	Name() string

	// Update decides the desired level and applies it.
	// Any returned error means the output can no longer be trusted.
	Update() error

	// Close releases the output line.
	Close() error
}

func drive(line gpio.Line, active bool) error {
	if active {
		return line.SetActive()
	}
	return line.SetInactive()
}

func acquire(chip gpio.Chip, name string, offset int, active gpio.Level) (gpio.Line, error) {
	line, err := chip.Acquire(offset, active)
	if err != nil {
		return nil, fmt.Errorf("acquire %s: %w", name, err)
	}
	return line, nil
}
