// Package gpio provides relay output lines with hardware abstraction.
// The real implementation uses the Linux GPIO character device.
// The fake implementation allows testing without hardware.
//
// Lines speak in logical terms (active/inactive). The electrical level that
// means "active" is fixed when the line is acquired, so relay wiring lives in
// configuration rather than in controller logic.
package gpio

import (
	"errors"
	"fmt"
)

// Level is an electrical output level.
type Level int

const (
	Low Level = iota
	High
)

func (l Level) String() string {
	switch l {
	case Low:
		return "LOW"
	case High:
		return "HIGH"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Valid reports whether l is Low or High.
func (l Level) Valid() bool {
	return l == Low || l == High
}

// Invert returns the opposite level.
func (l Level) Invert() Level {
	if l == High {
		return Low
	}
	return High
}

var (
	// ErrLineBusy is returned when a line is already held by another owner.
	ErrLineBusy = errors.New("line busy")

	// ErrLineUnavailable is returned when the requested line does not exist
	// or cannot be opened.
	ErrLineUnavailable = errors.New("line unavailable")
)

// Line is an exclusively owned output line.
type Line interface {
	// SetActive drives the line to its active level.
	SetActive() error

	// SetInactive drives the line to its inactive level.
	SetInactive() error

	// IsActive reports the level last driven on the line.
	IsActive() (bool, error)

	// Close releases the line.
	Close() error
}

// Chip hands out output lines.
type Chip interface {
	// Acquire requests offset as an output, initially inactive.
	// active is the electrical level that energizes the attached relay.
	Acquire(offset int, active Level) (Line, error)

	// Close releases chip resources.
	Close() error
}

// DefaultChip is the Raspberry Pi header GPIO controller.
const DefaultChip = "gpiochip0"
