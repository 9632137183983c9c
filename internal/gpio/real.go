//go:build linux

package gpio

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/warthog618/go-gpiocdev"
)

const consumer = "terrarium"

// RealChip hands out output lines on actual hardware using the Linux GPIO
// character device.
type RealChip struct {
	chip *gpiocdev.Chip
}

// NewRealChip opens the named GPIO chip, e.g. "gpiochip0".
func NewRealChip(name string) (*RealChip, error) {
	chip, err := gpiocdev.NewChip(name, gpiocdev.WithConsumer(consumer))
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", name, err)
	}
	return &RealChip{chip: chip}, nil
}

// Acquire requests offset as an output driven to its inactive level.
// For relays energized by LOW the line is requested active-low, so the
// character device performs the inversion and the returned Line stays logical.
func (c *RealChip) Acquire(offset int, active Level) (Line, error) {
	if !active.Valid() {
		return nil, fmt.Errorf("request line %d: invalid active level %v", offset, active)
	}

	opts := []gpiocdev.LineReqOption{gpiocdev.AsOutput(0)}
	if active == Low {
		opts = append(opts, gpiocdev.AsActiveLow)
	}

	l, err := c.chip.RequestLine(offset, opts...)
	if err != nil {
		return nil, fmt.Errorf("request line %d: %w", offset, classify(err))
	}
	return &RealLine{line: l, offset: offset}, nil
}

// Close releases the chip.
func (c *RealChip) Close() error {
	return c.chip.Close()
}

// classify maps character device errors onto the package sentinels while
// keeping the original error in the chain.
func classify(err error) error {
	switch {
	case errors.Is(err, syscall.EBUSY):
		return fmt.Errorf("%w: %w", ErrLineBusy, err)
	case errors.Is(err, gpiocdev.ErrInvalidOffset), errors.Is(err, syscall.ENOENT), errors.Is(err, syscall.EACCES), errors.Is(err, syscall.EPERM):
		return fmt.Errorf("%w: %w", ErrLineUnavailable, err)
	}
	return err
}

// RealLine is a requested output line.
type RealLine struct {
	line   *gpiocdev.Line
	offset int
}

// SetActive drives the line active.
func (l *RealLine) SetActive() error {
	if err := l.line.SetValue(1); err != nil {
		return fmt.Errorf("set line %d active: %w", l.offset, err)
	}
	return nil
}

// SetInactive drives the line inactive.
func (l *RealLine) SetInactive() error {
	if err := l.line.SetValue(0); err != nil {
		return fmt.Errorf("set line %d inactive: %w", l.offset, err)
	}
	return nil
}

// IsActive reads back the logical value of the line.
func (l *RealLine) IsActive() (bool, error) {
	v, err := l.line.Value()
	if err != nil {
		return false, fmt.Errorf("read line %d: %w", l.offset, err)
	}
	return v == 1, nil
}

// Close releases the line.
// Reconfigures it as an input before closing so the relay module falls back
// to its own default rather than a driven level.
func (l *RealLine) Close() error {
	var errs []error
	if err := l.line.Reconfigure(gpiocdev.AsInput); err != nil {
		errs = append(errs, fmt.Errorf("reconfigure line %d: %w", l.offset, err))
	}
	if err := l.line.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close line %d: %w", l.offset, err))
	}
	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
