// Package scheduler owns the device controllers and re-evaluates them, one
// after another, on every tick of the polling interval.
package scheduler

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sweeney/terrarium/internal/clock"
	"github.com/sweeney/terrarium/internal/config"
	"github.com/sweeney/terrarium/internal/device"
	"github.com/sweeney/terrarium/internal/gpio"
)

// Loop updates its controllers sequentially. It is not safe for concurrent use.
type Loop struct {
	controllers []device.Controller
	log         zerolog.Logger
}

// New creates a Loop updating controllers in the given order.
func New(logger zerolog.Logger, controllers ...device.Controller) *Loop {
	return &Loop{controllers: controllers, log: logger}
}

// Build constructs the fog, mist and lights controllers, in that order.
// If any of them fails, lines already acquired are released and no
// controller is ever updated.
func Build(cfg config.Config, chip gpio.Chip, wall clock.Wall, mono clock.Monotonic, logger zerolog.Logger) (*Loop, error) {
	l := New(logger)

	fog, err := device.NewDutyCycle(cfg.Fog, chip, mono, logger)
	if err != nil {
		return nil, l.abort(err)
	}
	l.controllers = append(l.controllers, fog)

	mist, err := device.NewWindow(cfg.Mist, chip, wall, logger)
	if err != nil {
		return nil, l.abort(err)
	}
	l.controllers = append(l.controllers, mist)

	lights, err := device.NewWindow(cfg.Lights, chip, wall, logger)
	if err != nil {
		return nil, l.abort(err)
	}
	l.controllers = append(l.controllers, lights)

	return l, nil
}

func (l *Loop) abort(err error) error {
	if cerr := l.Close(); cerr != nil {
		l.log.Error().Err(cerr).Msg("release lines after failed startup")
	}
	return err
}

// Step updates every controller once, stopping at the first error.
func (l *Loop) Step() error {
	for _, c := range l.controllers {
		if err := c.Update(); err != nil {
			return fmt.Errorf("update: %w", err)
		}
	}
	return nil
}

// Run steps immediately and then once per tick. It returns the first update
// error, or nil if tick is closed.
func (l *Loop) Run(tick <-chan time.Time) error {
	for {
		if err := l.Step(); err != nil {
			return err
		}
		if _, ok := <-tick; !ok {
			return nil
		}
	}
}

// Names lists the controllers in update order.
func (l *Loop) Names() []string {
	names := make([]string, len(l.controllers))
	for i, c := range l.controllers {
		names[i] = c.Name()
	}
	return names
}

// Close releases every controller's line.
func (l *Loop) Close() error {
	var errs []error
	for _, c := range l.controllers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	l.controllers = nil

	if len(errs) > 0 {
		return fmt.Errorf("close errors: %v", errs)
	}
	return nil
}
