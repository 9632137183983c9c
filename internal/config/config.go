// Package config holds the fixed parameters of the controller: which lines
// drive which relay, the wiring polarity of each relay, and its schedule.
// Values are immutable once the process starts; tests build their own.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/sweeney/terrarium/internal/gpio"
	"github.com/sweeney/terrarium/internal/logic"
)

// Pin definitions (BCM numbering)
const (
	PinLights = 27
	PinMist   = 22
	PinFog    = 17
)

// DefaultPollInterval is the time between successive evaluations of every device.
const DefaultPollInterval = 3 * time.Second

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Window configures a device switched by time of day.
type Window struct {
	Name string
	Line int
	// ActiveLevel is the electrical level that energizes the relay.
	ActiveLevel gpio.Level
	Window      logic.Window
}

// DutyCycle configures a device switched on a stopwatch.
type DutyCycle struct {
	Name        string
	Line        int
	ActiveLevel gpio.Level
	Cycle       logic.DutyCycle
}

// Config is the complete controller configuration.
type Config struct {
	Chip         string
	PollInterval time.Duration
	Lights       Window
	Mist         Window
	Fog          DutyCycle
}

// Default returns the production configuration.
func Default() Config {
	return Config{
		Chip:         gpio.DefaultChip,
		PollInterval: DefaultPollInterval,
		Lights: Window{
			Name:        "lights",
			Line:        PinLights,
			ActiveLevel: gpio.High,
			Window:      logic.Window{On: logic.Clock(7, 0, 0), Off: logic.Clock(21, 0, 0)},
		},
		Mist: Window{
			Name: "mist",
			Line: PinMist,
			// Relay board energizes on LOW.
			ActiveLevel: gpio.Low,
			Window:      logic.Window{On: logic.Clock(19, 0, 0), Off: logic.Clock(19, 1, 0)},
		},
		Fog: DutyCycle{
			Name:        "fog",
			Line:        PinFog,
			ActiveLevel: gpio.Low,
			Cycle:       logic.DutyCycle{On: 10 * time.Minute, Off: 30 * time.Minute},
		},
	}
}

// Validate checks every device and that no line is assigned twice.
func (c Config) Validate() error {
	if c.PollInterval <= 0 {
		return fmt.Errorf("%w: poll interval %v must be positive", ErrInvalidConfig, c.PollInterval)
	}

	if err := c.Lights.validate(); err != nil {
		return err
	}
	if err := c.Mist.validate(); err != nil {
		return err
	}
	if err := c.Fog.validate(); err != nil {
		return err
	}

	owners := make(map[int]string, 3)
	for _, d := range []struct {
		name string
		line int
	}{
		{c.Fog.Name, c.Fog.Line},
		{c.Mist.Name, c.Mist.Line},
		{c.Lights.Name, c.Lights.Line},
	} {
		if prev, ok := owners[d.line]; ok {
			return fmt.Errorf("%w: line %d assigned to both %s and %s", ErrInvalidConfig, d.line, prev, d.name)
		}
		owners[d.line] = d.name
	}
	return nil
}

func (w Window) validate() error {
	if err := validateLine(w.Name, w.Line, w.ActiveLevel); err != nil {
		return err
	}
	if err := w.Window.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, w.Name, err)
	}
	return nil
}

func (d DutyCycle) validate() error {
	if err := validateLine(d.Name, d.Line, d.ActiveLevel); err != nil {
		return err
	}
	if err := d.Cycle.Validate(); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrInvalidConfig, d.Name, err)
	}
	return nil
}

func validateLine(name string, line int, active gpio.Level) error {
	if name == "" {
		return fmt.Errorf("%w: device on line %d has no name", ErrInvalidConfig, line)
	}
	if line < 0 {
		return fmt.Errorf("%w: %s: negative line %d", ErrInvalidConfig, name, line)
	}
	if !active.Valid() {
		return fmt.Errorf("%w: %s: invalid active level %v", ErrInvalidConfig, name, active)
	}
	return nil
}
