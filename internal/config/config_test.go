package config

import (
	"errors"
	"testing"
	"time"

	"github.com/sweeney/terrarium/internal/gpio"
	"github.com/sweeney/terrarium/internal/logic"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestDefaultValues(t *testing.T) {
	c := Default()

	if c.PollInterval != 3*time.Second {
		t.Errorf("poll interval: got %v, want 3s", c.PollInterval)
	}
	if c.Chip != "gpiochip0" {
		t.Errorf("chip: got %q", c.Chip)
	}

	if c.Lights.Line != 27 || c.Lights.ActiveLevel != gpio.High {
		t.Errorf("lights: got line %d level %v", c.Lights.Line, c.Lights.ActiveLevel)
	}
	if c.Lights.Window.String() != "07:00:00-21:00:00" {
		t.Errorf("lights window: got %s", c.Lights.Window)
	}

	if c.Mist.Line != 22 || c.Mist.ActiveLevel != gpio.Low {
		t.Errorf("mist: got line %d level %v", c.Mist.Line, c.Mist.ActiveLevel)
	}
	if c.Mist.Window.String() != "19:00:00-19:01:00" {
		t.Errorf("mist window: got %s", c.Mist.Window)
	}

	if c.Fog.Line != 17 || c.Fog.ActiveLevel != gpio.Low {
		t.Errorf("fog: got line %d level %v", c.Fog.Line, c.Fog.ActiveLevel)
	}
	if c.Fog.Cycle.On != 10*time.Minute || c.Fog.Cycle.Off != 30*time.Minute {
		t.Errorf("fog cycle: got %v", c.Fog.Cycle)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero poll interval", func(c *Config) { c.PollInterval = 0 }},
		{"duplicate line", func(c *Config) { c.Mist.Line = c.Fog.Line }},
		{"negative line", func(c *Config) { c.Lights.Line = -1 }},
		{"missing name", func(c *Config) { c.Fog.Name = "" }},
		{"invalid level", func(c *Config) { c.Mist.ActiveLevel = gpio.Level(3) }},
		{"window wraps midnight", func(c *Config) {
			c.Lights.Window = logic.Window{On: logic.Clock(21, 0, 0), Off: logic.Clock(7, 0, 0)}
		}},
		{"zero fog on", func(c *Config) { c.Fog.Cycle.On = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestValidateWrapsLogicErrors(t *testing.T) {
	c := Default()
	c.Fog.Cycle.Off = -time.Second

	err := c.Validate()
	if !errors.Is(err, logic.ErrInvalidCycle) {
		t.Errorf("expected ErrInvalidCycle in chain, got %v", err)
	}
}
