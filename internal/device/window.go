package device

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sweeney/terrarium/internal/clock"
	"github.com/sweeney/terrarium/internal/config"
	"github.com/sweeney/terrarium/internal/gpio"
	"github.com/sweeney/terrarium/internal/logic"
)

// Window switches a relay on while the local time of day is inside a fixed
// window. It holds no state beyond its line.
type Window struct {
	name   string
	line   gpio.Line
	window logic.Window
	wall   clock.Wall
	log    zerolog.Logger
}

// NewWindow acquires the configured line and returns its controller.
func NewWindow(cfg config.Window, chip gpio.Chip, wall clock.Wall, logger zerolog.Logger) (*Window, error) {
	line, err := acquire(chip, cfg.Name, cfg.Line, cfg.ActiveLevel)
	if err != nil {
		return nil, err
	}

	return &Window{
		name:   cfg.Name,
		line:   line,
		window: cfg.Window,
		wall:   wall,
		log: logger.With().
			Str("device", cfg.Name).
			Int("line", cfg.Line).
			Stringer("active_level", cfg.ActiveLevel).
			Logger(),
	}, nil
}

// Name returns the device name.
func (w *Window) Name() string {
	return w.name
}

// Update drives the line active strictly inside the window and inactive
// otherwise. The line is written on every call.
func (w *Window) Update() error {
	now := w.wall.TimeOfDay()
	want := w.window.Contains(now)

	was, err := w.line.IsActive()
	if err != nil {
		return fmt.Errorf("%s: %w", w.name, err)
	}
	if err := drive(w.line, want); err != nil {
		return fmt.Errorf("%s: %w", w.name, err)
	}

	if was != want {
		w.log.Info().
			Str("state", string(logic.StateOf(want))).
			Stringer("time", now).
			Stringer("window", w.window).
			Msg("switched")
	}
	return nil
}

// Close releases the line.
func (w *Window) Close() error {
	if err := w.line.Close(); err != nil {
		return fmt.Errorf("%s: %w", w.name, err)
	}
	return nil
}
