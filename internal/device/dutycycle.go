package device

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sweeney/terrarium/internal/clock"
	"github.com/sweeney/terrarium/internal/config"
	"github.com/sweeney/terrarium/internal/gpio"
	"github.com/sweeney/terrarium/internal/logic"
)

// DutyCycle alternates a relay between active and inactive phases timed on
// the monotonic clock. The line's own state is the only record of the
// current phase.
type DutyCycle struct {
	name       string
	line       gpio.Line
	cycle      logic.DutyCycle
	mono       clock.Monotonic
	lastSwitch clock.Instant
	log        zerolog.Logger
}

// NewDutyCycle acquires the configured line, forces it inactive and starts
// the stopwatch, so the first active phase begins only after a full
// inactive phase.
func NewDutyCycle(cfg config.DutyCycle, chip gpio.Chip, mono clock.Monotonic, logger zerolog.Logger) (*DutyCycle, error) {
	line, err := acquire(chip, cfg.Name, cfg.Line, cfg.ActiveLevel)
	if err != nil {
		return nil, err
	}
	if err := line.SetInactive(); err != nil {
		line.Close()
		return nil, fmt.Errorf("init %s: %w", cfg.Name, err)
	}

	return &DutyCycle{
		name:       cfg.Name,
		line:       line,
		cycle:      cfg.Cycle,
		mono:       mono,
		lastSwitch: mono.Now(),
		log: logger.With().
			Str("device", cfg.Name).
			Int("line", cfg.Line).
			Stringer("active_level", cfg.ActiveLevel).
			Logger(),
	}, nil
}

// Name returns the device name.
func (d *DutyCycle) Name() string {
	return d.name
}

// Update flips the line once the current phase has lasted its full duration
// and restarts the stopwatch. Otherwise it does nothing.
func (d *DutyCycle) Update() error {
	active, err := d.line.IsActive()
	if err != nil {
		return fmt.Errorf("%s: %w", d.name, err)
	}

	elapsed := d.mono.Since(d.lastSwitch)
	next, switched := d.cycle.Next(active, elapsed)
	if !switched {
		return nil
	}

	if err := drive(d.line, next); err != nil {
		return fmt.Errorf("%s: %w", d.name, err)
	}
	d.lastSwitch = d.mono.Now()

	d.log.Info().
		Str("state", string(logic.StateOf(next))).
		Dur("after", elapsed).
		Dur("next_switch_in", d.cycle.Threshold(next)).
		Msg("switched")
	return nil
}

// Close releases the line.
func (d *DutyCycle) Close() error {
	if err := d.line.Close(); err != nil {
		return fmt.Errorf("%s: %w", d.name, err)
	}
	return nil
}
