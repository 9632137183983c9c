// Command terrarium drives the terrarium light, mist and fog relays from
// fixed time-of-day windows and duty cycles.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sweeney/terrarium/internal/clock"
	"github.com/sweeney/terrarium/internal/config"
	"github.com/sweeney/terrarium/internal/gpio"
	"github.com/sweeney/terrarium/internal/scheduler"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	if err := run(config.Default(), os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("fatal")
	}
}

func run(cfg config.Config, out io.Writer) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	chip, err := gpio.NewRealChip(cfg.Chip)
	if err != nil {
		return fmt.Errorf("init gpio: %w", err)
	}
	defer chip.Close()

	sys := clock.NewSystem(time.Local)

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	return runLoop(cfg, chip, sys, sys, time.Now, out, ticker.C, log.Logger)
}

// runLoop builds the controllers and drives them until an update fails or
// tick is closed. Nothing is printed if construction fails.
func runLoop(cfg config.Config, chip gpio.Chip, wall clock.Wall, mono clock.Monotonic, now func() time.Time, out io.Writer, tick <-chan time.Time, logger zerolog.Logger) error {
	loop, err := scheduler.Build(cfg, chip, wall, mono, logger)
	if err != nil {
		return fmt.Errorf("init controllers: %w", err)
	}
	defer func() {
		if err := loop.Close(); err != nil {
			logger.Error().Err(err).Msg("release lines")
		}
	}()

	fmt.Fprintln(out, startupTime(now()))

	logger.Info().
		Dur("poll", cfg.PollInterval).
		Strs("order", loop.Names()).
		Stringer("lights", cfg.Lights.Window).
		Stringer("mist", cfg.Mist.Window).
		Stringer("fog", cfg.Fog.Cycle).
		Msg("started")

	return loop.Run(tick)
}

// startupTime formats t as a 12-hour clock, e.g. "07:03:12 am".
func startupTime(t time.Time) string {
	return t.Format("03:04:05 pm")
}
