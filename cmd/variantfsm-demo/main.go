// Command variantfsm-demo runs a small counter machine: it leaves Idle once,
// counts up while in Counting and stops in Done when the count passes a
// threshold.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/librescoot/variantfsm"
	"github.com/librescoot/variantfsm/internal/config"
)

// Config is read from the environment (and an optional .env file).
type Config struct {
	LogLevel  string `env:"VARIANTFSM_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"VARIANTFSM_LOG_FORMAT" envDefault:"text"`
	Threshold int    `env:"VARIANTFSM_THRESHOLD" envDefault:"3"`
	MaxSteps  int    `env:"VARIANTFSM_MAX_STEPS" envDefault:"1000"`
	Output    string `env:"VARIANTFSM_OUTPUT" envDefault:"text"`
}

var errUnknownOutput = errors.New("unknown output format")

func main() {
	// Use a minimal logger until the configured one exists.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(os.Stdout, os.Stderr, cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run drives the counter machine to Done and writes the result to outW.
func run(outW, logW io.Writer, cfg Config) error {
	if cfg.Output != "text" && cfg.Output != "yaml" {
		return fmt.Errorf("%w: %q", errUnknownOutput, cfg.Output)
	}

	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)

	started := 0
	next, act := counterHandlers(cfg.Threshold, func() { started++ })

	m, err := variantfsm.NewMachine(counter{},
		variantfsm.WithLogger(logger),
		variantfsm.WithStateChangeCallback(func(from, to string) {
			logger.Info("state changed", "from", from, "to", to)
		}),
	)
	if err != nil {
		return fmt.Errorf("create machine: %w", err)
	}

	steps, err := m.RunUntil(next, act, cfg.MaxSteps, variantfsm.V3)
	if err != nil {
		return fmt.Errorf("run counter: %w", err)
	}

	switch cfg.Output {
	case "yaml":
		data, err := m.SnapshotYAML()
		if err != nil {
			return err
		}
		_, err = outW.Write(data)
		return err
	default:
		d, _ := m.State().Get3()
		_, err = fmt.Fprintf(outW, "%s after %d steps, count %d, started %d time(s)\n", m.LastTransition(), steps, d.Count, started)
		return err
	}
}
