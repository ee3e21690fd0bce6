// Package config loads simulator settings from built-in defaults, an
// optional ini file and CANCELCORE_* environment variables, in that order
// of precedence.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/nathoo/cancelcore/engine"
	"gopkg.in/ini.v1"
)

// Config is the full simulator configuration.
type Config struct {
	Sim     Sim
	Display Display
}

// Sim holds the settings that change simulation results.
type Sim struct {
	Seed           int64   `ini:"seed" env:"CANCELCORE_SEED"`
	BlockChance    int     `ini:"block_chance" env:"CANCELCORE_BLOCK_CHANCE"`
	GlobalSlowRate float64 `ini:"global_slow_rate" env:"CANCELCORE_SLOW_RATE"`
	MaxWait        int     `ini:"max_wait" env:"CANCELCORE_MAX_WAIT"`
}

// Display holds front-end settings.
type Display struct {
	Trace bool `ini:"trace" env:"CANCELCORE_TRACE"`
	Plain bool `ini:"plain" env:"CANCELCORE_PLAIN"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Sim: Sim{
			BlockChance:    30,
			GlobalSlowRate: 1,
			MaxWait:        600,
		},
	}
}

// Load applies the ini file at path (skipped when path is empty) and then
// the environment on top of the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		f, err := ini.Load(path)
		if err != nil {
			return cfg, fmt.Errorf("load ini: %w", err)
		}
		if err := f.Section("sim").MapTo(&cfg.Sim); err != nil {
			return cfg, fmt.Errorf("load ini [sim]: %w", err)
		}
		if err := f.Section("display").MapTo(&cfg.Display); err != nil {
			return cfg, fmt.Errorf("load ini [display]: %w", err)
		}
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the engine cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Sim.BlockChance < 0 || c.Sim.BlockChance > 100:
		return fmt.Errorf("block_chance %d outside 0..100", c.Sim.BlockChance)
	case c.Sim.GlobalSlowRate <= 0:
		return fmt.Errorf("global_slow_rate must be positive, got %g", c.Sim.GlobalSlowRate)
	case c.Sim.MaxWait <= 0:
		return fmt.Errorf("max_wait must be positive, got %d", c.Sim.MaxWait)
	}
	return nil
}

// EngineOptions converts the configuration into engine options.
func (c Config) EngineOptions() engine.Options {
	return engine.Options{
		Seed:           c.Sim.Seed,
		BlockChance:    c.Sim.BlockChance,
		GlobalSlowRate: float32(c.Sim.GlobalSlowRate),
		MaxWait:        c.Sim.MaxWait,
		Trace:          c.Display.Trace,
	}
}

// Exitf prints an error to stderr and exits with status 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "cancelcore: "+format+"\n", args...)
	os.Exit(1)
}
