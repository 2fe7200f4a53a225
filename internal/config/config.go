// Package config loads runtime settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config carries the environment-tunable settings. Everything has a
// working zero/default so a bare environment runs the picker unchanged.
type Config struct {
	// PrefsPath overrides the preference file location (default
	// ~/.mojigrid/prefs.json).
	PrefsPath string `env:"MOJIGRID_PREFS"`
	// RecentsMax caps the recents list.
	RecentsMax int `env:"MOJIGRID_RECENTS_MAX" envDefault:"50"`
	// NoClipboard disables clipboard writes; picks are still recorded in
	// the recents list. Useful over SSH where no clipboard exists.
	NoClipboard bool `env:"MOJIGRID_NO_CLIPBOARD"`
}

// FromEnv parses the environment into a Config.
func FromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
