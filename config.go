// Public domain.

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// config is the optional TOML file locations config.  Zero values take
// documented defaults; command line options override whatever the file
// supplies.
type config struct {
	Path   string            `toml:"path"`
	PlotCm float64           `toml:"plot_cm"`
	Files  map[string]string `toml:"files"`
}

func loadConfig(path string) (*config, error) {
	cfg := &config{PlotCm: 15}
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("loadConfig: %v", err)
	}
	if cfg.PlotCm <= 0 {
		return nil, fmt.Errorf("loadConfig: plot_cm must be positive")
	}
	return cfg, nil
}
