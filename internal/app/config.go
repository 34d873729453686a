package app

import (
	"errors"
	"fmt"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/config"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/export"
)

// DefaultManualPath is the recipe manual read when none is given.
const DefaultManualPath = "data.txt"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ManualPath string // recipe file or directory of .txt recipe files
	PlanPath   string // optional .hcl, .toml or .yaml plan file

	// Targets are given on the command line; they follow the plan file's targets.
	Targets []config.Target

	Format     export.Format
	OutputPath string // empty means the app's output writer

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and fills in defaults.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ManualPath == "" {
		return nil, errors.New("ManualPath is a required configuration field and cannot be empty")
	}
	if cfg.PlanPath == "" && len(cfg.Targets) == 0 {
		return nil, errors.New("no targets given: pass NAME=SPEED arguments or a plan file")
	}

	if cfg.Format == "" {
		cfg.Format = export.FormatTable
	}
	f, err := export.ParseFormat(string(cfg.Format))
	if err != nil {
		return nil, err
	}
	cfg.Format = f

	switch cfg.LogFormat {
	case "", "text", "json":
	default:
		return nil, fmt.Errorf("invalid log format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	return &cfg, nil
}
