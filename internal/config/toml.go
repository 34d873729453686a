package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/ctxlog"
)

type tomlPlan struct {
	Targets []fileTarget `toml:"target"`
}

// fileTarget is shared by the TOML and YAML schemas.
type fileTarget struct {
	Name  string  `toml:"name" yaml:"name"`
	Speed float64 `toml:"speed" yaml:"speed"`
}

// TOMLLoader reads plan files with [[target]] tables.
type TOMLLoader struct{}

// NewTOMLLoader creates a new TOML plan loader.
func NewTOMLLoader() *TOMLLoader {
	return &TOMLLoader{}
}

// Load implements Loader.
func (l *TOMLLoader) Load(ctx context.Context, path string) (*Model, error) {
	ctxlog.FromContext(ctx).Debug("Parsing TOML plan file.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var plan tomlPlan
	meta, err := toml.Decode(string(data), &plan)
	if err != nil {
		return nil, fmt.Errorf("parsing TOML plan %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		return nil, fmt.Errorf("parsing TOML plan %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return fromFileTargets(plan.Targets), nil
}

func fromFileTargets(targets []fileTarget) *Model {
	model := &Model{}
	for _, t := range targets {
		model.Append(Target{Name: t.Name, Speed: t.Speed})
	}
	return model
}
