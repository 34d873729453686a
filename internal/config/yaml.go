package config

import (
	"context"
	"fmt"
	"os"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/ctxlog"
	"github.com/goccy/go-yaml"
)

type yamlPlan struct {
	Targets []fileTarget `yaml:"targets"`
}

// YAMLLoader reads plan files with a top-level targets list.
type YAMLLoader struct{}

// NewYAMLLoader creates a new YAML plan loader.
func NewYAMLLoader() *YAMLLoader {
	return &YAMLLoader{}
}

// Load implements Loader.
func (l *YAMLLoader) Load(ctx context.Context, path string) (*Model, error) {
	ctxlog.FromContext(ctx).Debug("Parsing YAML plan file.", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading plan file: %w", err)
	}

	var plan yamlPlan
	if err := yaml.UnmarshalWithOptions(data, &plan, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("parsing YAML plan %s: %w", path, err)
	}
	return fromFileTargets(plan.Targets), nil
}
