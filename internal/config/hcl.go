package config

import (
	"context"
	"fmt"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/ctxlog"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// hclPlan is the decoding schema for .hcl plan files.
type hclPlan struct {
	Targets []*hclTarget `hcl:"target,block"`
}

type hclTarget struct {
	Name string `hcl:"name,label"`
	// Speed may be any HCL arithmetic expression; the file is decoded
	// without an evaluation context, so variables and functions are errors.
	Speed float64 `hcl:"speed"`
}

// HCLLoader reads plan files written in HCL native syntax.
type HCLLoader struct {
	parser *hclparse.Parser
}

// NewHCLLoader creates a new HCL plan loader.
func NewHCLLoader() *HCLLoader {
	return &HCLLoader{parser: hclparse.NewParser()}
}

// Load implements Loader.
func (l *HCLLoader) Load(ctx context.Context, path string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Parsing HCL plan file.", "path", path)

	file, diags := l.parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse %s: %w", path, diags)
	}

	var plan hclPlan
	if diags := gohcl.DecodeBody(file.Body, nil, &plan); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode %s: %w", path, diags)
	}

	model := &Model{}
	for _, t := range plan.Targets {
		model.Append(Target{Name: t.Name, Speed: t.Speed})
	}
	logger.Debug("HCL plan file loaded.", "path", path, "targets", len(model.Targets))
	return model, nil
}
