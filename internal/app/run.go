package app

import (
	"context"
	"fmt"
	"os"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/config"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/ctxlog"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/dag"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/export"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/manual"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/propagate"
)

// Run computes one production plan and renders it.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	m, err := manual.Load(a.config.ManualPath)
	if err != nil {
		return fmt.Errorf("failed to load recipe manual: %w", err)
	}
	a.logger.Debug("Recipe manual loaded.", "path", a.config.ManualPath,
		"resources", len(m.Resources()), "recipes", len(m.Recipes()))

	model, err := a.loadPlan(ctx)
	if err != nil {
		return err
	}
	a.logger.Debug("Plan loaded.", "targets", model.Names())

	targets := make([]propagate.Target, 0, len(model.Targets))
	for _, t := range model.Targets {
		targets = append(targets, propagate.Target{Name: t.Name, Speed: t.Speed})
	}

	g := dag.New(m)
	plan, err := propagate.Run(ctx, g, targets)
	if err != nil {
		return fmt.Errorf("failed to compute plan: %w", err)
	}
	a.logger.Info("Plan computed.", "targets", len(plan.Targets), "nodes", len(plan.Order))

	if err := a.write(plan); err != nil {
		return fmt.Errorf("failed to write plan: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// loadPlan merges the plan file's targets with the command-line targets.
func (a *App) loadPlan(ctx context.Context) (*config.Model, error) {
	model := &config.Model{}
	if a.config.PlanPath != "" {
		loaded, err := config.LoadFile(ctx, a.config.PlanPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load plan: %w", err)
		}
		model = loaded
	}
	model.Append(a.config.Targets...)

	if err := model.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}
	return model, nil
}

func (a *App) write(plan *propagate.Plan) (err error) {
	if a.config.OutputPath == "" {
		return export.Write(a.outW, a.config.Format, plan.Targets)
	}

	f, err := os.Create(a.config.OutputPath)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if err := export.Write(f, a.config.Format, plan.Targets); err != nil {
		return err
	}
	a.logger.Info("Plan written.", "path", a.config.OutputPath, "format", a.config.Format)
	return nil
}
