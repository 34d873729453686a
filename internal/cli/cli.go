package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/app"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/config"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/export"
)

// EnvPrefix prefixes the environment variables that mirror each flag, e.g.
// DSP_MANUAL or DSP_LOG_LEVEL.
const EnvPrefix = "DSP"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

const longHelp = `dsp - production-chain rate planner.

Reads a recipe manual and computes, for every resource needed to produce the
requested targets, the throughput in units per minute and the number of
factories required to sustain it.

Recipe lines have the form

  RATE PRODUCT [COEF INGREDIENT]... SECONDS

and targets are given as NAME=SPEED arguments (units per minute) or in a
.hcl, .toml or .yaml plan file. Every flag can also be set through a
DSP_<FLAG> environment variable, e.g. DSP_MANUAL or DSP_LOG_LEVEL.`

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	if args == nil {
		args = []string{}
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	var cfg *app.Config
	cmd := &cobra.Command{
		Use:           "dsp [flags] [NAME=SPEED ...]",
		Short:         "Compute production rates and factory counts for a recipe manual",
		Long:          longHelp,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, positional []string) error {
			if len(positional) == 0 && v.GetString("plan") == "" {
				slog.Debug("No targets provided, printing usage and exiting.")
				return cmd.Help()
			}

			c, err := buildConfig(v, positional)
			if err != nil {
				return err
			}
			cfg = c
			return nil
		},
	}
	cmd.SetArgs(args)
	cmd.SetOut(output)
	cmd.SetErr(output)

	flags := cmd.Flags()
	flags.StringP("manual", "m", app.DefaultManualPath, "Path to the recipe manual file, or a directory of .txt recipe files.")
	flags.StringP("plan", "p", "", "Path to a .hcl, .toml or .yaml plan file listing targets.")
	flags.StringP("format", "f", string(export.FormatTable), "Output format. Options: 'table', 'dot' or 'yaml'.")
	flags.StringP("output", "o", "", "Write the plan to this file instead of stdout.")
	flags.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	flags.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := v.BindPFlags(flags); err != nil {
		return nil, false, fmt.Errorf("failed to bind flags: %w", err)
	}

	if err := cmd.Execute(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if cfg == nil {
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// buildConfig validates the merged flag and environment values.
func buildConfig(v *viper.Viper, positional []string) (*app.Config, error) {
	logFormat := strings.ToLower(v.GetString("log-format"))
	if logFormat != "text" && logFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(v.GetString("log-level"))
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	targets, err := config.ParseTargetArgs(positional)
	if err != nil {
		return nil, err
	}
	slog.Debug("CLI parameter validation complete.", "targets", len(targets))

	return app.NewConfig(app.Config{
		ManualPath: v.GetString("manual"),
		PlanPath:   v.GetString("plan"),
		Targets:    targets,
		Format:     export.Format(v.GetString("format")),
		OutputPath: v.GetString("output"),
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
}
