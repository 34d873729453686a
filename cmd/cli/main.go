package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/app"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/cli"
)

// main is the entrypoint for the dsp planner.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	planner := app.NewApp(outW, errW, appConfig)
	return runPlanner(context.Background(), planner.Run)
}

// runPlanner calls plan and turns a panic into an error, so an unexpected
// failure still ends with a clean message.
func runPlanner(ctx context.Context, plan func(context.Context) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("planner panicked: %v", r)
		}
	}()
	return plan(ctx)
}
