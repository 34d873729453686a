package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
	runID  string
}

// NewApp is the constructor for the main application. The rendered plan is
// written to outW unless the config names an output file; logs go to logW.
func NewApp(outW, logW io.Writer, cfg *Config) *App {
	runID := uuid.NewString()
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW).With("run_id", runID)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
		runID:  runID,
	}
}

// RunID returns the identifier attached to every log line of this app.
func (a *App) RunID() string {
	return a.runID
}
