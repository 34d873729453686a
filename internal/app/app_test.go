package app

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/config"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/dag"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/export"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/manual"
)

const testManual = `
; smelting
1 plate 1 ore 2
; parts
1 gear 2 plate 1
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "json"
	}
	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	out, logs := &bytes.Buffer{}, &bytes.Buffer{}
	return NewApp(out, logs, validated), out, logs
}

func TestRun_CommandLineTargets(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	a, out, logs := newTestApp(t, Config{
		ManualPath: writeFile(t, dir, "data.txt", testManual),
		Targets:    []config.Target{{Name: "gear", Speed: 30}},
		Format:     export.FormatYAML,
	})

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Contains(t, out.String(), "name: gear")
	assert.Contains(t, out.String(), "name: plate")
	assert.Contains(t, out.String(), "kind: raw")

	// Every log line carries the run id.
	lines := strings.Split(strings.TrimSpace(logs.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		assert.Equal(t, a.RunID(), entry["run_id"])
	}
	assert.Contains(t, logs.String(), "Plan computed.")
}

func TestRun_TargetConsumedByAnotherTarget(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	plan := writeFile(t, dir, "plan.hcl", `
target "gear" {
  speed = 2 * 15
}
`)
	outPath := filepath.Join(dir, "plan.dot")
	a, out, _ := newTestApp(t, Config{
		ManualPath: writeFile(t, dir, "data.txt", testManual),
		PlanPath:   plan,
		Targets:    []config.Target{{Name: "plate", Speed: 10}},
		Format:     export.FormatDOT,
		OutputPath: outPath,
	})

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.Error(t, err, "plate is consumed by gear and cannot be a target")
	assert.Empty(t, out.String())
	_, statErr := os.Stat(outPath)
	assert.True(t, os.IsNotExist(statErr), "nothing is written for a failed plan")
}

func TestRun_WritesOutputFile(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	plan := writeFile(t, dir, "plan.toml", `
[[target]]
name = "gear"
speed = 30
`)
	outPath := filepath.Join(dir, "plan.dot")
	a, out, _ := newTestApp(t, Config{
		ManualPath: writeFile(t, dir, "data.txt", testManual),
		PlanPath:   plan,
		Format:     export.FormatDOT,
		OutputPath: outPath,
	})

	// --- Act ---
	err := a.Run(context.Background())

	// --- Assert ---
	require.NoError(t, err)
	assert.Empty(t, out.String(), "the plan goes to the output file only")

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(written), `digraph "gear" {`))
	assert.Contains(t, string(written), `"plate" -> "gear";`)
}

func TestRun_ManualDirectory(t *testing.T) {
	dir := t.TempDir()
	recipes := filepath.Join(dir, "recipes")
	require.NoError(t, os.Mkdir(recipes, 0o700))
	writeFile(t, recipes, "smelting.txt", "1 plate 1 ore 2\n")
	writeFile(t, recipes, "parts.txt", "1 gear 2 plate 1\n")

	a, out, _ := newTestApp(t, Config{
		ManualPath: recipes,
		Targets:    []config.Target{{Name: "gear", Speed: 60}},
	})

	require.NoError(t, a.Run(context.Background()))
	assert.Contains(t, out.String(), "Production plan: gear")
}

func TestRun_Errors(t *testing.T) {
	dir := t.TempDir()
	data := writeFile(t, dir, "data.txt", testManual)

	t.Run("missing manual", func(t *testing.T) {
		a, _, _ := newTestApp(t, Config{
			ManualPath: filepath.Join(dir, "absent.txt"),
			Targets:    []config.Target{{Name: "gear", Speed: 1}},
		})
		err := a.Run(context.Background())
		assert.ErrorContains(t, err, "failed to load recipe manual")
	})

	t.Run("malformed manual", func(t *testing.T) {
		a, _, _ := newTestApp(t, Config{
			ManualPath: writeFile(t, dir, "bad.txt", "1 gear 2 plate\n"),
			Targets:    []config.Target{{Name: "gear", Speed: 1}},
		})
		err := a.Run(context.Background())
		var fe *manual.FormatError
		assert.True(t, errors.As(err, &fe))
	})

	t.Run("unknown target", func(t *testing.T) {
		a, _, _ := newTestApp(t, Config{
			ManualPath: data,
			Targets:    []config.Target{{Name: "rocket", Speed: 1}},
		})
		err := a.Run(context.Background())
		var ue *dag.UnknownResourceError
		assert.True(t, errors.As(err, &ue))
	})

	t.Run("unsupported plan file", func(t *testing.T) {
		a, _, _ := newTestApp(t, Config{
			ManualPath: data,
			PlanPath:   writeFile(t, dir, "plan.json", "{}"),
		})
		err := a.Run(context.Background())
		assert.ErrorContains(t, err, "failed to load plan")
	})

	t.Run("empty plan file", func(t *testing.T) {
		a, _, _ := newTestApp(t, Config{
			ManualPath: data,
			PlanPath:   writeFile(t, dir, "empty.yaml", "targets: []\n"),
		})
		err := a.Run(context.Background())
		assert.ErrorContains(t, err, "invalid plan")
	})

	t.Run("ambiguous recipe", func(t *testing.T) {
		a, _, _ := newTestApp(t, Config{
			ManualPath: writeFile(t, dir, "dup.txt", "1 gear 1 ore 1\n1 gear 2 ore 1\n"),
			Targets:    []config.Target{{Name: "gear", Speed: 1}},
		})
		err := a.Run(context.Background())
		var ae *dag.AmbiguousRecipeError
		assert.True(t, errors.As(err, &ae))
	})
}

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := NewConfig(Config{ManualPath: "data.txt", PlanPath: "plan.hcl"})
		require.NoError(t, err)
		assert.Equal(t, export.FormatTable, cfg.Format)
	})

	t.Run("normalizes format", func(t *testing.T) {
		cfg, err := NewConfig(Config{ManualPath: "data.txt", PlanPath: "plan.hcl", Format: "DOT"})
		require.NoError(t, err)
		assert.Equal(t, export.FormatDOT, cfg.Format)
	})

	testCases := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"no manual", Config{PlanPath: "plan.hcl"}, "ManualPath is a required"},
		{"no targets", Config{ManualPath: "data.txt"}, "no targets given"},
		{"bad format", Config{ManualPath: "data.txt", PlanPath: "p.hcl", Format: "png"}, "unknown output format"},
		{"bad log format", Config{ManualPath: "data.txt", PlanPath: "p.hcl", LogFormat: "xml"}, "invalid log format"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewConfig(tc.cfg)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger("warn", "text", &buf)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warning"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}
