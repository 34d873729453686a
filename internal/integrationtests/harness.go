package integrationtests

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/app"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of a planner run.
type HarnessResult struct {
	Dir       string
	Output    string
	LogOutput string
	Err       error
	App       *app.App
}

// RunPlanner writes files into a temporary directory and runs the planner
// with cfg. Relative ManualPath, PlanPath and OutputPath values are resolved
// against that directory.
func RunPlanner(t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()
	return RunPlannerWithContext(context.Background(), t, files, cfg)
}

// RunPlannerWithContext is RunPlanner with a caller-provided context.
func RunPlannerWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config) *HarnessResult {
	t.Helper()

	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}

	cfg.ManualPath = resolve(dir, cfg.ManualPath)
	cfg.PlanPath = resolve(dir, cfg.PlanPath)
	cfg.OutputPath = resolve(dir, cfg.OutputPath)
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}

	validated, err := app.NewConfig(cfg)
	require.NoError(t, err, "harness config must be valid")

	out, logs := &SafeBuffer{}, &SafeBuffer{}
	a := app.NewApp(out, logs, validated)
	runErr := a.Run(ctx)

	return &HarnessResult{
		Dir:       dir,
		Output:    out.String(),
		LogOutput: logs.String(),
		Err:       runErr,
		App:       a,
	}
}

// ReadFile returns the content of a file the run produced, relative to Dir.
func (r *HarnessResult) ReadFile(t *testing.T, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(r.Dir, name))
	require.NoError(t, err)
	return string(b)
}

func resolve(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
