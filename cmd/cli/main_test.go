package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRun_EndToEnd(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	tempDir := t.TempDir()
	manualPath := filepath.Join(tempDir, "data.txt")
	err := os.WriteFile(manualPath, []byte("1 plate 1 ore 2\n1 gear 2 plate 1\n"), 0600)
	require.NoError(t, err, "failed to set up test file")

	args := []string{"-m", manualPath, "-f", "dot", "gear=60"}
	out, logs := &bytes.Buffer{}, &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, logs, args)

	// --- Assert ---
	require.NoError(t, runErr)
	require.Contains(t, out.String(), `digraph "gear" {`)
	require.Contains(t, out.String(), `"ore" -> "plate";`)
	require.Contains(t, logs.String(), "Plan computed.")
}

func TestRun_DomainError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// A recipe line with an even token count is malformed.
	tempDir := t.TempDir()
	manualPath := filepath.Join(tempDir, "data.txt")
	err := os.WriteFile(manualPath, []byte("1 gear 2 plate\n"), 0600)
	require.NoError(t, err, "failed to set up test file")

	out := &bytes.Buffer{}

	// --- Act ---
	runErr := run(out, &bytes.Buffer{}, []string{"-m", manualPath, "gear=1"})

	// --- Assert ---
	require.Error(t, runErr)
	require.Contains(t, runErr.Error(), "failed to load recipe manual")
	require.Contains(t, runErr.Error(), "data.txt:1")
	require.Empty(t, out.String())
}

func TestRunPlanner_PanicRecovery(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	panicking := func(context.Context) error {
		panic("node table corrupted")
	}

	// --- Act ---
	err := runPlanner(context.Background(), panicking)

	// --- Assert ---
	require.Error(t, err, "runPlanner() should return an error after recovering from a panic")
	require.Contains(t, err.Error(), "planner panicked")
	require.Contains(t, err.Error(), "node table corrupted")
}

func TestRunPlanner_PassesErrorThrough(t *testing.T) {
	t.Parallel()

	want := errors.New("boom")
	err := runPlanner(context.Background(), func(context.Context) error { return want })

	require.ErrorIs(t, err, want)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	args := []string{"-h"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should see `shouldExit=true` and return a nil error.
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	// Providing an unknown flag will cause cli.Parse to return an error.
	args := []string{"--this-is-not-a-valid-flag"}
	out := &bytes.Buffer{}

	// --- Act ---
	// The run function should propagate the error from cli.Parse.
	err := run(out, &bytes.Buffer{}, args)

	// --- Assert ---
	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "unknown flag: --this-is-not-a-valid-flag")
}
