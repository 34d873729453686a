package testutil

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/ctxlog"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/dag"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/manual"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/propagate"
)

// Context returns a background context whose logger discards everything.
func Context() context.Context {
	return ctxlog.Discard(context.Background())
}

// Graph parses text as a recipe manual and returns an empty graph over it.
func Graph(t *testing.T, text string) *dag.Graph {
	t.Helper()
	m, err := manual.ParseString(text, "test.txt")
	require.NoError(t, err)
	return dag.New(m)
}

// Node builds (or returns) the node for name, failing the test on error.
func Node(t *testing.T, g *dag.Graph, name string) *dag.Node {
	t.Helper()
	n, err := g.Node(name)
	require.NoError(t, err)
	return n
}

// Plan parses text, propagates targets over it and returns the plan.
func Plan(t *testing.T, text string, targets ...propagate.Target) *propagate.Plan {
	t.Helper()
	plan, err := propagate.Run(Context(), Graph(t, text), targets)
	require.NoError(t, err)
	return plan
}
