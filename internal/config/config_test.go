package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/ctxlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writePlan writes content to name inside a fresh temp dir and returns the path.
func writePlan(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600), "failed to set up test file")
	return path
}

func testCtx() context.Context {
	return ctxlog.Discard(context.Background())
}

func TestLoadFile(t *testing.T) {
	want := []Target{{Name: "circuit", Speed: 120}, {Name: "gear", Speed: 7.5}}

	testCases := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "hcl",
			file: "plan.hcl",
			content: `
target "circuit" {
  speed = 2 * 60
}

target "gear" {
  speed = 15 / 2
}
`,
		},
		{
			name: "toml",
			file: "plan.toml",
			content: `
[[target]]
name = "circuit"
speed = 120.0

[[target]]
name = "gear"
speed = 7.5
`,
		},
		{
			name: "yaml",
			file: "plan.yaml",
			content: `
targets:
  - name: circuit
    speed: 120.0
  - name: gear
    speed: 7.5
`,
		},
		{
			name:    "yml flow style",
			file:    "plan.YML",
			content: "targets: [{name: circuit, speed: 120.0}, {name: gear, speed: 7.5}]\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writePlan(t, tc.file, tc.content)

			model, err := LoadFile(testCtx(), path)
			require.NoError(t, err)
			assert.Equal(t, want, model.Targets)
			assert.NoError(t, model.Validate())
		})
	}
}

func TestLoadFile_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{name: "unknown extension", file: "plan.json", content: "{}", wantErr: "unsupported plan file extension"},
		{name: "hcl syntax", file: "plan.hcl", content: `target "a" {`, wantErr: "failed to parse"},
		{name: "hcl variable", file: "plan.hcl", content: `target "a" { speed = var.x }`, wantErr: "failed to decode"},
		{name: "hcl function", file: "plan.hcl", content: `target "a" { speed = max(1, 2) }`, wantErr: "failed to decode"},
		{name: "hcl missing speed", file: "plan.hcl", content: `target "a" {}`, wantErr: "failed to decode"},
		{name: "toml unknown key", file: "plan.toml", content: "[[target]]\nname = \"a\"\nrate = 1.0\n", wantErr: "unknown keys"},
		{name: "toml syntax", file: "plan.toml", content: "[[target]\n", wantErr: "parsing TOML plan"},
		{name: "yaml unknown key", file: "plan.yaml", content: "targets:\n  - name: a\n    rate: 1\n", wantErr: "parsing YAML plan"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writePlan(t, tc.file, tc.content)

			_, err := LoadFile(testCtx(), path)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(testCtx(), filepath.Join(t.TempDir(), "absent.toml"))
		assert.ErrorContains(t, err, "reading plan file")
	})
}

func TestParseTargetArg(t *testing.T) {
	testCases := []struct {
		arg     string
		want    Target
		wantErr string
	}{
		{arg: "circuit=60", want: Target{Name: "circuit", Speed: 60}},
		{arg: "gear=2*30+1", want: Target{Name: "gear", Speed: 61}},
		{arg: "a=b=3", want: Target{Name: "a=b", Speed: 3}},
		{arg: "circuit", wantErr: "expected NAME=SPEED"},
		{arg: "=60", wantErr: "expected NAME=SPEED"},
		{arg: "circuit=", wantErr: "expected NAME=SPEED"},
		{arg: "circuit=fast", wantErr: "invalid speed"},
	}

	for _, tc := range testCases {
		t.Run(tc.arg, func(t *testing.T) {
			got, err := ParseTargetArg(tc.arg)
			if tc.wantErr != "" {
				assert.ErrorContains(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseTargetArgs(t *testing.T) {
	targets, err := ParseTargetArgs([]string{"a=1", "b=2"})
	require.NoError(t, err)
	assert.Equal(t, []Target{{Name: "a", Speed: 1}, {Name: "b", Speed: 2}}, targets)

	_, err = ParseTargetArgs([]string{"a=1", "b"})
	assert.Error(t, err)
}

func TestModel_Validate(t *testing.T) {
	assert.ErrorContains(t, (&Model{}).Validate(), "no targets given")
	assert.ErrorContains(t, (&Model{Targets: []Target{{Name: ""}}}).Validate(), "empty name")
	assert.ErrorContains(t, (&Model{Targets: []Target{{Name: "a b"}}}).Validate(), "whitespace")

	m := &Model{}
	m.Append(Target{Name: "a", Speed: 1}, Target{Name: "b", Speed: 2})
	assert.NoError(t, m.Validate())
	assert.Equal(t, []string{"a", "b"}, m.Names())
}
