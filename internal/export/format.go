package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/dag"
)

// Format selects an output renderer.
type Format string

const (
	FormatTable Format = "table"
	FormatDOT   Format = "dot"
	FormatYAML  Format = "yaml"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatTable, FormatDOT, FormatYAML}

// ParseFormat resolves a case-insensitive format name.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q: must be one of table, dot, yaml", s)
}

// Write renders the plan rooted at targets in format f.
func Write(w io.Writer, f Format, targets []*dag.Node) error {
	switch f {
	case FormatTable:
		return WriteTable(w, targets)
	case FormatDOT:
		return WriteDOT(w, GraphName(targets), targets)
	case FormatYAML:
		return WriteYAML(w, targets)
	default:
		return fmt.Errorf("unknown output format %q", f)
	}
}

// GraphName joins the target names with underscores.
func GraphName(targets []*dag.Node) string {
	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, t.Name)
	}
	return strings.Join(names, "_")
}
