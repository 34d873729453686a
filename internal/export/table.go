package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/dag"
)

var (
	colorRaw        = lipgloss.Color("#2CD7C7")
	colorNegligible = lipgloss.Color("#E74C3C")
	colorSink       = lipgloss.Color("#F4D03F")
	colorMuted      = lipgloss.Color("#2C4A54")
)

var tableHeader = []string{"RESOURCE", "KIND", "SPEED/MIN", "FACTORIES"}

// tableStyles holds styles bound to one renderer, so colour output follows
// the capabilities of the destination writer.
type tableStyles struct {
	title  lipgloss.Style
	header lipgloss.Style
	cell   lipgloss.Style
	kinds  map[Kind]lipgloss.Style
}

func newTableStyles(r *lipgloss.Renderer) tableStyles {
	return tableStyles{
		title:  r.NewStyle().Bold(true),
		header: r.NewStyle().Bold(true).Foreground(colorMuted),
		cell:   r.NewStyle(),
		kinds: map[Kind]lipgloss.Style{
			KindRaw:          r.NewStyle().Foreground(colorRaw),
			KindNegligible:   r.NewStyle().Foreground(colorNegligible),
			KindSink:         r.NewStyle().Foreground(colorSink).Bold(true),
			KindIntermediate: r.NewStyle(),
		},
	}
}

func tableRow(n *dag.Node) []string {
	factories := "..."
	if !n.Negligible() {
		factories = fmt.Sprintf("%.1f", n.NumFactory)
	}
	return []string{n.Name, string(Classify(n)), fmt.Sprintf("%.2f", n.Speed), factories}
}

// WriteTable writes the plan rooted at targets as an aligned table, one row
// per node in walk order.
func WriteTable(w io.Writer, targets []*dag.Node) error {
	st := newTableStyles(lipgloss.NewRenderer(w))

	nodes := Collect(targets)
	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, tableRow(n))
	}

	widths := make([]int, len(tableHeader))
	for i, h := range tableHeader {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell))
		}
	}

	names := make([]string, 0, len(targets))
	for _, t := range targets {
		names = append(names, t.Name)
	}

	var b strings.Builder
	b.WriteString(st.title.Render("Production plan: " + strings.Join(names, ", ")))
	b.WriteString("\n\n")
	b.WriteString(renderRow(tableHeader, widths, func(int) lipgloss.Style { return st.header }))
	for i, row := range rows {
		kind := Classify(nodes[i])
		b.WriteString(renderRow(row, widths, func(col int) lipgloss.Style {
			if col <= 1 {
				return st.kinds[kind]
			}
			return st.cell
		}))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// renderRow pads each cell to its column width; numeric columns are right
// aligned.
func renderRow(cells []string, widths []int, style func(col int) lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		s := style(i).Width(widths[i])
		if i >= 2 {
			s = s.Align(lipgloss.Right)
		}
		parts[i] = s.Render(cell)
	}
	return strings.Join(parts, "  ") + "\n"
}
