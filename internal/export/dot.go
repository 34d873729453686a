package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/dag"
)

var dotEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)

func dotQuote(s string) string {
	return `"` + dotEscaper.Replace(s) + `"`
}

func dotAttrs(n *dag.Node) string {
	color := "black"
	style := ""
	switch Classify(n) {
	case KindRaw:
		color = "green"
	case KindNegligible:
		color = "red"
	case KindSink:
		color = "yellow"
	}
	if n.Sink() {
		style = "filled"
	}

	attrs := fmt.Sprintf("label=%s, color=%s", dotQuote(Label(n)), color)
	if style != "" {
		attrs += ", style=" + style
	}
	return attrs
}

// WriteDOT writes the plan rooted at targets as a Graphviz digraph named
// name. Each node is emitted with its producer-to-consumer edges.
func WriteDOT(w io.Writer, name string, targets []*dag.Node) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", dotQuote(name))
	fmt.Fprintf(bw, "\tnode [shape=box];\n")

	Walk(targets, func(n *dag.Node) {
		fmt.Fprintf(bw, "\t%s [%s];\n", dotQuote(n.Name), dotAttrs(n))
		for _, e := range n.Next {
			fmt.Fprintf(bw, "\t%s -> %s;\n", dotQuote(n.Name), dotQuote(e.Node.Name))
		}
	})

	fmt.Fprintln(bw, "}")
	return bw.Flush()
}
