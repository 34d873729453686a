package export

import (
	"fmt"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/dag"
)

// Kind classifies a node for display.
type Kind string

const (
	KindRaw          Kind = "raw"
	KindNegligible   Kind = "negligible"
	KindSink         Kind = "sink"
	KindIntermediate Kind = "intermediate"
)

// Classify returns the display class of n. A raw material is always KindRaw;
// otherwise negligible output takes precedence over being a sink.
func Classify(n *dag.Node) Kind {
	switch {
	case n.Raw():
		return KindRaw
	case n.Negligible():
		return KindNegligible
	case n.Sink():
		return KindSink
	default:
		return KindIntermediate
	}
}

// Label returns the three-line display label of n: name, speed and factory
// count. The factory count is elided for negligible nodes.
func Label(n *dag.Node) string {
	if n.Negligible() {
		return fmt.Sprintf("%s\n%.2f\n...", n.Name, n.Speed)
	}
	return fmt.Sprintf("%s\n%.2f\n%.1f", n.Name, n.Speed, n.NumFactory)
}

// Walk calls visit for every node upstream of targets. Targets are visited
// first, in order; any other node is visited once every one of its consumer
// edges has been walked. Nodes with a consumer outside the walked set are
// never visited.
func Walk(targets []*dag.Node, visit func(*dag.Node)) {
	remaining := make(map[*dag.Node]int)
	seen := make(map[*dag.Node]bool)

	queue := make([]*dag.Node, 0, len(targets))
	for _, t := range targets {
		if !seen[t] {
			seen[t] = true
			queue = append(queue, t)
		}
	}

	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		visit(n)

		for _, e := range n.Before {
			producer := e.Node
			if seen[producer] {
				continue
			}
			left, ok := remaining[producer]
			if !ok {
				left = len(producer.Next)
			}
			left--
			remaining[producer] = left
			if left == 0 {
				seen[producer] = true
				queue = append(queue, producer)
			}
		}
	}
}

// Collect returns the nodes of Walk(targets) in visit order.
func Collect(targets []*dag.Node) []*dag.Node {
	var nodes []*dag.Node
	Walk(targets, func(n *dag.Node) {
		nodes = append(nodes, n)
	})
	return nodes
}
