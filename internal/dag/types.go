package dag

import "github.com/WalterSumbon/dyson-sphere-analysis/internal/manual"

// NegligibleFactories is the factory count below which a node is considered
// to produce a negligible share of the plan.
const NegligibleFactories = 1e-3

// Edge links a node to a neighbour with a per-unit coefficient.
type Edge struct {
	Node *Node
	// Coef is units of the producer consumed per unit of the consumer.
	Coef float64
}

// Node is a single resource within one planning run.
type Node struct {
	Resource manual.ResourceID
	Name     string
	// Recipe is nil for raw materials.
	Recipe *manual.Recipe

	// Before lists the producers this node consumes, in recipe order.
	Before []Edge
	// Next lists the consumers of this node, in link order.
	Next []Edge

	// TimeNeeded is seconds per unit of product; zero for raw materials.
	TimeNeeded float64

	// Speed is throughput in units per minute.
	Speed float64
	// SpeedFixed is set once Speed is final for the run.
	SpeedFixed bool
	// NumFactory is the number of concurrent producers needed for Speed.
	NumFactory float64
}

// Raw reports whether the node has no producers.
func (n *Node) Raw() bool {
	return len(n.Before) == 0
}

// Sink reports whether nothing in the graph consumes the node.
func (n *Node) Sink() bool {
	return len(n.Next) == 0
}

// Negligible reports whether the node needs fewer than NegligibleFactories.
func (n *Node) Negligible() bool {
	return n.NumFactory < NegligibleFactories
}

// NextFixed reports whether every consumer of the node has a fixed speed.
func (n *Node) NextFixed() bool {
	for _, e := range n.Next {
		if !e.Node.SpeedFixed {
			return false
		}
	}
	return true
}
