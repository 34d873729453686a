package propagate

import (
	"context"
	"fmt"
	"math"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/ctxlog"
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/dag"
)

// SecondsPerMinute converts per-minute speeds against per-second batch times.
const SecondsPerMinute = 60

// Target is a resource whose speed is declared externally.
type Target struct {
	Name  string
	Speed float64
}

// Plan is the result of one propagation run.
type Plan struct {
	// Targets are the target nodes in declaration order.
	Targets []*dag.Node
	// Order lists every node in the order its speed was fixed: targets first,
	// raw materials last.
	Order []*dag.Node
}

// Propagator drives speed propagation over one graph.
type Propagator struct {
	graph *dag.Graph
	// pending counts, per node, consumer edges whose speed is not fixed yet.
	pending map[*dag.Node]int
	order   []*dag.Node
}

// New returns a Propagator over g. The graph should be fully built before
// the first SetSpeed call.
func New(g *dag.Graph) *Propagator {
	return &Propagator{
		graph:   g,
		pending: make(map[*dag.Node]int),
	}
}

// Order returns the nodes fixed so far, in fix order.
func (p *Propagator) Order() []*dag.Node {
	return p.order
}

// SetSpeed declares speed (units per minute) on n and propagates it to every
// producer whose consumers are now all fixed.
func (p *Propagator) SetSpeed(ctx context.Context, n *dag.Node, speed float64) error {
	if math.IsNaN(speed) || math.IsInf(speed, 0) || speed < 0 {
		return &InvalidSpeedError{Name: n.Name, Speed: speed}
	}
	if n.SpeedFixed {
		return &AlreadyFixedError{Name: n.Name, Speed: n.Speed}
	}
	if !n.Sink() {
		consumers := make([]string, 0, len(n.Next))
		for _, e := range n.Next {
			consumers = append(consumers, e.Node.Name)
		}
		return &TargetConflictError{Name: n.Name, Consumers: consumers}
	}
	if stale := fixedAncestor(n); stale != nil {
		return &StaleGraphError{Name: stale.Name}
	}

	ctxlog.FromContext(ctx).Debug("Declaring target speed.", "resource", n.Name, "speed", speed)
	n.Speed = speed
	return p.drain(ctx, n)
}

// drain fixes start and every node that becomes ready after it.
func (p *Propagator) drain(ctx context.Context, start *dag.Node) error {
	logger := ctxlog.FromContext(ctx)
	queue := []*dag.Node{start}

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		n := queue[0]
		queue = queue[1:]

		p.fix(n)
		logger.Debug("Speed fixed.", "resource", n.Name, "speed", n.Speed, "factories", n.NumFactory)

		for _, e := range n.Before {
			producer := e.Node
			if producer.SpeedFixed {
				return &StaleGraphError{Name: producer.Name}
			}
			remaining, seen := p.pending[producer]
			if !seen {
				remaining = len(producer.Next)
			}
			remaining--
			p.pending[producer] = remaining
			if remaining > 0 {
				continue
			}

			producer.Speed = consumedSpeed(producer)
			queue = append(queue, producer)
		}
	}
	return nil
}

// fixedAncestor returns a producer upstream of n whose speed is already
// fixed, or nil. Draining n would have to reach such a node again.
func fixedAncestor(n *dag.Node) *dag.Node {
	seen := make(map[*dag.Node]bool)
	stack := []*dag.Node{n}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range cur.Before {
			if e.Node.SpeedFixed {
				return e.Node
			}
			if !seen[e.Node] {
				seen[e.Node] = true
				stack = append(stack, e.Node)
			}
		}
	}
	return nil
}

func (p *Propagator) fix(n *dag.Node) {
	n.NumFactory = n.Speed * n.TimeNeeded / SecondsPerMinute
	n.SpeedFixed = true
	p.order = append(p.order, n)
}

// consumedSpeed is the total rate at which n's consumers draw from it.
func consumedSpeed(n *dag.Node) float64 {
	var sum float64
	for _, e := range n.Next {
		sum += e.Node.Speed * e.Coef
	}
	return sum
}

// Run plans every target on g. All target nodes are built before any speed
// is declared, so a target that another target consumes is detected no
// matter the declaration order.
func Run(ctx context.Context, g *dag.Graph, targets []Target) (*Plan, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Run: Building target nodes.", "targets", len(targets))

	seen := make(map[string]bool, len(targets))
	nodes := make([]*dag.Node, 0, len(targets))
	for _, t := range targets {
		if seen[t.Name] {
			return nil, &DuplicateTargetError{Name: t.Name}
		}
		seen[t.Name] = true

		n, err := g.Node(t.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to build graph for target '%s': %w", t.Name, err)
		}
		nodes = append(nodes, n)
	}
	if err := g.DetectCycles(); err != nil {
		return nil, err
	}
	logger.Debug("Run: Graph built.", "node_count", g.Len())

	p := New(g)
	for i, t := range targets {
		if err := p.SetSpeed(ctx, nodes[i], t.Speed); err != nil {
			return nil, err
		}
	}

	var pending []string
	for _, n := range g.Nodes() {
		if !n.SpeedFixed {
			pending = append(pending, n.Name)
		}
	}
	if len(pending) > 0 {
		return nil, &StalledError{Pending: pending}
	}

	logger.Debug("Run: Propagation complete.", "node_count", len(p.order))
	return &Plan{Targets: nodes, Order: p.Order()}, nil
}
