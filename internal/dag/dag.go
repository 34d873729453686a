package dag

import (
	"github.com/WalterSumbon/dyson-sphere-analysis/internal/manual"
)

// Graph is the memoized set of nodes built from one manual.
type Graph struct {
	manual *manual.Manual
	nodes  map[manual.ResourceID]*Node
	// order holds nodes in creation order; producers always precede consumers.
	order []*Node
}

// New creates and returns an empty graph over m.
func New(m *manual.Manual) *Graph {
	return &Graph{
		manual: m,
		nodes:  make(map[manual.ResourceID]*Node),
	}
}

// Manual returns the manual the graph is built from.
func (g *Graph) Manual() *manual.Manual {
	return g.manual
}

// Node returns the node for name, creating it and its producer ancestry on
// first request.
func (g *Graph) Node(name string) (*Node, error) {
	id, ok := g.manual.Lookup(name)
	if !ok {
		return nil, &UnknownResourceError{Name: name}
	}
	return g.node(id)
}

// Lookup returns an already materialized node without building anything.
func (g *Graph) Lookup(name string) (*Node, bool) {
	id, ok := g.manual.Lookup(name)
	if !ok {
		return nil, false
	}
	n, ok := g.nodes[id]
	return n, ok
}

// Nodes returns every materialized node in creation order.
func (g *Graph) Nodes() []*Node {
	return g.order
}

// Len returns the number of materialized nodes.
func (g *Graph) Len() int {
	return len(g.order)
}

// Reset clears the rate state of every node so the graph can be planned
// again.
func (g *Graph) Reset() {
	for _, n := range g.order {
		n.Speed = 0
		n.SpeedFixed = false
		n.NumFactory = 0
	}
}

type frame struct {
	id     manual.ResourceID
	recipe *manual.Recipe
	next   int
}

// node materializes root with an explicit stack. A node is linked only once
// all of its ingredients exist, so Before never points at a missing node.
func (g *Graph) node(root manual.ResourceID) (*Node, error) {
	if n, ok := g.nodes[root]; ok {
		return n, nil
	}

	var stack []*frame
	onStack := make(map[manual.ResourceID]int)

	push := func(id manual.ResourceID) error {
		rec, err := g.recipeOf(id)
		if err != nil {
			return err
		}
		onStack[id] = len(stack)
		stack = append(stack, &frame{id: id, recipe: rec})
		return nil
	}

	if err := push(root); err != nil {
		return nil, err
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.recipe != nil && top.next < len(top.recipe.Ingredients) {
			dep := top.recipe.Ingredients[top.next].Resource
			top.next++
			if _, done := g.nodes[dep]; done {
				continue
			}
			if pos, ok := onStack[dep]; ok {
				return nil, g.cycleError(stack[pos:], dep)
			}
			if err := push(dep); err != nil {
				return nil, err
			}
			continue
		}

		stack = stack[:len(stack)-1]
		delete(onStack, top.id)
		g.link(top.id, top.recipe)
	}
	return g.nodes[root], nil
}

// recipeOf returns the single recipe of id, nil for a raw material.
func (g *Graph) recipeOf(id manual.ResourceID) (*manual.Recipe, error) {
	res := g.manual.Resource(id)
	switch len(res.Recipes) {
	case 0:
		return nil, nil
	case 1:
		return g.manual.Recipe(res.Recipes[0]), nil
	default:
		locations := make([]string, 0, len(res.Recipes))
		for _, rid := range res.Recipes {
			locations = append(locations, g.manual.Recipe(rid).Location())
		}
		return nil, &AmbiguousRecipeError{Resource: res.Name, Locations: locations}
	}
}

func (g *Graph) link(id manual.ResourceID, rec *manual.Recipe) {
	n := &Node{
		Resource: id,
		Name:     g.manual.Resource(id).Name,
		Recipe:   rec,
	}
	if rec != nil {
		n.TimeNeeded = rec.Time
		for _, ing := range rec.Ingredients {
			dep := g.nodes[ing.Resource]
			n.Before = append(n.Before, Edge{Node: dep, Coef: ing.Coef})
			dep.Next = append(dep.Next, Edge{Node: n, Coef: ing.Coef})
		}
	}
	g.nodes[id] = n
	g.order = append(g.order, n)
}

func (g *Graph) cycleError(loop []*frame, back manual.ResourceID) *CycleError {
	path := make([]string, 0, len(loop)+1)
	for _, f := range loop {
		path = append(path, g.manual.Resource(f.id).Name)
	}
	path = append(path, g.manual.Resource(back).Name)
	return &CycleError{Path: path}
}

// DetectCycles checks the materialized graph for cycles along Before edges.
// Graphs built through Node are acyclic by construction; this guards graphs
// that were assembled or modified by hand.
func (g *Graph) DetectCycles() error {
	// permanent: nodes fully visited and known to be outside any cycle.
	// temporary: nodes on the current DFS path.
	permanent := make(map[*Node]bool)
	temporary := make(map[*Node]bool)
	var path []string

	var visit func(n *Node) error
	visit = func(n *Node) error {
		if permanent[n] {
			return nil
		}
		if temporary[n] {
			start := 0
			for i, name := range path {
				if name == n.Name {
					start = i
				}
			}
			loop := append(append([]string{}, path[start:]...), n.Name)
			return &CycleError{Path: loop}
		}

		temporary[n] = true
		path = append(path, n.Name)
		for _, e := range n.Before {
			if err := visit(e.Node); err != nil {
				return err
			}
		}
		path = path[:len(path)-1]
		delete(temporary, n)
		permanent[n] = true
		return nil
	}

	for _, n := range g.order {
		if err := visit(n); err != nil {
			return err
		}
	}
	return nil
}
