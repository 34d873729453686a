// Package dag builds the resource graph for one planning run.
//
// Each node wraps one manual.Resource. Before holds the producer side (the
// ingredients a node consumes, with per-unit coefficients) and Next holds the
// consumer side (the nodes that consume it). Nodes are created on first
// request; requesting a node materializes its entire producer ancestry.
//
// Construction is an explicit-stack depth-first walk, so a cycle in the
// manual is reported as a CycleError instead of recursing forever, and a
// resource with more than one recipe is reported as an AmbiguousRecipeError.
//
// A Graph carries the mutable rate state (Speed, SpeedFixed, NumFactory) that
// package propagate fills in. It is not safe for concurrent use.
package dag
