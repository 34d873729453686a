// Package propagate turns target output rates into upstream production
// requirements.
//
// Propagation runs backwards from the targets towards the raw materials. A
// node is a join point over its consumers: its speed is the weighted sum of
// every consumer's speed and may only be computed once all of them are
// fixed. Instead of recursing from node to node, a Propagator keeps a count
// of unresolved consumers per node and drains a FIFO worklist, so the result
// does not depend on the order in which nodes were built.
//
// Every node's speed is fixed exactly once per run. Declaring a second speed
// on a fixed node, or declaring a speed on a node that other nodes consume,
// is rejected instead of silently overwriting a derived rate.
package propagate
