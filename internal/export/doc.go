// Package export renders a propagated production plan. It walks the graph
// from the targets toward raw materials, visiting a producer only once all
// of its consumers have been visited, and writes the result as a Graphviz
// DOT digraph, a YAML document or a styled terminal table.
package export
