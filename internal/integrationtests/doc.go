// Package integrationtests runs the planner end to end against files in a
// temporary directory.
package integrationtests
