package dag

import (
	"fmt"
	"strings"
)

// UnknownResourceError is returned when a requested name does not appear
// anywhere in the manual.
type UnknownResourceError struct {
	Name string
}

func (e *UnknownResourceError) Error() string {
	return fmt.Sprintf("resource '%s' does not appear in the recipe manual", e.Name)
}

// AmbiguousRecipeError is returned when a resource has more than one
// producing recipe.
type AmbiguousRecipeError struct {
	Resource string
	// Locations holds "source:line" for every recipe of the resource.
	Locations []string
}

func (e *AmbiguousRecipeError) Error() string {
	return fmt.Sprintf("resource '%s' has %d recipes (%s); only one producing recipe per resource is supported",
		e.Resource, len(e.Locations), strings.Join(e.Locations, ", "))
}

// CycleError is returned when the ingredient graph loops back on itself.
type CycleError struct {
	// Path runs from a consumer through its ingredients back to itself.
	Path []string
}

func (e *CycleError) Error() string {
	return fmt.Sprintf("cycle detected: %s", strings.Join(e.Path, " -> "))
}
