package manual

import "fmt"

// ResourceID addresses a Resource inside its Manual.
type ResourceID int

// RecipeID addresses a Recipe inside its Manual.
type RecipeID int

// Resource is a named material. Raw materials have no recipes.
type Resource struct {
	ID      ResourceID
	Name    string
	Recipes []RecipeID
}

// Raw reports whether nothing in the manual produces this resource.
func (r *Resource) Raw() bool {
	return len(r.Recipes) == 0
}

// Ingredient is one input of a recipe, normalized per unit of product.
type Ingredient struct {
	Resource ResourceID
	Coef     float64
}

// Recipe is one production rule, normalized per unit of product.
type Recipe struct {
	ID RecipeID
	// Source and Line locate the declaration for diagnostics. Line is 1-based.
	Source string
	Line   int

	Product     ResourceID
	Ingredients []Ingredient
	// Rate is the declared number of product units per batch.
	Rate float64
	// Time is seconds needed per unit of product.
	Time float64
}

// Location renders the recipe's source position as "source:line".
func (r *Recipe) Location() string {
	return fmt.Sprintf("%s:%d", r.Source, r.Line)
}

// FormatError reports a malformed recipe line.
type FormatError struct {
	Source string
	Line   int
	Msg    string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s:%d: %s: %v", e.Source, e.Line, e.Msg, e.Err)
	}
	return fmt.Sprintf("%s:%d: %s", e.Source, e.Line, e.Msg)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
