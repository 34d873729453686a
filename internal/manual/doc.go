// Package manual parses a recipe manual into an arena of resources and
// recipes.
//
// A manual is line oriented. Each non-blank line that does not start with
// ';' declares one recipe:
//
//	<rate> <product> (<coef> <ingredient>)* <time>
//
// meaning "rate units of product are made in time seconds from coef units of
// each ingredient". Numeric fields are arithmetic expressions (see package
// arith). Recipes are normalized to a single product unit on the way in:
// Time is seconds per unit and every ingredient coefficient is units consumed
// per unit produced.
//
// Resources are interned by name and addressed by ResourceID. The manual does
// not enforce the one-recipe-per-resource rule itself; a product declared
// twice simply collects two recipes, and the graph builder reports it.
package manual
