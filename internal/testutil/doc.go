// Package testutil provides shared fixtures for tests that need a recipe
// graph built from inline manual text.
package testutil
