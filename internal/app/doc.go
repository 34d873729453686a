// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the planning lifecycle (load the recipe
// manual, load the plan, propagate rates, render the result), decoupled from
// any specific entrypoint like a CLI.
package app
