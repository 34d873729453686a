// Package config defines the format-agnostic plan model (which resources to
// produce and how fast) and the loaders that read it from plan files.
//
// Three file formats are understood, chosen by extension:
//
//	.hcl          target "circuit" { speed = 2 * 60 }
//	.toml         [[target]]  name = "circuit"  speed = 120.0
//	.yaml, .yml   targets: [{name: circuit, speed: 120}]
//
// Targets given on the command line are parsed with ParseTargetArg and
// appended to the same model.
package config
