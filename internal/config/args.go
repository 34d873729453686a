package config

import (
	"fmt"
	"strings"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/arith"
)

// ParseTargetArg parses a command-line target of the form NAME=SPEED, where
// SPEED is an arithmetic expression in units per minute.
func ParseTargetArg(arg string) (Target, error) {
	idx := strings.LastIndex(arg, "=")
	if idx <= 0 || idx == len(arg)-1 {
		return Target{}, fmt.Errorf("invalid target %q: expected NAME=SPEED", arg)
	}

	speed, err := arith.Eval(arg[idx+1:])
	if err != nil {
		return Target{}, fmt.Errorf("invalid speed in target %q: %w", arg, err)
	}
	return Target{Name: arg[:idx], Speed: speed}, nil
}

// ParseTargetArgs parses every argument with ParseTargetArg.
func ParseTargetArgs(args []string) ([]Target, error) {
	targets := make([]Target, 0, len(args))
	for _, arg := range args {
		t, err := ParseTargetArg(arg)
		if err != nil {
			return nil, err
		}
		targets = append(targets, t)
	}
	return targets, nil
}
