package config

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// Loader is the interface for a format-specific plan loader.
type Loader interface {
	// Load reads the plan at path and translates it into the
	// format-agnostic model.
	Load(ctx context.Context, path string) (*Model, error)
}

// LoaderFor picks a loader from the file extension of path.
func LoaderFor(path string) (Loader, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".hcl":
		return NewHCLLoader(), nil
	case ".toml":
		return NewTOMLLoader(), nil
	case ".yaml", ".yml":
		return NewYAMLLoader(), nil
	default:
		return nil, fmt.Errorf("unsupported plan file extension %q for %s: use .hcl, .toml, .yaml or .yml", ext, path)
	}
}

// LoadFile loads the plan at path with the loader matching its extension.
func LoadFile(ctx context.Context, path string) (*Model, error) {
	loader, err := LoaderFor(path)
	if err != nil {
		return nil, err
	}
	return loader.Load(ctx, path)
}
