package manual

import (
	"fmt"
	"os"

	"github.com/WalterSumbon/dyson-sphere-analysis/internal/fsutil"
)

// FileExtension is the extension of recipe files collected from a manual
// directory.
const FileExtension = ".txt"

// Load reads a manual from path. If path is a directory, every
// FileExtension file below it is read in lexical order into one manual.
func Load(path string) (*Manual, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading recipe manual: %w", err)
	}

	files := []string{path}
	if info.IsDir() {
		files, err = fsutil.FindFilesByExtension(path, FileExtension)
		if err != nil {
			return nil, fmt.Errorf("scanning recipe directory %s: %w", path, err)
		}
		if len(files) == 0 {
			return nil, fmt.Errorf("recipe directory %s contains no %s files", path, FileExtension)
		}
	}

	m := New()
	for _, name := range files {
		if err := m.readFile(name); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Manual) readFile(name string) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("reading recipe manual: %w", err)
	}
	defer f.Close()
	return m.Read(f, name)
}
