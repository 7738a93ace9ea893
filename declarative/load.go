package declarative

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	gocomp "github.com/reoring/gocomp"
	"github.com/reoring/gocomp/internal/format"
)

// LoadFile reads and compiles the component file at path.
func LoadFile(path string) (gocomp.ComponentDefinition, error) {
	f, err := ReadFile(path)
	if err != nil {
		return gocomp.ComponentDefinition{}, err
	}
	def, err := Compile(f)
	if err != nil {
		return gocomp.ComponentDefinition{}, fmt.Errorf("%s: %w", path, err)
	}
	return def, nil
}

// LoadDir compiles every component file under dir, recursively, in lexical
// path order. Files with other extensions are skipped.
func LoadDir(dir string) ([]gocomp.ComponentDefinition, error) {
	var paths []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if _, ok := format.Of(path); ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	sort.Strings(paths)

	defs := make([]gocomp.ComponentDefinition, 0, len(paths))
	for _, path := range paths {
		def, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// RegisterDir loads every component under dir and registers it with reg.
// It returns the registered names in load order. Registration stops at the
// first error, which carries the offending file path.
func RegisterDir(reg *gocomp.Registry, dir string) ([]string, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("component directory: %w", err)
	}
	defs, err := LoadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(defs))
	for _, def := range defs {
		if err := reg.Register(def); err != nil {
			return names, err
		}
		names = append(names, def.Name)
	}
	return names, nil
}
