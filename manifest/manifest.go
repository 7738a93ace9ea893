// Package manifest describes which components build which artifacts.
//
// A manifest lists artifacts. Each artifact names an output file, an optional
// base document (target path -> object, merged first) and the ordered
// component uses applied on top:
//
//	artifacts:
//	  - name: genshicraft:silver_sword
//	    output: items/silver_sword.json
//	    base:
//	      minecraft:item/description:
//	        identifier: genshicraft:silver_sword
//	    components:
//	      - name: genshicraft:weapon
//	        properties: {rarity: 3, type: Sword}
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	gocomp "github.com/reoring/gocomp"
	"github.com/reoring/gocomp/internal/format"
)

// Manifest is the set of artifacts to build.
type Manifest struct {
	Artifacts []Artifact `json:"artifacts"`
}

// Artifact is one output document.
type Artifact struct {
	Name string `json:"name"`
	// Output is the path of the generated file relative to the output
	// directory. Empty means DefaultOutput(Name).
	Output     string                    `json:"output,omitempty"`
	Base       map[string]map[string]any `json:"base,omitempty"`
	Components []gocomp.Use              `json:"components"`
}

// OutputPath returns Output or its default.
func (a Artifact) OutputPath() string {
	if a.Output != "" {
		return filepath.FromSlash(a.Output)
	}
	return DefaultOutput(a.Name)
}

// BaseEmissions returns the base document as emissions in target order.
func (a Artifact) BaseEmissions() []gocomp.Emission {
	targets := make([]string, 0, len(a.Base))
	for t := range a.Base {
		targets = append(targets, t)
	}
	sort.Strings(targets)
	out := make([]gocomp.Emission, 0, len(targets))
	for _, t := range targets {
		out = append(out, gocomp.Emit(a.Base[t], t))
	}
	return out
}

// DefaultOutput maps an artifact name such as "genshicraft:silver_sword" to
// "genshicraft/silver_sword.json".
func DefaultOutput(name string) string {
	return filepath.FromSlash(strings.ReplaceAll(name, ":", "/") + ".json")
}

// Validate checks names are present and output paths are unique and stay
// inside the output directory.
func (m *Manifest) Validate() error {
	var errs []error
	outputs := make(map[string]string, len(m.Artifacts))
	for i, a := range m.Artifacts {
		if strings.TrimSpace(a.Name) == "" {
			errs = append(errs, fmt.Errorf("artifacts[%d]: name is required", i))
			continue
		}
		out := filepath.Clean(a.OutputPath())
		if filepath.IsAbs(out) || out == ".." || strings.HasPrefix(out, ".."+string(filepath.Separator)) {
			errs = append(errs, fmt.Errorf("artifact %q: output %q escapes the output directory", a.Name, a.Output))
			continue
		}
		if prev, dup := outputs[out]; dup {
			errs = append(errs, fmt.Errorf("artifact %q: output %q already written by %q", a.Name, out, prev))
			continue
		}
		outputs[out] = a.Name
		for j, u := range a.Components {
			if u.Component == "" {
				errs = append(errs, fmt.Errorf("artifact %q: components[%d]: name is required", a.Name, j))
			}
		}
	}
	return errors.Join(errs...)
}

// Format identifies the encoding of a manifest.
type Format = format.Format

const (
	FormatYAML  = format.YAML
	FormatJSON  = format.JSON
	FormatJSONC = format.JSONC
)

// Parse decodes and validates a manifest in the given format.
func Parse(data []byte, f Format) (*Manifest, error) {
	var m Manifest
	if err := format.Decode(data, f, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid manifest: %w", err)
	}
	return &m, nil
}

// Load reads the manifest at path; the format follows the file extension.
func Load(path string) (*Manifest, error) {
	f, ok := format.Of(path)
	if !ok {
		return nil, fmt.Errorf("%s: unsupported manifest extension", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}
	m, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}
