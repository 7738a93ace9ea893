package declarative

import (
	"fmt"
	"os"

	"github.com/reoring/gocomp/internal/format"
)

// File is the on-disk form of a component.
type File struct {
	Name        string                  `json:"name"`
	Description string                  `json:"description,omitempty"`
	Properties  map[string]PropertyFile `json:"properties,omitempty"`
	Required    []string                `json:"required,omitempty"`
	// Unknown is "strict" (default) or "strip".
	Unknown string `json:"unknown,omitempty"`
	Emit    []Rule `json:"emit"`
}

// PropertyFile declares one property.
type PropertyFile struct {
	Type        string `json:"type"`
	Enum        []any  `json:"enum,omitempty"`
	Description string `json:"description,omitempty"`
}

// Rule emits Patch to Target when its conditions hold.
type Rule struct {
	Target string         `json:"target"`
	When   map[string]any `json:"when,omitempty"`
	Unless map[string]any `json:"unless,omitempty"`
	// If is a boolean expr-lang expression over the declared properties,
	// for example `rarity >= 4 && type != "Bow"`.
	If    string         `json:"if,omitempty"`
	Patch map[string]any `json:"patch"`
}

// Format identifies the encoding of a component file.
type Format = format.Format

const (
	FormatYAML  = format.YAML
	FormatJSON  = format.JSON
	FormatJSONC = format.JSONC
)

// Parse decodes a component file. Numbers are kept as json.Number.
func Parse(data []byte, f Format) (*File, error) {
	var out File
	if err := format.Decode(data, f, &out); err != nil {
		return nil, fmt.Errorf("parsing component: %w", err)
	}
	return &out, nil
}

// ReadFile reads and parses the component file at path.
func ReadFile(path string) (*File, error) {
	f, ok := format.Of(path)
	if !ok {
		return nil, fmt.Errorf("%s: not a component file", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	out, err := Parse(data, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return out, nil
}
