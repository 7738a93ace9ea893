// Package format decodes the authoring formats accepted for component files,
// manifests and configuration: YAML, JSON and JSONC.
//
// Every format funnels into the same JSON decoder so that numbers surface as
// json.Number and unknown struct fields are rejected identically.
package format

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// Format identifies an encoding.
type Format int

const (
	YAML Format = iota
	JSON
	JSONC
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "yaml"
	case JSON:
		return "json"
	case JSONC:
		return "jsonc"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Of picks the format from a file extension. ok is false for other
// extensions.
func Of(path string) (f Format, ok bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, true
	case ".json":
		return JSON, true
	case ".jsonc":
		return JSONC, true
	}
	return 0, false
}

// Decode decodes data in format f into v. Unknown object fields are errors
// when v is a struct.
func Decode(data []byte, f Format, v any) error {
	switch f {
	case YAML:
		var node any
		if err := yaml.Unmarshal(data, &node); err != nil {
			return err
		}
		if node == nil {
			node = map[string]any{}
		}
		js, err := json.Marshal(Normalize(node))
		if err != nil {
			return err
		}
		data = js
	case JSONC:
		data = jsonc.ToJSON(data)
	case JSON:
	default:
		return fmt.Errorf("unsupported format %s", f)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// Normalize converts YAML-decoded maps with non-string keys into
// map[string]any, recursively.
func Normalize(v any) any {
	switch x := v.(type) {
	case map[string]any:
		for k, e := range x {
			x[k] = Normalize(e)
		}
		return x
	case map[any]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[fmt.Sprint(k)] = Normalize(e)
		}
		return out
	case []any:
		for i, e := range x {
			x[i] = Normalize(e)
		}
		return x
	}
	return v
}
