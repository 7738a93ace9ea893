package gocomp

import (
	"bytes"
	"sort"
	"strings"
	"sync"

	json "github.com/goccy/go-json"

	"github.com/reoring/gocomp/internal/merge"
)

// Document accumulates merged patches per target path for one output
// artifact. Merges are serialized by an internal lock; the merge order is the
// order in which callers reach it.
type Document struct {
	mu       sync.Mutex
	sections map[string]map[string]any
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{sections: map[string]map[string]any{}}
}

// Merge deep-merges each emission into its target section in order.
func (d *Document) Merge(emissions ...Emission) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.mergeLocked(emissions)
}

func (d *Document) mergeLocked(emissions []Emission) {
	if d.sections == nil {
		d.sections = map[string]map[string]any{}
	}
	for _, em := range emissions {
		sec, ok := d.sections[em.Target]
		if !ok {
			sec = map[string]any{}
			d.sections[em.Target] = sec
		}
		merge.Into(sec, em.Patch)
	}
}

// Get returns a deep copy of the section at target.
func (d *Document) Get(target string) (map[string]any, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	sec, ok := d.sections[target]
	if !ok {
		return nil, false
	}
	return merge.Object(sec), true
}

// Targets returns the target paths present in the document, sorted.
func (d *Document) Targets() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, 0, len(d.sections))
	for t := range d.sections {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of target sections.
func (d *Document) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.sections)
}

// Map returns a deep copy of the document keyed by target path.
func (d *Document) Map() map[string]any {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make(map[string]any, len(d.sections))
	for t, sec := range d.sections {
		out[t] = merge.Object(sec)
	}
	return out
}

// Nested returns the document with target paths split on "/" into nested
// objects, so "minecraft:item/components" becomes
// {"minecraft:item": {"components": ...}}. Sections sharing a prefix are
// deep-merged in sorted target order.
func (d *Document) Nested() map[string]any {
	flat := d.Map()
	targets := make([]string, 0, len(flat))
	for t := range flat {
		targets = append(targets, t)
	}
	sort.Strings(targets)
	out := map[string]any{}
	for _, t := range targets {
		parts := strings.Split(t, "/")
		var wrapped any = flat[t]
		for i := len(parts) - 1; i >= 0; i-- {
			wrapped = map[string]any{parts[i]: wrapped}
		}
		merge.Into(out, wrapped.(map[string]any))
	}
	return out
}

// MarshalJSON encodes the document with its target paths as top-level keys.
// Object keys are sorted, so equal documents encode to equal bytes.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Map())
}

// Encode renders the document (or its nested form) followed by a newline.
// An empty indent gives compact output. HTML characters are not escaped.
func (d *Document) Encode(indent string, nested bool) ([]byte, error) {
	var v map[string]any
	if nested {
		v = d.Nested()
	} else {
		v = d.Map()
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
