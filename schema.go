package gocomp

import (
	"fmt"
	"sort"
)

// PropertyConstraint declares the type of a property and, optionally, the
// closed set of literals it may take.
type PropertyConstraint struct {
	Type PropertyType
	// Enum lists the allowed literals. nil means any value of Type.
	Enum        []any
	Description string
}

// Allows reports whether v is a member of the constraint's enum. It is true
// when no enum is declared.
func (c PropertyConstraint) Allows(v any) bool {
	if c.Enum == nil {
		return true
	}
	for _, e := range c.Enum {
		if sameLiteral(e, v) {
			return true
		}
	}
	return false
}

// Schema is the declared shape of a component's properties.
type Schema struct {
	Description string
	Properties  map[string]PropertyConstraint
	Required    []string
	Unknown     UnknownPolicy
}

// Names returns the declared property names in sorted order.
func (s Schema) Names() []string {
	names := make([]string, 0, len(s.Properties))
	for n := range s.Properties {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// IsRequired reports whether name is listed in Required.
func (s Schema) IsRequired(name string) bool {
	for _, r := range s.Required {
		if r == name {
			return true
		}
	}
	return false
}

// Check verifies the schema is well formed: every required name is declared,
// every property has a supported type and every enum literal matches it.
// The returned error wraps ErrInvalidSchema.
func (s Schema) Check() error {
	for _, name := range s.Names() {
		c := s.Properties[name]
		if !c.Type.Valid() {
			return fmt.Errorf("%w: property %q: unsupported type %q", ErrInvalidSchema, name, c.Type)
		}
		if c.Enum != nil && len(c.Enum) == 0 {
			return fmt.Errorf("%w: property %q: empty enum", ErrInvalidSchema, name)
		}
		for i, e := range c.Enum {
			if t, ok := typeOf(e); !ok || t != c.Type {
				return fmt.Errorf("%w: property %q: enum[%d] is %s, want %s", ErrInvalidSchema, name, i, typeName(e), c.Type)
			}
		}
	}
	seen := make(map[string]struct{}, len(s.Required))
	for _, r := range s.Required {
		if _, ok := s.Properties[r]; !ok {
			return fmt.Errorf("%w: required property %q is not declared", ErrInvalidSchema, r)
		}
		if _, dup := seen[r]; dup {
			return fmt.Errorf("%w: required property %q listed twice", ErrInvalidSchema, r)
		}
		seen[r] = struct{}{}
	}
	return nil
}

// clone returns a deep copy so registered schemas cannot be changed through
// the caller's maps and slices.
func (s Schema) clone() Schema {
	out := Schema{Description: s.Description, Unknown: s.Unknown}
	if s.Properties != nil {
		out.Properties = make(map[string]PropertyConstraint, len(s.Properties))
		for k, c := range s.Properties {
			if c.Enum != nil {
				c.Enum = append([]any(nil), c.Enum...)
			}
			out.Properties[k] = c
		}
	}
	if s.Required != nil {
		out.Required = append([]string(nil), s.Required...)
	}
	return out
}
