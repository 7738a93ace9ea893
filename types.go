package gocomp

import (
	"fmt"
	"strings"
)

// UnknownPolicy controls how undeclared properties are handled.
type UnknownPolicy int

const (
	UnknownStrict UnknownPolicy = iota // Reject unknown properties with an error.
	UnknownStrip                       // Drop unknown properties and report a warning.
)

// ParseUnknownPolicy maps "strict" and "strip" to an UnknownPolicy.
// The empty string selects UnknownStrict.
func ParseUnknownPolicy(s string) (UnknownPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return UnknownStrict, nil
	case "strip", "ignore":
		return UnknownStrip, nil
	}
	return UnknownStrict, fmt.Errorf("gocomp: unknown property policy %q", s)
}

func (p UnknownPolicy) String() string {
	if p == UnknownStrip {
		return "strip"
	}
	return "strict"
}

// PropertyType is the declared runtime type of a property.
type PropertyType string

const (
	TypeNumber  PropertyType = "number"
	TypeString  PropertyType = "string"
	TypeBoolean PropertyType = "boolean"
)

// Valid reports whether t is one of the supported property types.
func (t PropertyType) Valid() bool {
	switch t {
	case TypeNumber, TypeString, TypeBoolean:
		return true
	}
	return false
}

// PropertyBag maps property names to literal values supplied by a caller.
// Values are numbers (any Go integer or float kind, or json.Number), strings
// or booleans.
type PropertyBag map[string]any

// Patch is a JSON object destined for a single target path.
type Patch map[string]any

// Emission is a patch paired with the target path it is merged into.
type Emission struct {
	Target string `json:"target"`
	Patch  Patch  `json:"patch"`
}
