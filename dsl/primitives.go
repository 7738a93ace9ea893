package dsl

import gocomp "github.com/reoring/gocomp"

// Prop is a property constraint under construction. It is a value type:
// Enum and Describe return modified copies.
type Prop struct {
	typ  gocomp.PropertyType
	enum []any
	desc string
}

// String returns an unconstrained string property.
func String() Prop { return Prop{typ: gocomp.TypeString} }

// Number returns an unconstrained number property.
func Number() Prop { return Prop{typ: gocomp.TypeNumber} }

// Bool returns an unconstrained boolean property.
func Bool() Prop { return Prop{typ: gocomp.TypeBoolean} }

// Enum restricts the property to the given literals.
func (p Prop) Enum(vals ...any) Prop {
	p.enum = append([]any{}, vals...)
	return p
}

// Describe documents the property. The text is exported to JSON Schema.
func (p Prop) Describe(desc string) Prop {
	p.desc = desc
	return p
}

// StringEnum is String().Enum(vals...).
func StringEnum(vals ...string) Prop {
	e := make([]any, len(vals))
	for i, v := range vals {
		e[i] = v
	}
	return String().Enum(e...)
}

// NumberEnum is Number().Enum(vals...).
func NumberEnum[N ~int | ~float64](vals ...N) Prop {
	e := make([]any, len(vals))
	for i, v := range vals {
		e[i] = float64(v)
	}
	return Number().Enum(e...)
}

func (p Prop) constraint() gocomp.PropertyConstraint {
	c := gocomp.PropertyConstraint{Type: p.typ, Description: p.desc}
	if p.enum != nil {
		c.Enum = append([]any{}, p.enum...)
	}
	return c
}
