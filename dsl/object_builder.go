package dsl

import gocomp "github.com/reoring/gocomp"

type objectBuilder struct {
	description   string
	fields        map[string]gocomp.PropertyConstraint
	required      []string
	unknownPolicy gocomp.UnknownPolicy
}

type fieldStep struct {
	b    *objectBuilder
	name string
}

// Object creates a new object builder with safe defaults (UnknownStrict).
func Object() *objectBuilder {
	return &objectBuilder{
		fields:        map[string]gocomp.PropertyConstraint{},
		unknownPolicy: gocomp.UnknownStrict,
	}
}

// Describe sets the component description.
func (b *objectBuilder) Describe(desc string) *objectBuilder {
	b.description = desc
	return b
}

// Field registers a property with its constraint.
func (b *objectBuilder) Field(name string, p Prop) *fieldStep {
	b.fields[name] = p.constraint()
	return &fieldStep{b: b, name: name}
}

// Required marks the field as required and returns the builder.
func (f *fieldStep) Required() *objectBuilder {
	return f.b.Require(f.name)
}

// Optional marks the field as optional (default) and returns the builder.
func (f *fieldStep) Optional() *objectBuilder {
	kept := f.b.required[:0]
	for _, r := range f.b.required {
		if r != f.name {
			kept = append(kept, r)
		}
	}
	f.b.required = kept
	return f.b
}

func (f *fieldStep) Field(name string, p Prop) *fieldStep   { return f.b.Field(name, p) }
func (f *fieldStep) Describe(desc string) *objectBuilder    { return f.b.Describe(desc) }
func (f *fieldStep) UnknownStrict() *objectBuilder          { return f.b.UnknownStrict() }
func (f *fieldStep) UnknownStrip() *objectBuilder           { return f.b.UnknownStrip() }
func (f *fieldStep) Build() (gocomp.Schema, error)          { return f.b.Build() }
func (f *fieldStep) MustBuild() gocomp.Schema               { return f.b.MustBuild() }
func (f *fieldStep) Require(names ...string) *objectBuilder { return f.b.Require(names...) }

// Require marks one or more fields as required. Names keep their first
// insertion order.
func (b *objectBuilder) Require(names ...string) *objectBuilder {
	for _, n := range names {
		dup := false
		for _, r := range b.required {
			if r == n {
				dup = true
				break
			}
		}
		if !dup {
			b.required = append(b.required, n)
		}
	}
	return b
}

// UnknownStrict sets unknown policy to Strict.
func (b *objectBuilder) UnknownStrict() *objectBuilder {
	b.unknownPolicy = gocomp.UnknownStrict
	return b
}

// UnknownStrip sets unknown policy to Strip.
func (b *objectBuilder) UnknownStrip() *objectBuilder {
	b.unknownPolicy = gocomp.UnknownStrip
	return b
}

// Build assembles and checks the schema.
func (b *objectBuilder) Build() (gocomp.Schema, error) {
	s := gocomp.Schema{
		Description: b.description,
		Properties:  make(map[string]gocomp.PropertyConstraint, len(b.fields)),
		Unknown:     b.unknownPolicy,
	}
	for k, c := range b.fields {
		s.Properties[k] = c
	}
	if len(b.required) > 0 {
		s.Required = append([]string(nil), b.required...)
	}
	if err := s.Check(); err != nil {
		return gocomp.Schema{}, err
	}
	return s, nil
}

// MustBuild is Build that panics on error.
func (b *objectBuilder) MustBuild() gocomp.Schema {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}
