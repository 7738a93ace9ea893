package gocomp

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
)

// Engine validates property bags against registered components, runs their
// templates and merges the resulting patches into target documents.
type Engine struct {
	reg     *Registry
	logger  zerolog.Logger
	unknown *UnknownPolicy
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for invocation diagnostics.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithUnknownPolicy overrides the unknown-property policy of every
// component's schema.
func WithUnknownPolicy(p UnknownPolicy) Option {
	return func(e *Engine) { e.unknown = &p }
}

// New returns an Engine resolving component names through reg.
func New(reg *Registry, opts ...Option) *Engine {
	if reg == nil {
		reg = NewRegistry()
	}
	e := &Engine{reg: reg, logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Registry returns the registry the engine resolves names through.
func (e *Engine) Registry() *Registry { return e.reg }

// Render validates bag against the named component and runs its template,
// returning the emitted patches in order without merging them anywhere.
//
// Errors: ErrUnknownComponent, *SchemaViolationError (ErrSchemaViolation) and
// *TemplateError (ErrTemplate). A template panic is reported as a
// TemplateError.
func (e *Engine) Render(ctx context.Context, name string, bag PropertyBag) ([]Emission, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	def, ok := e.reg.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}

	schema := def.Schema
	if e.unknown != nil {
		schema.Unknown = *e.unknown
	}
	props, warnings, iss := check(schema, bag)
	for _, w := range warnings {
		e.logger.Warn().
			Str("component", name).
			Str("property", w.Property()).
			Msg("ignoring unknown property")
	}
	if len(iss) > 0 {
		e.logger.Debug().
			Str("component", name).
			Int("issues", len(iss)).
			Msg("property bag rejected")
		return nil, &SchemaViolationError{Component: name, Issues: iss}
	}

	emissions, err := runTemplate(def.Template, NewProperties(props))
	if err != nil {
		return nil, &TemplateError{Component: name, Err: err}
	}
	out := make([]Emission, len(emissions))
	for i, em := range emissions {
		out[i] = Emission{Target: em.Target, Patch: clonePatch(em.Patch)}
	}
	return out, nil
}

func runTemplate(tmpl TemplateFunc, p Properties) (ems []Emission, err error) {
	defer func() {
		if r := recover(); r != nil {
			ems, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	return tmpl(p)
}

// Invoke renders the named component and merges every emission into doc in
// emission order. It is atomic: on any error doc is left untouched.
func (e *Engine) Invoke(ctx context.Context, name string, bag PropertyBag, doc *Document) error {
	emissions, err := e.Render(ctx, name, bag)
	if err != nil {
		return err
	}
	doc.Merge(emissions...)
	e.logger.Debug().
		Str("component", name).
		Int("emissions", len(emissions)).
		Msg("component applied")
	return nil
}

// Use names a component and the property bag to invoke it with.
type Use struct {
	Component  string      `json:"name"`
	Properties PropertyBag `json:"properties,omitempty"`
}

// Apply invokes each use on doc in order and stops at the first failure.
// Uses applied before the failure stay merged; the failing one leaves no trace.
func (e *Engine) Apply(ctx context.Context, doc *Document, uses ...Use) error {
	for i, u := range uses {
		if err := e.Invoke(ctx, u.Component, u.Properties, doc); err != nil {
			return fmt.Errorf("use %d (%s): %w", i, u.Component, err)
		}
	}
	return nil
}
