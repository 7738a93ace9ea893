package gocomp

import (
	"bytes"
	"context"
	"fmt"

	json "github.com/goccy/go-json"
)

// Define builds a component whose template receives a typed parameter struct
// instead of Properties. The validated bag is decoded into P through its
// JSON tags, so field names follow the schema's property names. Literals are
// reduced to their plain form first, so 4.0 and json.Number("4.0") decode
// into integer fields as 4.
func Define[P any](name string, s Schema, tmpl func(P) ([]Emission, error)) ComponentDefinition {
	return ComponentDefinition{
		Name:   name,
		Schema: s,
		Template: func(p Properties) ([]Emission, error) {
			var params P
			if err := DecodeParams(plainBag(p.bag), &params); err != nil {
				return nil, err
			}
			return tmpl(params)
		},
	}
}

// InvokeTyped encodes params into a property bag and invokes the named
// component with it. Callers using typed structs cannot produce type
// mismatches for fields whose Go type matches the schema.
func InvokeTyped[P any](ctx context.Context, e *Engine, name string, params P, doc *Document) error {
	bag, err := EncodeParams(params)
	if err != nil {
		return err
	}
	return e.Invoke(ctx, name, bag, doc)
}

// EncodeParams converts a parameter struct (or map) into a PropertyBag.
// Numbers become json.Number.
func EncodeParams(params any) (PropertyBag, error) {
	data, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("gocomp: encoding params: %w", err)
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var bag PropertyBag
	if err := dec.Decode(&bag); err != nil {
		return nil, fmt.Errorf("gocomp: encoding params: %w", err)
	}
	if bag == nil {
		bag = PropertyBag{}
	}
	return bag, nil
}

// DecodeParams decodes bag into the struct pointed to by dst.
func DecodeParams(bag PropertyBag, dst any) error {
	data, err := json.Marshal(bag)
	if err != nil {
		return fmt.Errorf("gocomp: decoding params: %w", err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("gocomp: decoding params: %w", err)
	}
	return nil
}

// plainBag copies bag with every literal reduced by plain. Integral numbers
// then encode without a fraction.
func plainBag(bag PropertyBag) PropertyBag {
	out := make(PropertyBag, len(bag))
	for k, v := range bag {
		if lit, ok := plain(v); ok {
			v = lit
		}
		out[k] = v
	}
	return out
}
