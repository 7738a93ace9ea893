package gocomp_test

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	gocomp "github.com/reoring/gocomp"
)

type lampParams struct {
	Colour     string  `json:"colour"`
	Brightness float64 `json:"brightness"`
	Lit        bool    `json:"lit,omitempty"`
}

func lampComponent() gocomp.ComponentDefinition {
	s := gocomp.Schema{
		Properties: map[string]gocomp.PropertyConstraint{
			"colour":     {Type: gocomp.TypeString, Enum: []any{"red", "blue"}},
			"brightness": {Type: gocomp.TypeNumber},
			"lit":        {Type: gocomp.TypeBoolean},
		},
		Required: []string{"colour", "brightness"},
	}
	return gocomp.Define("test:lamp", s, func(p lampParams) ([]gocomp.Emission, error) {
		return []gocomp.Emission{gocomp.Emit(gocomp.Patch{
			"light": map[string]any{
				"colour": p.Colour,
				"level":  p.Brightness,
				"on":     p.Lit,
			},
		}, "minecraft:block/components")}, nil
	})
}

func TestInvokeTyped(t *testing.T) {
	e := newEngine(t, lampComponent())
	doc := gocomp.NewDocument()
	err := gocomp.InvokeTyped(context.Background(), e, "test:lamp", lampParams{Colour: "blue", Brightness: 0.5, Lit: true}, doc)
	if err != nil {
		t.Fatalf("invoke: %v", err)
	}
	got, _ := doc.Get("minecraft:block/components")
	want := map[string]any{"light": map[string]any{"colour": "blue", "level": 0.5, "on": true}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestInvokeTyped_EnumStillChecked(t *testing.T) {
	e := newEngine(t, lampComponent())
	err := gocomp.InvokeTyped(context.Background(), e, "test:lamp", lampParams{Colour: "green", Brightness: 1}, gocomp.NewDocument())
	iss, ok := gocomp.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != gocomp.CodeInvalidEnum {
		t.Fatalf("expected one invalid_enum issue, got %v", err)
	}
}

func TestDefine_UntypedBag(t *testing.T) {
	e := newEngine(t, lampComponent())
	ems, err := e.Render(context.Background(), "test:lamp", gocomp.PropertyBag{"colour": "red", "brightness": 3})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	light := ems[0].Patch["light"].(map[string]any)
	if light["level"] != 3.0 || light["on"] != false {
		t.Fatalf("unexpected light %v", light)
	}
}

func TestDefine_TemplateErrorWrapped(t *testing.T) {
	def := gocomp.Define("test:typed-fail", gocomp.Schema{}, func(struct{}) ([]gocomp.Emission, error) {
		return nil, fmt.Errorf("no variant")
	})
	e := newEngine(t, def)
	if err := e.Invoke(context.Background(), "test:typed-fail", nil, gocomp.NewDocument()); !errors.Is(err, gocomp.ErrTemplate) {
		t.Fatalf("expected ErrTemplate, got %v", err)
	}
}

func TestEncodeDecodeParams(t *testing.T) {
	bag, err := gocomp.EncodeParams(lampParams{Colour: "red", Brightness: 2})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, has := bag["lit"]; has {
		t.Fatalf("omitempty field should be absent: %v", bag)
	}
	if err := gocomp.Validate(lampComponent().Schema, bag); err != nil {
		t.Fatalf("encoded bag should validate: %v", err)
	}
	var back lampParams
	if err := gocomp.DecodeParams(bag, &back); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if back.Colour != "red" || back.Brightness != 2 {
		t.Fatalf("unexpected %+v", back)
	}
}

func TestProperties_Accessors(t *testing.T) {
	p := gocomp.NewProperties(gocomp.PropertyBag{"n": 5.0, "s": "x", "b": true, "f": 0.25})
	if p.Int("n") != 5 || p.Text("n") != "5" || p.Text("f") != "0.25" {
		t.Fatalf("number accessors: %d %q %q", p.Int("n"), p.Text("n"), p.Text("f"))
	}
	if p.String("s") != "x" || !p.Bool("b") || p.Text("b") != "true" {
		t.Fatalf("string/bool accessors")
	}
	if p.Has("missing") || p.Text("missing") != "" || p.String("n") != "" {
		t.Fatalf("absent or mistyped properties should give zero values")
	}
}
