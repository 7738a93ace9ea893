package dsl_test

import (
	"errors"
	"reflect"
	"testing"

	gocomp "github.com/reoring/gocomp"
	g "github.com/reoring/gocomp/dsl"
)

func TestObjectBuilder_Basic(t *testing.T) {
	s, err := g.Object().
		Describe("The component for weapons.").
		Field("rarity", g.NumberEnum(1, 2, 3, 4, 5)).Required().
		Field("type", g.StringEnum("Sword", "Bow").Describe("weapon kind")).Required().
		Field("shiny", g.Bool()).Optional().
		Build()
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if s.Description != "The component for weapons." {
		t.Fatalf("unexpected description %q", s.Description)
	}
	if !reflect.DeepEqual(s.Required, []string{"rarity", "type"}) {
		t.Fatalf("unexpected required %v", s.Required)
	}
	if s.Unknown != gocomp.UnknownStrict {
		t.Fatalf("expected strict default")
	}
	if c := s.Properties["type"]; c.Type != gocomp.TypeString || c.Description != "weapon kind" || len(c.Enum) != 2 {
		t.Fatalf("unexpected type constraint %+v", c)
	}
	if err := gocomp.Validate(s, gocomp.PropertyBag{"rarity": 4, "type": "Bow"}); err != nil {
		t.Fatalf("expected valid bag: %v", err)
	}
	if err := gocomp.Validate(s, gocomp.PropertyBag{"rarity": 4.5, "type": "Bow"}); err == nil {
		t.Fatalf("expected 4.5 to be outside the enum")
	}
}

func TestObjectBuilder_OptionalUndoesRequired(t *testing.T) {
	s := g.Object().
		Field("a", g.String()).Required().
		Field("b", g.Number()).Required().
		Field("a", g.String()).Optional().
		MustBuild()
	if !reflect.DeepEqual(s.Required, []string{"b"}) {
		t.Fatalf("unexpected required %v", s.Required)
	}
}

func TestObjectBuilder_RequireUndeclared(t *testing.T) {
	_, err := g.Object().Field("a", g.String()).Require("a", "b").Build()
	if !errors.Is(err, gocomp.ErrInvalidSchema) {
		t.Fatalf("expected ErrInvalidSchema, got %v", err)
	}
}

func TestObjectBuilder_EnumTypeChecked(t *testing.T) {
	_, err := g.Object().Field("a", g.String().Enum("x", 1)).Build()
	if !errors.Is(err, gocomp.ErrInvalidSchema) {
		t.Fatalf("expected ErrInvalidSchema, got %v", err)
	}
}

func TestObjectBuilder_UnknownStrip(t *testing.T) {
	s := g.Object().Field("a", g.String()).UnknownStrip().MustBuild()
	if s.Unknown != gocomp.UnknownStrip {
		t.Fatalf("expected strip policy")
	}
	if err := gocomp.Validate(s, gocomp.PropertyBag{"a": "x", "extra": 1}); err != nil {
		t.Fatalf("unknown properties should be dropped: %v", err)
	}
}

func TestMustBuild_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	g.Object().Require("missing").MustBuild()
}

func TestProp_IsValueType(t *testing.T) {
	base := g.String()
	narrowed := base.Enum("a")
	s := g.Object().Field("wide", base).Field("narrow", narrowed).MustBuild()
	if s.Properties["wide"].Enum != nil {
		t.Fatalf("Enum modified the receiver")
	}
	if len(s.Properties["narrow"].Enum) != 1 {
		t.Fatalf("expected narrowed enum")
	}
}
