package declarative_test

import (
	"context"
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	gocomp "github.com/reoring/gocomp"
	"github.com/reoring/gocomp/declarative"
)

func render(t *testing.T, e *gocomp.Engine, name string, bag gocomp.PropertyBag) string {
	t.Helper()
	doc := gocomp.NewDocument()
	if err := e.Invoke(context.Background(), name, bag, doc); err != nil {
		t.Fatalf("invoke %s: %v", name, err)
	}
	out, err := doc.Encode("", false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	return string(out)
}

func loadEngine(t *testing.T) *gocomp.Engine {
	t.Helper()
	reg := gocomp.NewRegistry()
	names, err := declarative.RegisterDir(reg, filepath.Join("testdata", "components"))
	if err != nil {
		t.Fatalf("register dir: %v", err)
	}
	if !reflect.DeepEqual(names, []string{"example:lamp", "example:sign"}) {
		t.Fatalf("unexpected names %v", names)
	}
	return gocomp.New(reg)
}

func TestYAMLComponent_Conditions(t *testing.T) {
	e := loadEngine(t)
	cases := []struct {
		bag  gocomp.PropertyBag
		want string
	}{
		{
			bag:  gocomp.PropertyBag{"color": "blue", "lit": true},
			want: `{"minecraft:block/components":{"minecraft:display_name":"lamp.blue","minecraft:light_emission":15}}`,
		},
		{
			bag:  gocomp.PropertyBag{"color": "red", "lit": true},
			want: `{"minecraft:block/components":{"minecraft:display_name":"lamp.red"}}`,
		},
		{
			bag:  gocomp.PropertyBag{"color": "blue"},
			want: `{"minecraft:block/components":{"minecraft:display_name":"lamp.blue"}}`,
		},
	}
	for i, tc := range cases {
		if got := render(t, e, "example:lamp", tc.bag); got != tc.want+"\n" {
			t.Fatalf("case %d: got %s want %s", i, got, tc.want)
		}
	}
}

func TestYAMLComponent_Schema(t *testing.T) {
	def, err := declarative.LoadFile(filepath.Join("testdata", "components", "lamp.yaml"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if def.Schema.Description != "A lamp block that glows when lit." {
		t.Fatalf("unexpected description %q", def.Schema.Description)
	}
	if c := def.Schema.Properties["lit"]; c.Type != gocomp.TypeBoolean || c.Description == "" {
		t.Fatalf("unexpected lit constraint %+v", c)
	}
	err = gocomp.Validate(def.Schema, gocomp.PropertyBag{"color": "green"})
	iss, ok := gocomp.AsIssues(err)
	if !ok || len(iss) != 1 || iss[0].Code != gocomp.CodeInvalidEnum {
		t.Fatalf("expected invalid_enum, got %v", err)
	}
}

func TestJSONCComponent_StripAndInterpolate(t *testing.T) {
	e := loadEngine(t)
	got := render(t, e, "example:sign", gocomp.PropertyBag{"size": 2, "colour": "oak"})
	want := `{"minecraft:item/components":{"minecraft:max_stack_size":16,"minecraft:render_offsets":"tools","size":2,"tags":["sign","size-2"]}}` + "\n"
	if got != want {
		t.Fatalf("got %s want %s", got, want)
	}
	got = render(t, e, "example:sign", gocomp.PropertyBag{"size": 1.0})
	want = `{"minecraft:item/components":{"minecraft:max_stack_size":16,"size":1,"tags":["sign","size-1"]}}` + "\n"
	if got != want {
		t.Fatalf("got %s want %s", got, want)
	}
}

func TestCompile_ReportsFileIssues(t *testing.T) {
	_, err := declarative.LoadFile(filepath.Join("testdata", "broken", "bad.yaml"))
	iss, ok := gocomp.AsIssues(err)
	if !ok {
		t.Fatalf("expected Issues, got %v", err)
	}
	want := []string{"/properties/kind/type", "/emit/0/when/shape", "/emit/0/patch"}
	if len(iss) != len(want) {
		t.Fatalf("expected %d issues, got %v", len(want), iss)
	}
	for i, p := range want {
		if iss[i].Path != p {
			t.Fatalf("issue %d at %s, want %s", i, iss[i].Path, p)
		}
	}
	if iss[2].Params["property"] != "missing" {
		t.Fatalf("expected the missing reference to be named: %v", iss[2].Params)
	}
}

func TestCompile_MissingNameAndTarget(t *testing.T) {
	f := &declarative.File{Emit: []declarative.Rule{{Patch: map[string]any{"a": 1}}}}
	_, err := declarative.Compile(f)
	iss, ok := gocomp.AsIssues(err)
	if !ok || len(iss.ByCode(gocomp.CodeRequired)) != 2 {
		t.Fatalf("expected name and target to be required, got %v", err)
	}
}

func TestCompile_RequiredUndeclared(t *testing.T) {
	f := &declarative.File{Name: "x:y", Required: []string{"ghost"}}
	if _, err := declarative.Compile(f); !errors.Is(err, gocomp.ErrInvalidSchema) {
		t.Fatalf("expected ErrInvalidSchema, got %v", err)
	}
}

func TestParse_RejectsUnknownFields(t *testing.T) {
	_, err := declarative.Parse([]byte(`{"name":"x:y","emits":[]}`), declarative.FormatJSON)
	if err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestParse_Formats(t *testing.T) {
	yamlSrc := []byte("name: x:y\nemit:\n  - target: T\n    patch: {n: 1}\n")
	jsonSrc := []byte(`{"name":"x:y","emit":[{"target":"T","patch":{"n":1}}]}`)
	a, err := declarative.Parse(yamlSrc, declarative.FormatYAML)
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	b, err := declarative.Parse(jsonSrc, declarative.FormatJSON)
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("formats disagree: %+v vs %+v", a, b)
	}
}

func TestRegisterDir_Missing(t *testing.T) {
	if _, err := declarative.RegisterDir(gocomp.NewRegistry(), filepath.Join("testdata", "nope")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestCompile_IfExpression(t *testing.T) {
	src := []byte(`name: example:blade
properties:
  rarity: {type: number}
  kind: {type: string, enum: [sword, bow]}
  cursed: {type: boolean}
required: [rarity, kind]
emit:
  - target: T
    patch: {base: true}
  - target: T
    if: rarity >= 4 && kind == "sword" && !cursed
    patch: {glint: true}
`)
	f, err := declarative.Parse(src, declarative.FormatYAML)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	def, err := declarative.Compile(f)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	reg := gocomp.NewRegistry()
	reg.MustRegister(def)
	e := gocomp.New(reg)

	cases := []struct {
		bag  gocomp.PropertyBag
		want string
	}{
		{gocomp.PropertyBag{"rarity": 5, "kind": "sword"}, `{"T":{"base":true,"glint":true}}`},
		{gocomp.PropertyBag{"rarity": 5, "kind": "sword", "cursed": true}, `{"T":{"base":true}}`},
		{gocomp.PropertyBag{"rarity": 3, "kind": "sword"}, `{"T":{"base":true}}`},
		{gocomp.PropertyBag{"rarity": 4, "kind": "bow"}, `{"T":{"base":true}}`},
	}
	for i, tc := range cases {
		if got := render(t, e, "example:blade", tc.bag); got != tc.want+"\n" {
			t.Fatalf("case %d: got %s want %s", i, got, tc.want)
		}
	}
}

func TestCompile_BadIfExpression(t *testing.T) {
	f := &declarative.File{
		Name:       "example:bad-if",
		Properties: map[string]declarative.PropertyFile{"level": {Type: "number"}},
		Emit: []declarative.Rule{
			{Target: "T", If: "level + 1", Patch: map[string]any{"a": 1}},
			{Target: "T", If: "ghost > 1", Patch: map[string]any{"b": 1}},
		},
	}
	_, err := declarative.Compile(f)
	iss, ok := gocomp.AsIssues(err)
	if !ok || len(iss.ByCode(declarative.CodeInvalidExpression)) != 2 {
		t.Fatalf("expected two invalid_expression issues, got %v", err)
	}
	if iss[0].Path != "/emit/0/if" || iss[1].Path != "/emit/1/if" {
		t.Fatalf("unexpected paths %v", iss)
	}
}
