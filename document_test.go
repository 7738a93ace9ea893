package gocomp_test

import (
	"reflect"
	"testing"

	gocomp "github.com/reoring/gocomp"
)

func TestDocument_MergeRules(t *testing.T) {
	doc := gocomp.NewDocument()
	doc.Merge(
		gocomp.Emit(gocomp.Patch{"list": []any{1, 2}, "obj": map[string]any{"k": 1}, "s": "a"}, "P"),
		gocomp.Emit(gocomp.Patch{"list": []any{3}, "obj": "scalar", "t": nil}, "P"),
		gocomp.Emit(gocomp.Patch{"q": 1}, "Q"),
	)
	got, _ := doc.Get("P")
	want := map[string]any{"list": []any{3}, "obj": "scalar", "s": "a", "t": nil}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("P: got %v, want %v", got, want)
	}
	if targets := doc.Targets(); !reflect.DeepEqual(targets, []string{"P", "Q"}) {
		t.Fatalf("unexpected targets %v", targets)
	}
}

func TestDocument_GetReturnsCopy(t *testing.T) {
	doc := gocomp.NewDocument()
	doc.Merge(gocomp.Emit(gocomp.Patch{"a": map[string]any{"b": 1}}, "P"))
	got, _ := doc.Get("P")
	got["a"].(map[string]any)["b"] = 2
	again, _ := doc.Get("P")
	if again["a"].(map[string]any)["b"] != 1 {
		t.Fatalf("Get leaked internal state")
	}
	if _, ok := doc.Get("missing"); ok {
		t.Fatalf("expected missing section")
	}
}

func TestDocument_EncodeSortedAndStable(t *testing.T) {
	doc := gocomp.NewDocument()
	doc.Merge(
		gocomp.Emit(gocomp.Patch{"z": 1, "a": "<b>"}, "minecraft:item/components"),
		gocomp.Emit(gocomp.Patch{"m": true}, "minecraft:block/components"),
	)
	out, err := doc.Encode("", false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	want := `{"minecraft:block/components":{"m":true},"minecraft:item/components":{"a":"<b>","z":1}}` + "\n"
	if string(out) != want {
		t.Fatalf("got %s want %s", out, want)
	}
	indented, err := doc.Encode("  ", false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if len(indented) <= len(out) {
		t.Fatalf("expected indented output to be longer")
	}
}

func TestDocument_Nested(t *testing.T) {
	doc := gocomp.NewDocument()
	doc.Merge(
		gocomp.Emit(gocomp.Patch{"x": 1}, "minecraft:item/components"),
		gocomp.Emit(gocomp.Patch{"id": "ns:thing"}, "minecraft:item/description"),
		gocomp.Emit(gocomp.Patch{"v": 2}, "format"),
	)
	got := doc.Nested()
	want := map[string]any{
		"minecraft:item": map[string]any{
			"components":  map[string]any{"x": 1},
			"description": map[string]any{"id": "ns:thing"},
		},
		"format": map[string]any{"v": 2},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	out, err := doc.Encode("", true)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	wantJSON := `{"format":{"v":2},"minecraft:item":{"components":{"x":1},"description":{"id":"ns:thing"}}}` + "\n"
	if string(out) != wantJSON {
		t.Fatalf("got %s", out)
	}
}

func TestFingerprint_Empty(t *testing.T) {
	a, err := gocomp.Fingerprint(nil)
	if err != nil {
		t.Fatalf("fingerprint: %v", err)
	}
	b, _ := gocomp.Fingerprint([]gocomp.Emission{})
	if a != b {
		t.Fatalf("nil and empty should fingerprint alike")
	}
	if gocomp.Digest([]byte("x")) == gocomp.Digest([]byte("y")) {
		t.Fatalf("digest collision")
	}
}

func TestDocument_EncodeKeepsNullContainers(t *testing.T) {
	doc := gocomp.NewDocument()
	doc.Merge(gocomp.Emit(gocomp.Patch{"a": map[string]any(nil), "b": []string(nil), "c": nil}, "P"))
	out, err := doc.Encode("", false)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if want := `{"P":{"a":null,"b":null,"c":null}}` + "\n"; string(out) != want {
		t.Fatalf("got %s want %s", out, want)
	}
}
