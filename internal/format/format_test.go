package format

import (
	"encoding/json"
	"testing"
)

type doc struct {
	Name  string         `json:"name"`
	Value any            `json:"value"`
	Extra map[string]any `json:"extra,omitempty"`
}

func TestOf(t *testing.T) {
	cases := map[string]Format{"a.yaml": YAML, "b.YML": YAML, "c.json": JSON, "d.jsonc": JSONC}
	for path, want := range cases {
		if got, ok := Of(path); !ok || got != want {
			t.Fatalf("%s: got %v %v", path, got, ok)
		}
	}
	if _, ok := Of("e.toml"); ok {
		t.Fatalf("toml should not be recognized")
	}
}

func TestDecode_AllFormatsAgree(t *testing.T) {
	inputs := map[Format]string{
		YAML:  "name: x\nvalue: 3\nextra:\n  1: one\n",
		JSON:  `{"name":"x","value":3,"extra":{"1":"one"}}`,
		JSONC: "{\n  // comment\n  \"name\": \"x\",\n  \"value\": 3,\n  \"extra\": {\"1\": \"one\",},\n}",
	}
	for f, src := range inputs {
		var d doc
		if err := Decode([]byte(src), f, &d); err != nil {
			t.Fatalf("%s: %v", f, err)
		}
		if d.Name != "x" || d.Value != json.Number("3") || d.Extra["1"] != "one" {
			t.Fatalf("%s: unexpected %+v", f, d)
		}
	}
}

func TestDecode_UnknownFields(t *testing.T) {
	var d doc
	if err := Decode([]byte("name: x\nnope: 1\n"), YAML, &d); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestDecode_EmptyYAML(t *testing.T) {
	var d doc
	if err := Decode(nil, YAML, &d); err != nil {
		t.Fatalf("empty yaml should decode to zero value: %v", err)
	}
}
