package i18n

import (
	"strings"
	"testing"
)

func TestTranslator_DefaultAndJapanese(t *testing.T) {
	// default is en
	if msg := T("required", map[string]string{"key": "rarity"}); msg != "required property missing: rarity" {
		t.Fatalf("unexpected english message %q", msg)
	}
	if msg := T("invalid_type", map[string]string{"key": "type", "expected": "string"}); !strings.Contains(msg, "(expected string)") {
		t.Fatalf("expected the declared type in %q", msg)
	}

	SetLanguage("ja")
	if msg := T("unknown_key", map[string]string{"key": "colour"}); msg != "未知のプロパティです: colour" {
		t.Fatalf("expected japanese message, got %q", msg)
	}

	// reset to en
	SetLanguage("en")
}

func TestTranslator_UnknownCodeFallsBack(t *testing.T) {
	if msg := T("no_such_code", nil); msg != "no_such_code" {
		t.Fatalf("expected the code back, got %q", msg)
	}
}

type upper struct{}

func (upper) Message(code string, data map[string]string) string {
	return strings.ToUpper(code) + ":" + data["key"]
}

func TestSetTranslator(t *testing.T) {
	SetTranslator(upper{})
	defer SetTranslator(nil)
	if msg := T("required", map[string]string{"key": "k"}); msg != "REQUIRED:k" {
		t.Fatalf("custom translator not used: %q", msg)
	}
}
