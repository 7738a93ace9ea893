package i18n

import "sync"

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "expected" or "key").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	key := data["key"]
	switch t.lang {
	case "ja":
		switch code {
		case "required":
			return join("必須プロパティが不足しています", key)
		case "unknown_key":
			return join("未知のプロパティです", key)
		case "invalid_type":
			return join("型が不正です", expected(data, "期待値"))
		case "invalid_enum":
			return join("許可されていない値です", key)
		}
	default: // "en"
		switch code {
		case "required":
			return join("required property missing", key)
		case "unknown_key":
			return join("unknown property", key)
		case "invalid_type":
			return join("invalid type", expected(data, "expected"))
		case "invalid_enum":
			return join("value not allowed", key)
		}
	}
	return code
}

func join(msg, detail string) string {
	if detail == "" {
		return msg
	}
	return msg + ": " + detail
}

func expected(data map[string]string, label string) string {
	e, ok := data["expected"]
	if !ok {
		return data["key"]
	}
	return data["key"] + " (" + label + " " + e + ")"
}

var (
	mu                sync.RWMutex
	currentTranslator Translator = dictTranslator{lang: "en"}
)

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	mu.Lock()
	currentTranslator = dictTranslator{lang: lang}
	mu.Unlock()
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		tr = dictTranslator{lang: "en"}
	}
	mu.Lock()
	currentTranslator = tr
	mu.Unlock()
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string {
	mu.RLock()
	tr := currentTranslator
	mu.RUnlock()
	return tr.Message(code, data)
}
