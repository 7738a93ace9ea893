package declarative

import (
	"sort"
	"strings"

	gocomp "github.com/reoring/gocomp"
)

// expand returns a copy of v with ${name} references in string values
// replaced by the text of the named property. A string consisting of a single
// reference is replaced by the property value itself, keeping its type.
func expand(p gocomp.Properties, v any) any {
	switch x := v.(type) {
	case string:
		if name, ok := wholeRef(x); ok {
			if val, ok := p.Value(name); ok {
				return val
			}
		}
		return substitute(x, p.Text)
	case map[string]any:
		out := make(map[string]any, len(x))
		for k, e := range x {
			out[k] = expand(p, e)
		}
		return out
	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = expand(p, e)
		}
		return out
	}
	return v
}

// wholeRef reports whether s is exactly one ${name} reference.
func wholeRef(s string) (string, bool) {
	if !strings.HasPrefix(s, "${") || !strings.HasSuffix(s, "}") {
		return "", false
	}
	name := s[2 : len(s)-1]
	if name == "" || strings.ContainsAny(name, "${}") {
		return "", false
	}
	return name, true
}

// substitute replaces each ${name} in s with lookup(name). An unterminated
// reference is kept verbatim.
func substitute(s string, lookup func(string) string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	var b strings.Builder
	for {
		i := strings.Index(s, "${")
		if i < 0 {
			b.WriteString(s)
			return b.String()
		}
		j := strings.IndexByte(s[i+2:], '}')
		if j < 0 {
			b.WriteString(s)
			return b.String()
		}
		b.WriteString(s[:i])
		b.WriteString(lookup(s[i+2 : i+2+j]))
		s = s[i+3+j:]
	}
}

// references lists the property names referenced from string values in v,
// sorted.
func references(v any) []string {
	var out []string
	seen := map[string]bool{}
	var walk func(any)
	walk = func(v any) {
		switch x := v.(type) {
		case string:
			substitute(x, func(name string) string {
				if !seen[name] {
					seen[name] = true
					out = append(out, name)
				}
				return ""
			})
		case map[string]any:
			for _, e := range x {
				walk(e)
			}
		case []any:
			for _, e := range x {
				walk(e)
			}
		}
	}
	walk(v)
	sort.Strings(out)
	return out
}
