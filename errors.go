package gocomp

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeRequired    = "required"     // MissingProperty
	CodeUnknownKey  = "unknown_key"  // UnknownProperty
	CodeInvalidType = "invalid_type" // TypeMismatch
	CodeInvalidEnum = "invalid_enum" // ValueNotAllowed
)

// Sentinel errors. Structured errors below match them through errors.Is.
var (
	ErrDuplicateName    = errors.New("gocomp: duplicate component name")
	ErrUnknownComponent = errors.New("gocomp: unknown component")
	ErrSchemaViolation  = errors.New("gocomp: schema violation")
	ErrTemplate         = errors.New("gocomp: template failed")
	ErrInvalidSchema    = errors.New("gocomp: invalid schema")
)

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer of the property (for example: /rarity).
	Code    string // One of the codes listed above.
	Message string
	// Params carries structured parameters (e.g., {"expected":"number",
	// "got":"string"}) for i18n and observability.
	Params map[string]any
}

// Property returns the property name the issue refers to.
func (it Issue) Property() string {
	p := strings.TrimPrefix(it.Path, "/")
	return strings.ReplaceAll(strings.ReplaceAll(p, "~1", "/"), "~0", "~")
}

// Issues is a collection of validation errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. invalid_type at /rarity
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// ByCode returns the issues carrying the given code, preserving order.
func (iss Issues) ByCode(code string) Issues {
	var out Issues
	for _, it := range iss {
		if it.Code == code {
			out = append(out, it)
		}
	}
	return out
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// SchemaViolationError reports that a property bag was rejected by the
// schema of Component. Issues is the complete, unfiltered violation list.
type SchemaViolationError struct {
	Component string
	Issues    Issues
}

func (e *SchemaViolationError) Error() string {
	return fmt.Sprintf("gocomp: component %q: schema violation: %s", e.Component, e.Issues.Error())
}

func (e *SchemaViolationError) Is(target error) bool { return target == ErrSchemaViolation }

func (e *SchemaViolationError) Unwrap() error { return e.Issues }

// TemplateError reports that the template function of Component failed.
type TemplateError struct {
	Component string
	Err       error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("gocomp: component %q: template failed: %v", e.Component, e.Err)
}

func (e *TemplateError) Is(target error) bool { return target == ErrTemplate }

func (e *TemplateError) Unwrap() error { return e.Err }
