package gocomp

import "github.com/reoring/gocomp/i18n"

// IssueAt creates an Issue at the given path with provided code, message and params map.
// This is a convenience helper to improve readability at call sites with many parameters.
func IssueAt(p PathRef, code, msg string, params map[string]any) Issue {
	return Issue{Path: p.Pointer(), Code: code, Message: msg, Params: params}
}

// propertyIssue creates an Issue for a top-level property with a localized
// message for code.
func propertyIssue(name, code string, params map[string]any) Issue {
	data := make(map[string]string, len(params)+1)
	data["key"] = name
	for k, v := range params {
		if s, ok := v.(string); ok {
			data[k] = s
		}
	}
	return IssueAt(Root().Field(name), code, i18n.T(code, data), params)
}
