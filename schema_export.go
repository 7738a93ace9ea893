package gocomp

import js "github.com/reoring/gocomp/jsonschema"

// JSONSchema projects the schema into a JSON Schema object describing the
// property bag accepted by the component titled title.
func (s Schema) JSONSchema(title string) *js.Schema {
	out := &js.Schema{
		Schema:      js.Draft,
		Title:       title,
		Description: s.Description,
		Type:        "object",
		Properties:  make(map[string]*js.Schema, len(s.Properties)),
	}
	for _, name := range s.Names() {
		c := s.Properties[name]
		out.Properties[name] = &js.Schema{
			Type:        string(c.Type),
			Description: c.Description,
			Enum:        append([]any(nil), c.Enum...),
		}
	}
	if len(s.Required) > 0 {
		out.Required = append([]string(nil), s.Required...)
	}
	if s.Unknown == UnknownStrict {
		out.AdditionalProperties = false
	}
	return out
}
