package gocomp

import "sort"

// Validate checks bag against s. It returns nil when the bag satisfies the
// schema, or Issues carrying every violation found:
//
//   - required: a required property is absent;
//   - unknown_key: a property is not declared (UnknownStrict only);
//   - invalid_type: a value's runtime type differs from the declared type;
//   - invalid_enum: a value is not a member of the declared enum.
//
// Missing properties are reported first in name order, then bag entries in
// name order. Validate never stops at the first violation.
func Validate(s Schema, bag PropertyBag) error {
	_, _, iss := check(s, bag)
	if len(iss) > 0 {
		return iss
	}
	return nil
}

// ValidateWithWarnings is Validate that also returns the unknown properties
// dropped under UnknownStrip as warnings.
func ValidateWithWarnings(s Schema, bag PropertyBag) (warnings Issues, err error) {
	_, warnings, iss := check(s, bag)
	if len(iss) > 0 {
		return warnings, iss
	}
	return warnings, nil
}

// check validates bag and returns the accepted properties (unknowns removed
// under UnknownStrip), the warnings and the issues.
func check(s Schema, bag PropertyBag) (PropertyBag, Issues, Issues) {
	var iss, warn Issues

	missing := make([]string, 0, len(s.Required))
	for _, r := range s.Required {
		if _, ok := bag[r]; !ok {
			missing = append(missing, r)
		}
	}
	sort.Strings(missing)
	for _, name := range missing {
		iss = AppendIssues(iss, propertyIssue(name, CodeRequired, nil))
	}

	keys := make([]string, 0, len(bag))
	for k := range bag {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	accepted := make(PropertyBag, len(bag))
	for _, name := range keys {
		v := bag[name]
		c, declared := s.Properties[name]
		if !declared {
			it := propertyIssue(name, CodeUnknownKey, nil)
			if s.Unknown == UnknownStrip {
				warn = AppendIssues(warn, it)
			} else {
				iss = AppendIssues(iss, it)
			}
			continue
		}
		if t, ok := typeOf(v); !ok || t != c.Type {
			iss = AppendIssues(iss, propertyIssue(name, CodeInvalidType, map[string]any{
				"expected": string(c.Type),
				"got":      typeName(v),
			}))
			continue
		}
		if !c.Allows(v) {
			iss = AppendIssues(iss, propertyIssue(name, CodeInvalidEnum, map[string]any{
				"allowed": c.Enum,
				"got":     v,
			}))
			continue
		}
		accepted[name] = v
	}
	return accepted, warn, iss
}
