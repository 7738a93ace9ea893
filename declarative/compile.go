package declarative

import (
	"fmt"
	"sort"
	"strings"

	"github.com/expr-lang/expr/vm"

	gocomp "github.com/reoring/gocomp"
)

// Compile turns f into a component definition. Structural problems in the
// file are reported as gocomp.Issues with JSON Pointer paths into the file.
func Compile(f *File) (gocomp.ComponentDefinition, error) {
	schema, iss := compileSchema(f)
	root := gocomp.Root()
	programs := make([]*vm.Program, len(f.Emit))
	if strings.TrimSpace(f.Name) == "" {
		iss = gocomp.AppendIssues(iss, root.Field("name").Issue(gocomp.CodeRequired, "component name is required"))
	}
	for i, r := range f.Emit {
		at := root.Field("emit").Index(i)
		if r.Target == "" {
			iss = gocomp.AppendIssues(iss, at.Field("target").Issue(gocomp.CodeRequired, "target is required"))
		}
		if r.Patch == nil {
			iss = gocomp.AppendIssues(iss, at.Field("patch").Issue(gocomp.CodeRequired, "patch is required"))
		}
		iss = append(iss, checkCondition(schema, at.Field("when"), r.When)...)
		iss = append(iss, checkCondition(schema, at.Field("unless"), r.Unless)...)
		if r.If != "" {
			prog, err := compileIf(schema, r.If)
			if err != nil {
				iss = gocomp.AppendIssues(iss, at.Field("if").Issue(CodeInvalidExpression, err.Error()))
			}
			programs[i] = prog
		}
		for _, ref := range references(r.Patch) {
			if _, ok := schema.Properties[ref]; !ok {
				iss = gocomp.AppendIssues(iss, at.Field("patch").Issue(gocomp.CodeUnknownKey,
					"patch references undeclared property", "property", ref))
			}
		}
	}
	if len(iss) > 0 {
		return gocomp.ComponentDefinition{}, iss
	}
	if err := schema.Check(); err != nil {
		return gocomp.ComponentDefinition{}, err
	}

	rules := append([]Rule(nil), f.Emit...)
	return gocomp.ComponentDefinition{
		Name:     f.Name,
		Schema:   schema,
		Template: template(schema, rules, programs),
	}, nil
}

func compileSchema(f *File) (gocomp.Schema, gocomp.Issues) {
	var iss gocomp.Issues
	unknown, err := gocomp.ParseUnknownPolicy(f.Unknown)
	if err != nil {
		iss = gocomp.AppendIssues(iss, gocomp.Root().Field("unknown").Issue(gocomp.CodeInvalidEnum, err.Error()))
	}
	s := gocomp.Schema{
		Description: f.Description,
		Properties:  make(map[string]gocomp.PropertyConstraint, len(f.Properties)),
		Required:    append([]string(nil), f.Required...),
		Unknown:     unknown,
	}
	for name, p := range f.Properties {
		t := gocomp.PropertyType(p.Type)
		if !t.Valid() {
			iss = gocomp.AppendIssues(iss, gocomp.Root().Field("properties").Field(name).Field("type").
				Issue(gocomp.CodeInvalidEnum, "type must be number, string or boolean", "got", p.Type))
		}
		s.Properties[name] = gocomp.PropertyConstraint{Type: t, Enum: p.Enum, Description: p.Description}
	}
	sort.SliceStable(iss, func(i, j int) bool { return iss[i].Path < iss[j].Path })
	return s, iss
}

func checkCondition(s gocomp.Schema, at gocomp.PathRef, cond map[string]any) gocomp.Issues {
	var iss gocomp.Issues
	keys := make([]string, 0, len(cond))
	for k := range cond {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, ok := s.Properties[k]; !ok {
			iss = gocomp.AppendIssues(iss, at.Field(k).Issue(gocomp.CodeUnknownKey, "condition on undeclared property"))
		}
	}
	return iss
}

// template evaluates rules in order against validated properties. programs
// holds the compiled if expression of each rule, nil when it has none.
func template(s gocomp.Schema, rules []Rule, programs []*vm.Program) gocomp.TemplateFunc {
	return func(p gocomp.Properties) ([]gocomp.Emission, error) {
		var out []gocomp.Emission
		for i, r := range rules {
			if !matches(p, r.When) {
				continue
			}
			if len(r.Unless) > 0 && matches(p, r.Unless) {
				continue
			}
			if programs[i] != nil {
				ok, err := evalIf(programs[i], s, p)
				if err != nil {
					return nil, fmt.Errorf("emit[%d]: %w", i, err)
				}
				if !ok {
					continue
				}
			}
			patch, ok := expand(p, r.Patch).(map[string]any)
			if !ok {
				return nil, fmt.Errorf("emit[%d]: patch is not an object", i)
			}
			out = append(out, gocomp.Emit(patch, r.Target))
		}
		return out, nil
	}
}

// matches reports whether every entry of cond holds. An empty cond matches.
func matches(p gocomp.Properties, cond map[string]any) bool {
	for name, want := range cond {
		got, ok := p.Value(name)
		if !ok {
			return false
		}
		if list, isList := want.([]any); isList {
			member := false
			for _, w := range list {
				if gocomp.LiteralEqual(got, w) {
					member = true
					break
				}
			}
			if !member {
				return false
			}
			continue
		}
		if !gocomp.LiteralEqual(got, want) {
			return false
		}
	}
	return true
}
