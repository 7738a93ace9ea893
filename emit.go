package gocomp

import "github.com/reoring/gocomp/internal/merge"

// TemplateFunc turns validated properties into the ordered list of patches a
// component contributes. It must be deterministic: the same properties always
// give the same emissions.
type TemplateFunc func(p Properties) ([]Emission, error)

// Emitter collects emissions in call order for callback-style templates.
type Emitter struct {
	list []Emission
}

// Emit appends patch for target. The patch is deep-copied, so the caller may
// reuse or mutate it afterwards.
func (e *Emitter) Emit(patch Patch, target string) {
	e.list = append(e.list, Emission{Target: target, Patch: clonePatch(patch)})
}

// Len returns the number of emissions collected so far.
func (e *Emitter) Len() int { return len(e.list) }

// Emissions returns the collected emissions in call order.
func (e *Emitter) Emissions() []Emission { return e.list }

// EmitFunc adapts a callback-style template, which calls e.Emit zero or more
// times, into a TemplateFunc.
func EmitFunc(fn func(p Properties, e *Emitter) error) TemplateFunc {
	return func(p Properties) ([]Emission, error) {
		var e Emitter
		if err := fn(p, &e); err != nil {
			return nil, err
		}
		return e.list, nil
	}
}

// Emit builds a single Emission. It reads well in return-style templates:
//
//	return []gocomp.Emission{gocomp.Emit(gocomp.Patch{...}, target)}, nil
func Emit(patch Patch, target string) Emission {
	return Emission{Target: target, Patch: patch}
}

func clonePatch(p Patch) Patch {
	return Patch(merge.Object(p))
}
