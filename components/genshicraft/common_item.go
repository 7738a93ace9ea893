package genshicraft

import (
	gocomp "github.com/reoring/gocomp"
	"github.com/reoring/gocomp/components"
	"github.com/reoring/gocomp/dsl"
)

// CommonItem is genshicraft:common_item.
func CommonItem() gocomp.ComponentDefinition {
	return gocomp.ComponentDefinition{
		Name: Namespace + ":common_item",
		Schema: dsl.Object().
			Describe("The component for GenshiCraft common items.").
			MustBuild(),
		Template: gocomp.EmitFunc(func(_ gocomp.Properties, e *gocomp.Emitter) error {
			e.Emit(defaultMainHandOffsets(), components.ItemComponents)
			return nil
		}),
	}
}
