package genshicraft

import (
	gocomp "github.com/reoring/gocomp"
	"github.com/reoring/gocomp/components"
	"github.com/reoring/gocomp/dsl"
)

// Food is genshicraft:food. Food can always be eaten and is consumed almost
// instantly.
func Food() gocomp.ComponentDefinition {
	return gocomp.ComponentDefinition{
		Name: Namespace + ":food",
		Schema: dsl.Object().
			Describe("The component for GenshiCraft food.").
			MustBuild(),
		Template: gocomp.EmitFunc(func(_ gocomp.Properties, e *gocomp.Emitter) error {
			p := defaultMainHandOffsets()
			p["minecraft:creative_category"] = map[string]any{
				"parent": "itemGroup.name.GenshiCraft.Food",
			}
			p["minecraft:food"] = map[string]any{"can_always_eat": true}
			p["minecraft:use_duration"] = 0.1
			e.Emit(p, components.ItemComponents)
			return nil
		}),
	}
}
