package genshicraft

import (
	gocomp "github.com/reoring/gocomp"
	"github.com/reoring/gocomp/components"
	"github.com/reoring/gocomp/dsl"
)

// SurfaceBlock is genshicraft:surface_block, for blocks lying on surfaces
// without a collision box.
func SurfaceBlock() gocomp.ComponentDefinition {
	return gocomp.ComponentDefinition{
		Name: Namespace + ":surface_block",
		Schema: dsl.Object().
			Describe("The component for GenshiCraft blocks on surfaces without collision box.").
			MustBuild(),
		Template: gocomp.EmitFunc(func(_ gocomp.Properties, e *gocomp.Emitter) error {
			e.Emit(gocomp.Patch{
				"minecraft:block_light_absorption": 0,
				"minecraft:entity_collision":       false,
				"minecraft:pick_collision": map[string]any{
					"origin": vec(-4, 0, -4),
					"size":   vec(8, 8, 8),
				},
			}, components.BlockComponents)
			return nil
		}),
	}
}
