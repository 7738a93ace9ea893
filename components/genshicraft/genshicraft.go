// Package genshicraft defines the GenshiCraft block and item components.
package genshicraft

import gocomp "github.com/reoring/gocomp"

// Namespace prefixes every component name in this package.
const Namespace = "genshicraft"

// Definitions returns the GenshiCraft components in registration order.
func Definitions() []gocomp.ComponentDefinition {
	return []gocomp.ComponentDefinition{
		SurfaceBlock(),
		CommonItem(),
		Food(),
		Weapon(),
		Artifact(),
	}
}

// Register adds every GenshiCraft component to reg.
func Register(reg *gocomp.Registry) error {
	for _, def := range Definitions() {
		if err := reg.Register(def); err != nil {
			return err
		}
	}
	return nil
}

// mainHandOffsets is the render offset shared by held items: the model is
// authored at block scale and shrunk for first and third person views.
func mainHandOffsets(firstPerson, thirdPerson []any) gocomp.Patch {
	return gocomp.Patch{
		"minecraft:render_offsets": map[string]any{
			"main_hand": map[string]any{
				"first_person": map[string]any{"scale": firstPerson},
				"third_person": map[string]any{"scale": thirdPerson},
			},
		},
	}
}

func vec(x, y, z float64) []any { return []any{x, y, z} }

func defaultMainHandOffsets() gocomp.Patch {
	return mainHandOffsets(vec(0.003, 0.003, 0.003), vec(0.006, 0.006, 0.006))
}
