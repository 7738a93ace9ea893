package genshicraft

import (
	"fmt"

	gocomp "github.com/reoring/gocomp"
	"github.com/reoring/gocomp/components"
	"github.com/reoring/gocomp/dsl"
)

// WeaponType is the closed set of weapon kinds.
type WeaponType string

const (
	Sword    WeaponType = "Sword"
	Claymore WeaponType = "Claymore"
	Polearm  WeaponType = "Polearm"
	Catalyst WeaponType = "Catalyst"
	Bow      WeaponType = "Bow"
)

// WeaponTypes lists every WeaponType in declaration order.
var WeaponTypes = []WeaponType{Sword, Claymore, Polearm, Catalyst, Bow}

// Rarities are the allowed star ratings of weapons and artifacts.
var Rarities = []int{1, 2, 3, 4, 5}

// WeaponParams are the properties of genshicraft:weapon.
type WeaponParams struct {
	Rarity int        `json:"rarity"`
	Type   WeaponType `json:"type"`
}

// Weapon is genshicraft:weapon. Every weapon is a single hand-equipped item
// filed under its type and rarity; swords also get a flattened render offset.
func Weapon() gocomp.ComponentDefinition {
	types := make([]string, len(WeaponTypes))
	for i, t := range WeaponTypes {
		types[i] = string(t)
	}
	schema := dsl.Object().
		Describe("The component for GenshiCraft weapons.").
		Field("rarity", dsl.NumberEnum(Rarities...).Describe("The rarity of the weapon.")).Required().
		Field("type", dsl.StringEnum(types...).Describe("The type of the weapon.")).Required().
		MustBuild()
	return gocomp.Define(Namespace+":weapon", schema, weaponTemplate)
}

func weaponTemplate(p WeaponParams) ([]gocomp.Emission, error) {
	out := []gocomp.Emission{gocomp.Emit(gocomp.Patch{
		"minecraft:creative_category": map[string]any{
			"parent": fmt.Sprintf("itemGroup.name.GenshiCraft.Weapons.%s.%d", p.Type, p.Rarity),
		},
		"minecraft:damage":         0,
		"minecraft:hand_equipped":  true,
		"minecraft:max_stack_size": 1,
		"minecraft:weapon":         map[string]any{},
	}, components.ItemComponents)}

	switch p.Type {
	case Sword:
		out = append(out, gocomp.Emit(gocomp.Patch{
			"minecraft:render_offsets": map[string]any{
				"main_hand": map[string]any{
					"first_person": map[string]any{
						"scale": vec(0.003, 0.001, 0.003),
					},
					"third_person": map[string]any{
						"position": vec(0.2, 1.1, -0.4),
						"scale":    vec(0.006, 0.001, 0.006),
					},
				},
			},
		}, components.ItemComponents))
	}
	return out, nil
}
