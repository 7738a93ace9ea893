package genshicraft

import (
	"fmt"

	gocomp "github.com/reoring/gocomp"
	"github.com/reoring/gocomp/components"
	"github.com/reoring/gocomp/dsl"
)

// ArtifactType is the closed set of artifact pieces.
type ArtifactType string

const (
	FlowerOfLife     ArtifactType = "Flower of Life"
	PlumeOfDeath     ArtifactType = "Plume of Death"
	SandsOfEon       ArtifactType = "Sands of Eon"
	GobletOfEonothem ArtifactType = "Goblet of Eonothem"
	CircletOfLogos   ArtifactType = "Circlet of Logos"
)

// ArtifactTypes lists every ArtifactType in declaration order.
var ArtifactTypes = []ArtifactType{FlowerOfLife, PlumeOfDeath, SandsOfEon, GobletOfEonothem, CircletOfLogos}

// ArtifactSeries lists the artifact sets.
var ArtifactSeries = []string{"Adventurer"}

// artifactSlots maps each piece to the equipment slot it is worn in.
var artifactSlots = map[ArtifactType]string{
	FlowerOfLife:     "slot.armor.head",
	PlumeOfDeath:     "slot.armor.chest",
	SandsOfEon:       "slot.armor.legs",
	GobletOfEonothem: "slot.armor.feet",
	CircletOfLogos:   "slot.weapon.offhand",
}

// ArtifactParams are the properties of genshicraft:artifact.
type ArtifactParams struct {
	Rarity int          `json:"rarity"`
	Series string       `json:"series"`
	Type   ArtifactType `json:"type"`
}

// Artifact is genshicraft:artifact. Pieces are wearable in the slot matching
// their type; the circlet is held in the off hand and rendered invisible
// there, every other piece counts as armor.
func Artifact() gocomp.ComponentDefinition {
	types := make([]string, len(ArtifactTypes))
	for i, t := range ArtifactTypes {
		types[i] = string(t)
	}
	schema := dsl.Object().
		Describe("The component for GenshiCraft artifacts.").
		Field("rarity", dsl.NumberEnum(Rarities...).Describe("The rarity of the artifact.")).Required().
		Field("series", dsl.StringEnum(ArtifactSeries...).Describe("The set of the artifact.")).Required().
		Field("type", dsl.StringEnum(types...).Describe("The type of the artifact.")).Required().
		MustBuild()
	return gocomp.Define(Namespace+":artifact", schema, artifactTemplate)
}

func artifactTemplate(p ArtifactParams) ([]gocomp.Emission, error) {
	base := defaultMainHandOffsets()
	base["minecraft:creative_category"] = map[string]any{
		"parent": fmt.Sprintf("itemGroup.name.GenshiCraft.Artifacts.%s.%s.%d", p.Series, p.Type, p.Rarity),
	}
	base["minecraft:max_stack_size"] = 1
	out := []gocomp.Emission{gocomp.Emit(base, components.ItemComponents)}

	if p.Type == CircletOfLogos {
		hidden := vec(0, 0, 0)
		out = append(out, gocomp.Emit(gocomp.Patch{
			"minecraft:allow_off_hand": true,
			"minecraft:hand_equipped":  true,
			"minecraft:render_offsets": map[string]any{
				"off_hand": map[string]any{
					"first_person": map[string]any{"scale": hidden},
					"third_person": map[string]any{"scale": hidden},
				},
			},
		}, components.ItemComponents))
	} else {
		out = append(out, gocomp.Emit(gocomp.Patch{
			"minecraft:armor": map[string]any{"protection": 0},
		}, components.ItemComponents))
	}

	slot, ok := artifactSlots[p.Type]
	if !ok {
		return nil, fmt.Errorf("no equipment slot for artifact type %q", p.Type)
	}
	out = append(out, gocomp.Emit(gocomp.Patch{
		"minecraft:wearable": map[string]any{
			"dispensable": true,
			"slot":        slot,
		},
	}, components.ItemComponents))
	return out, nil
}
