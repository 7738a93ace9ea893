// Package components holds the target paths shared by component content
// packages.
package components

// Target paths observed in block and item definitions.
const (
	BlockComponents = "minecraft:block/components"
	ItemComponents  = "minecraft:item/components"
)
