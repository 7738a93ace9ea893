// Package declarative compiles components authored as data files into
// gocomp component definitions.
//
// A component file holds a schema and an ordered list of emit rules:
//
//	name: example:lamp
//	description: A lamp block.
//	properties:
//	  lit: {type: boolean}
//	  color: {type: string, enum: [red, blue]}
//	required: [color]
//	emit:
//	  - target: minecraft:block/components
//	    patch:
//	      minecraft:display_name: "lamp.${color}"
//	  - target: minecraft:block/components
//	    when: {lit: true}
//	    unless: {color: [red]}
//	    patch:
//	      minecraft:light_emission: 15
//	  - target: minecraft:block/components
//	    if: lit && color == "blue"
//	    patch:
//	      minecraft:map_color: "#0000ff"
//
// A rule applies when every entry of when matches, unless (if present) does
// not fully match, and the if expression (if present) is true. An entry
// matches when the property is present and equals the literal, or is a member
// of the list. String values inside patches may reference properties as
// ${name}; a string that is exactly one reference takes the property's value
// and type.
//
// If expressions use the expr-lang syntax. Each declared property is a
// variable; optional properties that were not supplied hold the zero value of
// their type. Expressions are type-checked when the file is compiled.
//
// Files may be YAML (.yaml, .yml), JSON (.json) or JSONC (.jsonc, JSON with
// comments and trailing commas).
package declarative
