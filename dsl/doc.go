// Package dsl provides a fluent builder for gocomp schemas.
//
// Overview
//   - Object(): declare a component's properties with Field/Required/Unknown*/Describe, then Build/MustBuild.
//   - String()/Number()/Bool(): property constraints, narrowed with Enum and documented with Describe.
//   - StringEnum/NumberEnum: shorthands for closed sets of literals.
//
// Quickstart
//
//	s := dsl.Object().
//		Describe("The component for weapons.").
//		Field("rarity", dsl.NumberEnum(1, 2, 3, 4, 5)).Required().
//		Field("type", dsl.StringEnum("Sword", "Bow")).Required().
//		MustBuild()
//
// Build runs gocomp.Schema.Check, so a builder can never produce a schema whose
// required names are undeclared or whose enum literals have the wrong type.
package dsl
