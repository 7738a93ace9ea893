package gocomp

// Package gocomp provides:
//
// - A registry of named components, each a Schema plus a template
// - Validation of property bags with a stable error model via Issues (JSON Pointer, code, message)
// - Deterministic patch emission and ordered deep merge into target Documents
// - A typed entry point (Define/InvokeTyped) next to the untyped, data-driven one
//
// Design policy:
// - Keep only public APIs in the root package; put the merge implementation under internal/.
// - Place the schema builder under dsl/, JSON Schema export under jsonschema/, content under components/,
//   file-defined components under declarative/, and the CLI under cmd/gocomp.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//  reg := gocomp.NewRegistry()
//  genshicraft.Register(reg)
//  eng := gocomp.New(reg)
//
//  doc := gocomp.NewDocument()
//  err := eng.Invoke(ctx, "genshicraft:weapon", gocomp.PropertyBag{"rarity": 3, "type": "Sword"}, doc)
//  out, err := doc.Encode("  ", false)
//
// Invoke is atomic: a rejected bag or a failing template never leaves a
// partially merged document.
