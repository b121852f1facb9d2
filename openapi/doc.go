// Package openapi describes lookup field definitions as OpenAPI 3 schemas.
//
// [RemapSchema] applies the static parts of a [lookup.Config] to an object
// schema, so a document describing the fields a form parser produces can be
// turned into one describing the fields after the lookup plugin ran.
// [DocBase] bundles both, plus the config document schema, into a single
// OpenAPI document:
//
//	cfg := lookup.Config{ComponentProp: lookup.Named("type")}
//	doc := openapi.DocBase("Signup form", "1.0.0", cfg, in)
//	b, _ := doc.MarshalJSON()
package openapi
