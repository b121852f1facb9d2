// Package lookup rewrites parsed form schemas for form-schema-driven UI
// generators.
//
// A schema is an ordered list of field definitions, each an open string-keyed
// map. A [Lookup] renames the property holding a field's component type to
// "component", renames or deletes other properties, and finally maps
// component identifiers to new ones:
//
//	l := lookup.New(lookup.Config{
//	    ComponentProp: lookup.Named("type"),
//	    MapComponents: map[string]string{"FormText": "BaseInput"},
//	    MapProps: lookup.MapProps(
//	        lookup.Rename("label", "tag"),
//	        lookup.Delete("hint"),
//	    ),
//	})
//	out := l.Remap(lookup.Returns{ParsedSchema: schema})
//
// Inputs are never mutated. A property a mapping expects but a field lacks
// is logged as a warning and the field passes through unchanged for that
// step; set [Config.DisableWarn] to silence it. Static configs can also be
// loaded from YAML or JSON with [ParseConfig].
//
// Sub-packages:
//   - transform – copy-on-write property primitives
//   - reactive – reactive references and the adapter used to unwrap them
//   - openapi – OpenAPI descriptions of field definitions before and after remapping
package lookup
