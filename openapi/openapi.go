package openapi

import (
	"maps"
	"slices"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/Gobd/lookup"
)

// Component schema names used by [DocBase].
const (
	FieldName         = "FieldDefinition"
	RemappedFieldName = "RemappedFieldDefinition"
	ConfigName        = "LookupConfig"
)

// RemapSchema returns a copy of in with its properties renamed, deleted and
// re-enumerated the way cfg rewrites field definitions. Only the static
// parts of cfg apply: a computed ComponentProp, MapPropsFunc mappers and
// RenameFunc rules depend on the field and are skipped. in is not mutated.
func RemapSchema(cfg lookup.Config, in *openapi3.Schema) *openapi3.Schema {
	out := *in
	out.Properties = maps.Clone(in.Properties)
	out.Required = slices.Clone(in.Required)

	if prop, ok := cfg.ComponentProp.Literal(); ok && prop != lookup.ComponentKey {
		renameProperty(&out, prop, lookup.ComponentKey)
	}

	if !cfg.MapProps.IsFunc() {
		for _, r := range cfg.MapProps.Rules() {
			switch {
			case r.Func != nil:
				// needs a field to resolve
			case r.Delete:
				deleteProperty(&out, r.Prop)
			default:
				renameProperty(&out, r.Prop, r.To)
			}
		}
	}

	if len(cfg.MapComponents) > 0 {
		mapComponentEnum(&out, cfg.MapComponents)
	}
	return &out
}

func renameProperty(s *openapi3.Schema, from, to string) {
	ref, ok := s.Properties[from]
	if !ok {
		return
	}
	delete(s.Properties, from)
	s.Properties[to] = ref

	wasRequired := slices.Contains(s.Required, from)
	s.Required = slices.DeleteFunc(s.Required, func(name string) bool {
		return name == from || (wasRequired && name == to)
	})
	if wasRequired {
		s.Required = append(s.Required, to)
	}
}

func deleteProperty(s *openapi3.Schema, name string) {
	if _, ok := s.Properties[name]; !ok {
		return
	}
	delete(s.Properties, name)
	s.Required = slices.DeleteFunc(s.Required, func(n string) bool { return n == name })
}

func mapComponentEnum(s *openapi3.Schema, mapping map[string]string) {
	ref, ok := s.Properties[lookup.ComponentKey]
	if !ok || ref == nil || ref.Value == nil || len(ref.Value.Enum) == 0 {
		return
	}

	value := *ref.Value
	value.Enum = make([]any, 0, len(ref.Value.Enum))
	for _, e := range ref.Value.Enum {
		if name, ok := e.(string); ok && mapping[name] != "" {
			e = mapping[name]
		}
		if !slices.Contains(value.Enum, e) {
			value.Enum = append(value.Enum, e)
		}
	}
	s.Properties[lookup.ComponentKey] = value.NewRef()
}

// DocBase returns an OpenAPI 3.0.3 document whose components hold the
// input field schema, its remapped counterpart under cfg, and the lookup
// config document schema. A nil in uses [FieldSchema].
func DocBase(title, version string, cfg lookup.Config, in *openapi3.Schema) *openapi3.T {
	if in == nil {
		in = FieldSchema()
	}
	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   title,
			Version: version,
		},
		Paths:      &openapi3.Paths{},
		Components: &openapi3.Components{
			Schemas: openapi3.Schemas{
				FieldName:         in.NewRef(),
				RemappedFieldName: RemapSchema(cfg, in).NewRef(),
				ConfigName:        ConfigSchema().NewRef(),
			},
		},
	}
}
