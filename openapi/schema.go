package openapi

import (
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/Gobd/lookup"
)

// ConfigSchema returns the schema of a lookup config document.
// See [lookup.ConfigSchema].
func ConfigSchema() *openapi3.Schema {
	return lookup.ConfigSchema()
}

// FieldSchema returns an open object schema describing a field definition:
// any property is allowed, and component, when present, is a string.
func FieldSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty(lookup.ComponentKey, openapi3.NewStringSchema()).
		WithAnyAdditionalProperties()
}
