package lookup

import (
	"encoding/json"

	"github.com/getkin/kin-openapi/openapi3"
)

// ConfigSchema returns the OpenAPI schema of a lookup config document, as
// accepted by [ParseConfig]. Values of mapProps are either a new property
// name or false, which deletes the property.
func ConfigSchema() *openapi3.Schema {
	nonEmpty := openapi3.NewStringSchema().WithMinLength(1)
	replacement := openapi3.NewOneOfSchema(
		openapi3.NewStringSchema().WithMinLength(1),
		openapi3.NewBoolSchema().WithEnum(false),
	)

	schema := openapi3.NewObjectSchema().
		WithProperty("componentProp", nonEmpty).
		WithProperty("mapComponents", openapi3.NewObjectSchema().WithAdditionalProperties(nonEmpty)).
		WithProperty("mapProps", openapi3.NewObjectSchema().WithAdditionalProperties(replacement)).
		WithProperty("disableWarn", openapi3.NewBoolSchema()).
		WithoutAdditionalProperties()
	schema.Description = "Lookup plugin configuration."
	return schema
}

// validateDocument checks a decoded config document against ConfigSchema.
// The document is round-tripped through JSON first so that it only holds
// the value types the schema validator understands.
func validateDocument(doc any) error {
	if doc == nil {
		doc = map[string]any{}
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	return ConfigSchema().VisitJSON(v)
}
