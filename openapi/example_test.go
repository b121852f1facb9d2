package openapi_test

import (
	"fmt"
	"slices"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/Gobd/lookup"
	"github.com/Gobd/lookup/openapi"
)

func ExampleRemapSchema() {
	in := openapi3.NewObjectSchema().
		WithProperty("type", openapi3.NewStringSchema()).
		WithProperty("label", openapi3.NewStringSchema()).
		WithProperty("model", openapi3.NewStringSchema())

	out := openapi.RemapSchema(lookup.Config{
		ComponentProp: lookup.Named("type"),
		MapProps:      lookup.MapProps(lookup.Rename("label", "tag")),
	}, in)

	keys := make([]string, 0, len(out.Properties))
	for k := range out.Properties {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	fmt.Println(strings.Join(keys, ", "))
	// Output: component, model, tag
}

func ExampleDocBase() {
	doc := openapi.DocBase("Signup form", "1.0.0", lookup.Config{}, nil)
	fmt.Println(doc.Info.Title)
	fmt.Println(doc.OpenAPI)
	// Output:
	// Signup form
	// 3.0.3
}
