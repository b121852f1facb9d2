package lookup

type (
	// Field is a single field definition of a form schema. Its shape is
	// open: any key may be present and every key passes through untouched
	// unless a mapping names it.
	Field map[string]any

	// Schema is the ordered sequence of field definitions describing a form.
	Schema []Field

	// Rows is a schema grouped into rows of fields.
	Rows []Schema

	// Returns is the container a host hands to the plugin. ParsedSchema holds
	// a [Schema], []Field, []map[string]any, [Rows], [][]Field, a decoded
	// []any of field maps or rows of them, or a reactive reference to one of
	// them. Extra carries the rest of the host's values through untouched.
	Returns struct {
		ParsedSchema any
		Extra        map[string]any
	}
)

// ComponentKey is the canonical property naming the component that renders a field.
const ComponentKey = "component"
