package lookup

import (
	"fmt"
	"maps"
	"slices"

	"go.uber.org/zap"

	"github.com/Gobd/lookup/reactive"
	"github.com/Gobd/lookup/transform"
)

// Config configures a [Lookup]. Every field is optional.
type Config struct {
	// ComponentProp names the property renamed to [ComponentKey].
	// Defaults to [ComponentKey] itself.
	ComponentProp Prop
	// MapComponents maps old component identifiers to new ones. It is
	// matched against the component value after ComponentProp is applied.
	MapComponents map[string]string
	// MapProps renames or deletes other properties.
	MapProps PropMapper
	// DisableWarn suppresses missing property warnings.
	DisableWarn bool
	// Logger receives missing property warnings. Defaults to a console
	// logger on stderr.
	Logger *zap.Logger
	// Refs detects reactive references in Returns.ParsedSchema.
	// Defaults to [reactive.Default].
	Refs reactive.Adapter
}

// Lookup rewrites form schemas according to its Config. It holds no state
// between calls and is safe for concurrent use as long as the callbacks in
// its Config are.
type Lookup struct {
	cfg  Config
	log  *zap.Logger
	refs reactive.Adapter
}

// New returns a Lookup for cfg. It never inspects a schema and never fails.
func New(cfg Config) *Lookup {
	l := &Lookup{cfg: cfg, log: cfg.Logger, refs: cfg.Refs}
	if l.log == nil {
		l.log = zlog
	}
	if l.refs == nil {
		l.refs = reactive.Default
	}
	return l
}

// Plugin returns the transformation function of a Lookup for cfg, in the
// shape host plugin chains expect.
func Plugin(cfg Config) func(Returns) Returns {
	return New(cfg).Remap
}

// Remap returns a copy of in with ParsedSchema rewritten. A reactive
// ParsedSchema yields a [reactive.Computed] that re-derives the schema
// whenever the source changes; anything else is rewritten eagerly. The
// rewritten schema has the same Go type as the input. Unsupported
// ParsedSchema shapes pass through unchanged.
func (l *Lookup) Remap(in Returns) Returns {
	out := Returns{Extra: maps.Clone(in.Extra)}

	src := in.ParsedSchema
	if !l.refs.IsRef(src) {
		out.ParsedSchema = l.remapValue(src)
		return out
	}

	var deps []reactive.Versioned
	if v, ok := src.(reactive.Versioned); ok {
		deps = append(deps, v)
	}
	out.ParsedSchema = reactive.NewComputed(func() any {
		return l.remapValue(l.refs.Unwrap(src))
	}, deps...)
	return out
}

// remapValue rewrites v keeping the caller's container and element types.
func (l *Lookup) remapValue(v any) any {
	switch s := v.(type) {
	case Schema:
		return l.Schema(s)
	case []Field:
		return []Field(l.Schema(s))
	case []map[string]any:
		fields := make(Schema, len(s))
		for i := range s {
			fields[i] = s[i]
		}
		out := make([]map[string]any, len(s))
		for i, f := range l.Schema(fields) {
			out[i] = f
		}
		return out
	case Rows:
		return l.Rows(s)
	case [][]Field:
		rows := make(Rows, len(s))
		for i := range s {
			rows[i] = s[i]
		}
		out := make([][]Field, len(s))
		for i, row := range l.Rows(rows) {
			out[i] = row
		}
		return out
	case []any:
		return l.remapAny(s)
	default:
		return v
	}
}

// remapAny rewrites the field maps of a decoded schema, such as the result of
// json.Unmarshal into any. Elements that are []any are treated as rows. Any
// other element is left untouched.
func (l *Lookup) remapAny(in []any) []any {
	var (
		fields Schema
		slots  []func(Field)
	)
	add := func(s []any, i int) {
		switch f := s[i].(type) {
		case map[string]any:
			fields = append(fields, f)
			slots = append(slots, func(f Field) { s[i] = map[string]any(f) })
		case Field:
			fields = append(fields, f)
			slots = append(slots, func(f Field) { s[i] = f })
		}
	}

	out := slices.Clone(in)
	for i, e := range out {
		row, ok := e.([]any)
		if !ok {
			add(out, i)
			continue
		}
		row = slices.Clone(row)
		out[i] = row
		for j := range row {
			add(row, j)
		}
	}

	for i, f := range l.Schema(fields) {
		slots[i](f)
	}
	return out
}

// Schema returns the rewritten schema. The input schema and its fields are
// never mutated and the output never shares a field map with the input.
func (l *Lookup) Schema(in Schema) Schema {
	out := make(Schema, len(in))
	for i, f := range in {
		out[i] = l.replaceComponentProp(f)
	}

	if !l.cfg.MapProps.empty() {
		out = l.mapProperties(out)
	}

	if len(l.cfg.MapComponents) > 0 {
		for i, f := range out {
			out[i] = l.mapComponent(f)
		}
	}
	return out
}

// Rows returns the rewritten rows. Static property passes span every field
// of every row, and the row layout is preserved.
func (l *Lookup) Rows(in Rows) Rows {
	var flat Schema
	for _, row := range in {
		flat = append(flat, row...)
	}
	flat = l.Schema(flat)

	out := make(Rows, len(in))
	for i, row := range in {
		out[i] = flat[:len(row):len(row)]
		flat = flat[len(row):]
	}
	return out
}

func (l *Lookup) replaceComponentProp(f Field) Field {
	prop, ok := l.cfg.ComponentProp.resolve(f)
	if !ok || prop == ComponentKey {
		return transform.Clone(f)
	}

	out, ok := transform.Rename(f, prop, ComponentKey)
	if !ok {
		l.warnMissing(prop, f)
		return transform.Clone(f)
	}
	return out
}

func (l *Lookup) mapProperties(schema Schema) Schema {
	if l.cfg.MapProps.fn != nil {
		for i, f := range schema {
			for _, rule := range l.cfg.MapProps.fn(f) {
				f = l.replaceProp(f, rule)
			}
			schema[i] = f
		}
		return schema
	}

	for _, rule := range l.cfg.MapProps.rules {
		for i, f := range schema {
			schema[i] = l.replaceProp(f, rule)
		}
	}
	return schema
}

func (l *Lookup) replaceProp(f Field, rule PropRule) Field {
	to := rule.To
	if rule.Func != nil {
		name, ok := rule.Func(f)
		if !ok || name == "" {
			return f
		}
		to = name
	}

	if !transform.Has(f, rule.Prop) {
		l.warnMissing(rule.Prop, f)
		return f
	}

	if rule.Func == nil && rule.Delete {
		out, _ := transform.Delete(f, rule.Prop)
		return out
	}

	out, _ := transform.Rename(f, rule.Prop, to)
	return out
}

func (l *Lookup) mapComponent(f Field) Field {
	component, ok := f[ComponentKey].(string)
	if !ok {
		return transform.Clone(f)
	}
	mapped, ok := l.cfg.MapComponents[component]
	if !ok || mapped == "" {
		return transform.Clone(f)
	}
	return transform.Set(f, ComponentKey, any(mapped))
}

func (l *Lookup) warnMissing(prop string, f Field) {
	if l.cfg.DisableWarn {
		return
	}
	l.log.Warn(fmt.Sprintf("LookupPlugin: prop %q not found", prop), zap.Any("field", map[string]any(f)))
}
