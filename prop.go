package lookup

type (
	// PropFunc computes a property name for a field. Returning false, or an
	// empty name, skips the field.
	PropFunc func(Field) (string, bool)

	// Prop names the property holding a field's component type, either
	// statically or per field. The zero value names [ComponentKey].
	Prop struct {
		name string
		fn   PropFunc
	}

	// PropRule is one (property, replacement) pair of a property mapping.
	// Build it with [Rename], [RenameFunc] or [Delete].
	PropRule struct {
		// Prop is the property being replaced.
		Prop string
		// To is the new property name of a static rename.
		To string
		// Func computes the new property name per field. When set, To and
		// Delete are ignored.
		Func PropFunc
		// Delete drops Prop instead of renaming it.
		Delete bool
	}

	// PropMapper is either an ordered static list of rules applied across the
	// whole schema, or a function computing rules per field.
	// The zero value maps nothing.
	PropMapper struct {
		rules []PropRule
		fn    func(Field) []PropRule
	}
)

// Named returns a Prop that always reads the property name.
func Named(name string) Prop {
	return Prop{name: name}
}

// PropBy returns a Prop computed per field by fn.
func PropBy(fn PropFunc) Prop {
	return Prop{fn: fn}
}

// Literal returns the static property name, if p is not computed.
func (p Prop) Literal() (string, bool) {
	if p.fn != nil {
		return "", false
	}
	if p.name == "" {
		return ComponentKey, true
	}
	return p.name, true
}

func (p Prop) resolve(f Field) (string, bool) {
	if p.fn == nil {
		return p.Literal()
	}
	name, ok := p.fn(f)
	return name, ok && name != ""
}

// Rename returns a rule moving prop to the property named to.
func Rename(prop, to string) PropRule {
	return PropRule{Prop: prop, To: to}
}

// RenameFunc returns a rule moving prop to the name computed by fn.
func RenameFunc(prop string, fn PropFunc) PropRule {
	return PropRule{Prop: prop, Func: fn}
}

// Delete returns a rule dropping prop.
func Delete(prop string) PropRule {
	return PropRule{Prop: prop, Delete: true}
}

// MapProps returns a static mapper. Rules run in the given order, each
// across the whole schema before the next one starts.
func MapProps(rules ...PropRule) PropMapper {
	return PropMapper{rules: rules}
}

// MapPropsFunc returns a mapper computing the rules for each field.
func MapPropsFunc(fn func(Field) []PropRule) PropMapper {
	return PropMapper{fn: fn}
}

// Rules returns the static rules. It is nil for function mappers.
func (m PropMapper) Rules() []PropRule {
	return m.rules
}

// IsFunc reports whether the rules are computed per field.
func (m PropMapper) IsFunc() bool {
	return m.fn != nil
}

func (m PropMapper) empty() bool {
	return m.fn == nil && len(m.rules) == 0
}
