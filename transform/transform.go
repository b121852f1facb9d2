package transform

import "maps"

// Clone returns a shallow copy of m. A nil map clones to an empty, non-nil map.
func Clone[M ~map[string]V, V any](m M) M {
	if m == nil {
		return M{}
	}
	return maps.Clone(m)
}

// Has reports whether key is present in m, regardless of its value.
func Has[M ~map[string]V, V any](m M, key string) bool {
	_, ok := m[key]
	return ok
}

// Rename moves the value stored under from to the key to.
// If from is absent, m is returned as is and ok is false.
// An existing value under to is overwritten.
func Rename[M ~map[string]V, V any](m M, from, to string) (out M, ok bool) {
	v, ok := m[from]
	if !ok {
		return m, false
	}
	out = Clone(m)
	delete(out, from)
	out[to] = v
	return out, true
}

// Delete removes key from a copy of m.
// If key is absent, m is returned as is and ok is false.
func Delete[M ~map[string]V, V any](m M, key string) (out M, ok bool) {
	if !Has(m, key) {
		return m, false
	}
	out = Clone(m)
	delete(out, key)
	return out, true
}

// Set returns a copy of m with key set to v.
func Set[M ~map[string]V, V any](m M, key string, v V) M {
	out := Clone(m)
	out[key] = v
	return out
}

// Multi runs all given functions on m sequentially, each one receiving the
// result of the previous.
func Multi[M ~map[string]V, V any](m M, fns ...func(M) M) M {
	for _, f := range fns {
		m = f(m)
	}
	return m
}
