package transform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gobd/lookup/transform"
)

type record map[string]any

func TestRename(t *testing.T) {
	tests := []struct {
		name   string
		in     record
		from   string
		to     string
		want   record
		wantOK bool
	}{
		{
			name:   "basic",
			in:     record{"label": "X", "required": true},
			from:   "label",
			to:     "tag",
			want:   record{"tag": "X", "required": true},
			wantOK: true,
		},
		{
			name:   "missing",
			in:     record{"model": "m"},
			from:   "foo",
			to:     "bar",
			want:   record{"model": "m"},
			wantOK: false,
		},
		{
			name:   "overwrites existing target",
			in:     record{"a": 1, "b": 2},
			from:   "a",
			to:     "b",
			want:   record{"b": 1},
			wantOK: true,
		},
		{
			name:   "same name",
			in:     record{"component": "FormText"},
			from:   "component",
			to:     "component",
			want:   record{"component": "FormText"},
			wantOK: true,
		},
		{
			name:   "nil value still present",
			in:     record{"a": nil},
			from:   "a",
			to:     "b",
			want:   record{"b": nil},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			orig := transform.Clone(tt.in)
			got, ok := transform.Rename(tt.in, tt.from, tt.to)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, orig, tt.in, "input must not be mutated")
		})
	}
}

func TestDelete(t *testing.T) {
	in := record{"label": "X", "required": true}

	got, ok := transform.Delete(in, "label")
	assert.True(t, ok)
	assert.Equal(t, record{"required": true}, got)
	assert.Contains(t, in, "label")

	again, ok := transform.Delete(got, "label")
	assert.False(t, ok)
	assert.Equal(t, got, again)
}

func TestCloneAndSet(t *testing.T) {
	var nilRecord record
	assert.NotNil(t, transform.Clone(nilRecord))

	in := record{"a": 1}
	out := transform.Set(in, "b", 2)
	assert.Equal(t, record{"a": 1, "b": 2}, out)
	assert.Equal(t, record{"a": 1}, in)
	assert.True(t, transform.Has(out, "b"))
	assert.False(t, transform.Has(in, "b"))
}

func TestMulti(t *testing.T) {
	in := record{"label": "X"}
	out := transform.Multi(in,
		func(r record) record { r, _ = transform.Rename(r, "label", "tag"); return r },
		func(r record) record { return transform.Set(r, "visible", true) },
	)
	assert.Equal(t, record{"tag": "X", "visible": true}, out)
	assert.Equal(t, record{"label": "X"}, in)
}
