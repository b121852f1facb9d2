package reactive_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Gobd/lookup/reactive"
)

func TestSignal(t *testing.T) {
	s := reactive.NewSignal("a")
	v1 := s.Version()
	assert.Equal(t, "a", s.Value())

	s.Set("b")
	assert.Equal(t, "b", s.Value())
	assert.Greater(t, s.Version(), v1)
}

func TestComputedCachesUntilDependencyChanges(t *testing.T) {
	s := reactive.NewSignal(2)
	calls := 0
	c := reactive.NewComputed(func() int {
		calls++
		return s.Value() * 10
	}, s)

	assert.Equal(t, 20, c.Value())
	assert.Equal(t, 20, c.Value())
	assert.Equal(t, 1, calls)

	s.Set(3)
	assert.Equal(t, 30, c.Value())
	assert.Equal(t, 2, calls)
}

func TestComputedWithoutDependencies(t *testing.T) {
	calls := 0
	c := reactive.NewComputed(func() int {
		calls++
		return calls
	})

	assert.Equal(t, 1, c.Value())
	assert.Equal(t, 2, c.Value())
}

func TestComputedWithoutDependenciesIsAlwaysStale(t *testing.T) {
	cur := 1
	src := reactive.NewComputed(func() int { return cur })
	v1 := src.Version()
	assert.Greater(t, src.Version(), v1)

	calls := 0
	dependent := reactive.NewComputed(func() int {
		calls++
		return src.Value() * 10
	}, src)

	assert.Equal(t, 10, dependent.Value())
	cur = 2
	assert.Equal(t, 20, dependent.Value())
	assert.Equal(t, 2, calls)
}

func TestComputedChain(t *testing.T) {
	s := reactive.NewSignal(1)
	double := reactive.NewComputed(func() int { return s.Value() * 2 }, s)
	plusOne := reactive.NewComputed(func() int { return double.Value() + 1 }, double)

	assert.Equal(t, 3, plusOne.Value())
	s.Set(5)
	assert.Equal(t, 11, plusOne.Value())
}

func TestAdapters(t *testing.T) {
	s := reactive.NewSignal([]string{"x"})
	c := reactive.NewComputed(func() int { return 1 })

	tests := []struct {
		name    string
		adapter reactive.Adapter
		in      any
		isRef   bool
		want    any
	}{
		{"default signal", reactive.Default, s, true, []string{"x"}},
		{"default computed", reactive.Default, c, true, 1},
		{"default plain", reactive.Default, "plain", false, "plain"},
		{"identity signal", reactive.Identity, s, false, s},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isRef, tt.adapter.IsRef(tt.in))
			assert.Equal(t, tt.want, tt.adapter.Unwrap(tt.in))
		})
	}
}
