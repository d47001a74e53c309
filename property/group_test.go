package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGroups(t *testing.T) {
	t.Run("values read through", func(t *testing.T) {
		rs := NewReactiveSystem()
		g := NewGroup3(rs, 1, "two", 3.0)

		a, b, c := g.Values()
		assert.Equal(t, 1, a)
		assert.Equal(t, "two", b)
		assert.Equal(t, 3.0, c)
	})

	t.Run("dirty when any member binding is pending", func(t *testing.T) {
		rs := NewReactiveSystem()
		g := NewGroup2(rs, 10, 20)
		assert.False(t, g.IsDirty())

		src := New(rs, 5)
		g.P2.SetBinding(func() int {
			return src.Get() * 2
		})
		assert.True(t, g.IsDirty())

		a, b := g.Values()
		assert.Equal(t, 10, a)
		assert.Equal(t, 10, b)
		assert.False(t, g.IsDirty())

		src.Set(6)
		assert.True(t, g.IsDirty())
	})

	t.Run("group values track inside bindings", func(t *testing.T) {
		rs := NewReactiveSystem()
		size := NewGroup2(rs, 4, 5)

		area := New(rs, 0)
		area.SetBinding(func() int {
			w, h := size.Values()
			return w * h
		})
		assert.Equal(t, 20, area.Get())

		size.P1.Set(10)
		assert.Equal(t, 50, area.Get())
	})
}
