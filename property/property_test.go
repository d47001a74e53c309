package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProperty(t *testing.T) {
	t.Run("plain values", func(t *testing.T) {
		rs := NewReactiveSystem()
		p := New(rs, 42)
		assert.Equal(t, 42, p.Get())
		p.Set(7)
		assert.Equal(t, 7, p.Get())
	})

	/*
	   width  height
	       \ /
	      area
	*/
	t.Run("simple binding", func(t *testing.T) {
		rs := NewReactiveSystem()
		width := New(rs, 0)
		height := New(rs, 0)
		area := New(rs, 0)
		area.SetBinding(func() int {
			return width.Get() * height.Get()
		})

		width.Set(4)
		height.Set(8)
		assert.Equal(t, 4, width.Get())
		assert.Equal(t, 8, height.Get())
		assert.Equal(t, 4*8, area.Get())

		width.SetBinding(func() int {
			return height.Get() * 2
		})
		assert.Equal(t, 8*2, width.Get())
		assert.Equal(t, 8, height.Get())
		assert.Equal(t, 8*8*2, area.Get())
	})

	t.Run("pull laziness", func(t *testing.T) {
		rs := NewReactiveSystem()
		a := New(rs, 7)
		b := New(rs, 1)
		callCount := 0

		c := New(rs, 0)
		c.SetBinding(func() int {
			callCount++
			return a.Get() * b.Get()
		})

		// nothing runs until the first read
		assert.Equal(t, 0, callCount)
		assert.Equal(t, 7, c.Get())
		assert.Equal(t, 1, callCount)

		// clean reads stay free
		c.Get()
		c.Get()
		assert.Equal(t, 1, callCount)

		// two writes, one re-evaluation on the next read
		a.Set(2)
		b.Set(3)
		assert.Equal(t, 1, callCount)
		assert.Equal(t, 6, c.Get())
		assert.Equal(t, 2, callCount)
	})

	/*
	   a  b
	   | /
	   c
	   |
	   d
	*/
	t.Run("dependent bindings", func(t *testing.T) {
		rs := NewReactiveSystem()
		a := New(rs, 7)
		b := New(rs, 1)

		callCount1 := 0
		c := New(rs, 0)
		c.SetBinding(func() int {
			callCount1++
			return a.Get() * b.Get()
		})

		callCount2 := 0
		d := New(rs, 0)
		d.SetBinding(func() int {
			callCount2++
			return c.Get() + 1
		})

		assert.Equal(t, 8, d.Get())
		assert.Equal(t, 1, callCount1)
		assert.Equal(t, 1, callCount2)
		a.Set(3)
		assert.Equal(t, 4, d.Get())
		assert.Equal(t, 2, callCount1)
		assert.Equal(t, 2, callCount2)
	})

	t.Run("equality check", func(t *testing.T) {
		rs := NewReactiveSystem()
		callCount := 0
		a := New(rs, 7)
		c := New(rs, 0)
		c.SetBinding(func() int {
			callCount++
			return a.Get() + 10
		})

		c.Get()
		c.Get()
		assert.Equal(t, 1, callCount)
		a.Set(7)
		c.Get()
		assert.Equal(t, 1, callCount) // unchanged, equality check
	})

	/*
	   cond
	    |  \
	    c   a   b
	     \  |  /
	      pick   (dynamically depends on a or b)
	*/
	t.Run("dynamic dependencies", func(t *testing.T) {
		rs := NewReactiveSystem()
		cond := New(rs, true)
		a := New(rs, 1)
		b := New(rs, 100)

		callCount := 0
		pick := New(rs, 0)
		pick.SetBinding(func() int {
			callCount++
			if cond.Get() {
				return a.Get()
			}
			return b.Get()
		})

		assert.Equal(t, 1, pick.Get())
		assert.Equal(t, 1, callCount)

		// the untaken branch is not a dependency
		b.Set(200)
		pick.Get()
		assert.Equal(t, 1, callCount)

		cond.Set(false)
		assert.Equal(t, 200, pick.Get())
		assert.Equal(t, 2, callCount)

		// after the switch the pruned branch is inert the other way round
		a.Set(2)
		pick.Get()
		assert.Equal(t, 2, callCount)
		b.Set(300)
		assert.Equal(t, 300, pick.Get())
		assert.Equal(t, 3, callCount)
	})

	t.Run("untracked reads", func(t *testing.T) {
		rs := NewReactiveSystem()
		a := New(rs, 1)
		b := New(rs, 10)

		callCount := 0
		sum := New(rs, 0)
		sum.SetBinding(func() int {
			callCount++
			return a.GetUntracked() + b.Get()
		})

		assert.Equal(t, 11, sum.Get())

		a.Set(2)
		assert.Equal(t, 11, sum.Get()) // a is not tracked
		assert.Equal(t, 1, callCount)

		b.Set(20)
		assert.Equal(t, 22, sum.Get()) // fresh a picked up alongside b
		assert.Equal(t, 2, callCount)
	})

	t.Run("dirty flag", func(t *testing.T) {
		rs := NewReactiveSystem()
		a := New(rs, 1)
		c := New(rs, 0)
		assert.False(t, c.IsDirty())

		c.SetBinding(func() int { return a.Get() })
		assert.True(t, c.IsDirty())

		c.Get()
		assert.False(t, c.IsDirty())

		a.Set(2)
		assert.True(t, c.IsDirty())
	})

	t.Run("self read during evaluation", func(t *testing.T) {
		rs := NewReactiveSystem()
		p := New(rs, 10)
		p.SetBinding(func() int {
			return p.Get() + 1
		})

		// the self read sees the cached value and records no dependency,
		// so the binding settles instead of spinning
		assert.Equal(t, 11, p.Get())
		assert.Equal(t, 11, p.Get())
	})

	t.Run("set replaces binding", func(t *testing.T) {
		rs := NewReactiveSystem()
		a := New(rs, 1)
		c := New(rs, 0)
		c.SetBinding(func() int { return a.Get() })
		assert.Equal(t, 1, c.Get())

		c.Set(99)
		assert.Equal(t, 99, c.Get())

		a.Set(2)
		assert.Equal(t, 99, c.Get()) // binding gone, plain value stays
	})
}
