package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkTwoWay(t *testing.T) {
	t.Run("plain link", func(t *testing.T) {
		rs := NewReactiveSystem()
		p1 := New(rs, 42)
		p2 := New(rs, 88)

		depends := New(rs, 0)
		depends.SetBinding(func() int { return p1.Get() + 8 })
		assert.Equal(t, 42+8, depends.Get())

		LinkTwoWay(p1, p2)
		assert.Equal(t, 88, p1.Get())
		assert.Equal(t, 88, p2.Get())
		assert.Equal(t, 88+8, depends.Get())

		p2.Set(5)
		assert.Equal(t, 5, p1.Get())
		assert.Equal(t, 5, p2.Get())
		assert.Equal(t, 5+8, depends.Get())

		p1.Set(22)
		assert.Equal(t, 22, p1.Get())
		assert.Equal(t, 22, p2.Get())
		assert.Equal(t, 22+8, depends.Get())
	})

	t.Run("stolen binding stays live", func(t *testing.T) {
		rs := NewReactiveSystem()
		p1 := New(rs, 42)
		p2 := New(rs, 88)
		global := New(rs, 23)
		p2.SetBinding(func() int { return global.Get() + 9 })

		depends := New(rs, 0)
		depends.SetBinding(func() int { return p1.Get() + 8 })

		LinkTwoWay(p1, p2)
		assert.Equal(t, 23+9, p1.Get())
		assert.Equal(t, 23+9, p2.Get())
		assert.Equal(t, 23+9+8, depends.Get())

		global.Set(55)
		assert.Equal(t, 55+9, p1.Get())
		assert.Equal(t, 55+9, p2.Get())
		assert.Equal(t, 55+9+8, depends.Get())
	})

	t.Run("link from inside a binding", func(t *testing.T) {
		rs := NewReactiveSystem()
		xx := New(rs, 0)
		p1 := New(rs, 42)
		p2 := New(rs, 88)
		global := New(rs, 23)

		done := false
		xx.SetBinding(func() int {
			if !done {
				done = true
				LinkTwoWay(p1, p2)
				p1.SetBinding(func() int { return xx.Get() + 9 })
			}
			return global.Get() + 2
		})

		assert.Equal(t, 23+2, xx.Get())
		assert.Equal(t, 23+2+9, p1.Get())
		assert.Equal(t, 23+2+9, p2.Get())

		global.Set(55)
		assert.Equal(t, 55+2+9, p1.Get())
		assert.Equal(t, 55+2+9, p2.Get())
		assert.Equal(t, 55+2, xx.Get())
	})

	t.Run("link into an already linked pair", func(t *testing.T) {
		rs := NewReactiveSystem()
		p11 := New(rs, 2)
		p12 := New(rs, 4)
		LinkTwoWay(p11, p12)

		assert.Equal(t, 4, p11.Get())
		assert.Equal(t, 4, p12.Get())

		p2 := New(rs, 3)
		LinkTwoWay(p11, p2)
		assert.Equal(t, 3, p11.Get())
		assert.Equal(t, 3, p12.Get())
		assert.Equal(t, 3, p2.Get())

		p11.Set(6)
		assert.Equal(t, 6, p11.Get())
		assert.Equal(t, 6, p12.Get())
		assert.Equal(t, 6, p2.Get())

		p12.Set(8)
		assert.Equal(t, 8, p11.Get())
		assert.Equal(t, 8, p12.Get())
		assert.Equal(t, 8, p2.Get())

		p2.Set(7)
		assert.Equal(t, 7, p11.Get())
		assert.Equal(t, 7, p12.Get())
		assert.Equal(t, 7, p2.Get())
	})

	t.Run("link onto an already linked pair", func(t *testing.T) {
		rs := NewReactiveSystem()
		p1 := New(rs, 2)
		p21 := New(rs, 3)
		p22 := New(rs, 5)
		LinkTwoWay(p21, p22)

		assert.Equal(t, 5, p21.Get())
		assert.Equal(t, 5, p22.Get())

		LinkTwoWay(p1, p22)
		assert.Equal(t, 5, p1.Get())
		assert.Equal(t, 5, p21.Get())
		assert.Equal(t, 5, p22.Get())

		p1.Set(6)
		assert.Equal(t, 6, p1.Get())
		assert.Equal(t, 6, p21.Get())
		assert.Equal(t, 6, p22.Get())

		p21.Set(7)
		assert.Equal(t, 7, p1.Get())
		assert.Equal(t, 7, p21.Get())
		assert.Equal(t, 7, p22.Get())

		p22.Set(9)
		assert.Equal(t, 9, p1.Get())
		assert.Equal(t, 9, p21.Get())
		assert.Equal(t, 9, p22.Get())
	})

	t.Run("merge two linked pairs", func(t *testing.T) {
		rs := NewReactiveSystem()
		p11 := New(rs, 2)
		p12 := New(rs, 4)
		LinkTwoWay(p11, p12)
		assert.Equal(t, 4, p11.Get())
		assert.Equal(t, 4, p12.Get())

		p21 := New(rs, 3)
		p22 := New(rs, 5)
		LinkTwoWay(p21, p22)
		assert.Equal(t, 5, p21.Get())
		assert.Equal(t, 5, p22.Get())

		LinkTwoWay(p11, p22)

		all := []*Property[int]{p11, p12, p21, p22}
		for _, p := range all {
			assert.Equal(t, 5, p.Get())
		}

		for i, p := range all {
			v := 6 + i
			p.Set(v)
			for _, q := range all {
				assert.Equal(t, v, q.Get())
			}
		}
	})
}

func TestLinkTwoWayWithMap(t *testing.T) {
	type pair struct {
		foo int
		bar string
	}

	rs := NewReactiveSystem()
	p1 := New(rs, pair{foo: 42, bar: "hello"})
	p2 := New(rs, 88)
	p3 := New(rs, "xyz")

	LinkTwoWayWithMap(p1, p2,
		func(s pair) int { return s.foo },
		func(s *pair, foo int) { s.foo = foo },
	)
	assert.Equal(t, pair{foo: 42, bar: "hello"}, p1.Get())
	assert.Equal(t, 42, p2.Get())

	p2.Set(81)
	assert.Equal(t, pair{foo: 81, bar: "hello"}, p1.Get())
	assert.Equal(t, 81, p2.Get())

	p1.Set(pair{foo: 78, bar: "world"})
	assert.Equal(t, pair{foo: 78, bar: "world"}, p1.Get())
	assert.Equal(t, 78, p2.Get())

	LinkTwoWayWithMap(p1, p3,
		func(s pair) string { return s.bar },
		func(s *pair, bar string) { s.bar = bar },
	)
	assert.Equal(t, pair{foo: 78, bar: "world"}, p1.Get())
	assert.Equal(t, 78, p2.Get())
	assert.Equal(t, "world", p3.Get())

	p3.Set("abc")
	assert.Equal(t, pair{foo: 78, bar: "abc"}, p1.Get())
	assert.Equal(t, 78, p2.Get())
	assert.Equal(t, "abc", p3.Get())

	// a binding on the narrow side drives the whole link
	p4 := New(rs, 123)
	p2.SetBinding(func() int { return p4.Get() + 1 })

	assert.Equal(t, pair{foo: 124, bar: "abc"}, p1.Get())
	assert.Equal(t, 124, p2.Get())
	assert.Equal(t, "abc", p3.Get())

	p4.Set(456)
	assert.Equal(t, pair{foo: 457, bar: "abc"}, p1.Get())
	assert.Equal(t, 457, p2.Get())
	assert.Equal(t, "abc", p3.Get())

	// a later write on any side wins over the narrow binding
	p3.Set("def")
	assert.Equal(t, pair{foo: 457, bar: "def"}, p1.Get())
	assert.Equal(t, 457, p2.Get())
	assert.Equal(t, "def", p3.Get())

	p4.Set(789)
	assert.Equal(t, pair{foo: 457, bar: "def"}, p1.Get())
	assert.Equal(t, 457, p2.Get())
	assert.Equal(t, "def", p3.Get())
}

func TestLinkTwoWayWithMapPreservesBinding(t *testing.T) {
	type size struct {
		w, h int
	}

	rs := NewReactiveSystem()
	wide := New(rs, size{w: 10, h: 20})
	narrow := New(rs, 0)
	src := New(rs, 7)
	narrow.SetBinding(func() int { return src.Get() * 10 })

	LinkTwoWayWithMap(wide, narrow,
		func(s size) int { return s.w },
		func(s *size, w int) { s.w = w },
	)

	// the pre-link binding got wrapped onto the shared cell
	assert.Equal(t, size{w: 70, h: 20}, wide.Get())
	assert.Equal(t, 70, narrow.Get())

	src.Set(9)
	assert.Equal(t, size{w: 90, h: 20}, wide.Get())
	assert.Equal(t, 90, narrow.Get())
}
