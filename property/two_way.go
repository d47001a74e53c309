package property

// twoWayBinding redirects a linked property to the shared cell: reads pull
// the cell's value, writes and new bindings are forwarded to the cell.
type twoWayBinding[T comparable] struct {
	common *Property[T]
}

func (b *twoWayBinding[T]) evaluate(value *T) bindingResult {
	*value = b.common.Get()
	return keepBinding
}

func (b *twoWayBinding[T]) notifyDirty(wasDirty bool) {}

func (b *twoWayBinding[T]) interceptSet(value T) bool {
	b.common.Set(value)
	return true
}

func (b *twoWayBinding[T]) interceptSetBinding(rec *bindingRecord[T]) bool {
	b.common.setBindingRecord(rec)
	return true
}

func (b *twoWayBinding[T]) dispose() {}

func newTwoWayRecord[T comparable](common *Property[T]) *bindingRecord[T] {
	return newBindingRecord[T](&twoWayBinding[T]{common: common}, true)
}

// commonCellOf returns the shared cell behind p when p is two-way linked
// to properties of the same type.
func commonCellOf[T comparable](p *Property[T]) *Property[T] {
	if b := p.binding; b != nil && b.twoWay {
		if tw, ok := b.callable.(*twoWayBinding[T]); ok {
			return tw.common
		}
	}
	return nil
}

// newCommonCell builds a shared cell seeded with value. A binding stolen
// from one of the linked properties keeps running on the cell, dirty state
// intact; its invalidations now reach every linked property.
func newCommonCell[T comparable](rs *ReactiveSystem, value T, stolen *bindingRecord[T]) *Property[T] {
	cell := New(rs, value)
	if stolen != nil {
		stolen.node.notifies = cell.deps
		cell.binding = stolen
	}
	return cell
}

// LinkTwoWay merges prop1 and prop2 so they behave as a single property.
// prop2's current value wins; a binding on prop2 moves to the shared cell
// and keeps driving both. Linking an already-linked property merges the
// chains onto one cell.
func LinkTwoWay[T comparable](prop1, prop2 *Property[T]) {
	value := prop2.getInternal()

	if common := commonCellOf(prop1); common != nil {
		prop2.setBindingRecord(newTwoWayRecord(common))
		prop2.Set(value)
		return
	}

	if common := commonCellOf(prop2); common != nil {
		prop1.setBindingRecord(newTwoWayRecord(common))
		return
	}

	stolen := prop2.binding
	prop2.binding = nil // moves to the cell below, not dropped
	common := newCommonCell(prop1.rs, value, stolen)
	prop1.setBindingRecord(newTwoWayRecord(common))
	prop2.setBindingRecord(newTwoWayRecord(common))
}

// twoWayBindingWithMap redirects a narrow property to a wide shared cell.
// Reads project the wide value with mapTo; writes merge the narrow value
// into the wide one with mapFrom; a new binding on the narrow side is
// wrapped in a bindingMapper and installed on the cell.
type twoWayBindingWithMap[T, T2 comparable] struct {
	common  *Property[T]
	mapTo   func(T) T2
	mapFrom func(*T, T2)
}

func (b *twoWayBindingWithMap[T, T2]) evaluate(value *T2) bindingResult {
	*value = b.mapTo(b.common.Get())
	return keepBinding
}

func (b *twoWayBindingWithMap[T, T2]) notifyDirty(wasDirty bool) {}

func (b *twoWayBindingWithMap[T, T2]) interceptSet(value T2) bool {
	wide := b.common.Get()
	b.mapFrom(&wide, value)
	b.common.Set(wide)
	return true
}

func (b *twoWayBindingWithMap[T, T2]) interceptSetBinding(rec *bindingRecord[T2]) bool {
	m := &bindingMapper[T, T2]{
		rs:        b.common.rs,
		rec:       rec,
		innerDeps: newDepSet(),
		mapTo:     b.mapTo,
		mapFrom:   b.mapFrom,
	}
	rec.node.notifies = m.innerDeps
	b.common.setBindingRecord(newBindingRecord[T](m, false))
	return true
}

func (b *twoWayBindingWithMap[T, T2]) dispose() {}

// bindingMapper runs a narrow-side binding as the wide cell's binding: the
// narrow computation starts from a projection of the wide value and its
// result is merged back in.
type bindingMapper[T, T2 comparable] struct {
	rs        *ReactiveSystem
	rec       *bindingRecord[T2]
	innerDeps *depSet
	mapTo     func(T) T2
	mapFrom   func(*T, T2)
}

func (m *bindingMapper[T, T2]) evaluate(value *T) bindingResult {
	// a dependency change inside the wrapped binding must re-run the
	// mapper, so the mapper subscribes to the wrapped record
	m.innerDeps.register(m.rs)
	narrow := m.mapTo(*value)
	m.rs.withEvaluator(&m.rec.node, func() {
		m.rec.callable.evaluate(&narrow)
	})
	m.mapFrom(value, narrow)
	return keepBinding
}

func (m *bindingMapper[T, T2]) notifyDirty(wasDirty bool) {}

func (m *bindingMapper[T, T2]) interceptSet(value T) bool {
	return m.rec.callable.interceptSet(m.mapTo(value))
}

func (m *bindingMapper[T, T2]) interceptSetBinding(rec *bindingRecord[T]) bool {
	return false
}

func (m *bindingMapper[T, T2]) dispose() {
	m.rec.node.detachSources()
	m.rec.callable.dispose()
}

// LinkTwoWayWithMap links two properties of different types, with prop1
// the wide, authoritative side. prop2 becomes a mapped view of prop1's
// cell: mapTo projects the wide value for prop2's reads, mapFrom merges a
// narrow write back into the wide value. A binding already installed on
// prop2 survives the link, wrapped onto the cell, and keeps driving both
// sides until a later write or binding supersedes it.
func LinkTwoWayWithMap[T, T2 comparable](
	prop1 *Property[T], prop2 *Property[T2],
	mapTo func(T) T2, mapFrom func(*T, T2),
) {
	common := commonCellOf(prop1)
	if common == nil {
		value := prop1.getInternal()
		stolen := prop1.binding
		prop1.binding = nil
		common = newCommonCell(prop1.rs, value, stolen)
		prop1.setBindingRecord(newTwoWayRecord(common))
	}

	old := prop2.binding
	prop2.binding = nil // re-installed below through the mapping redirect

	prop2.setBindingRecord(newBindingRecord[T2](&twoWayBindingWithMap[T, T2]{
		common:  common,
		mapTo:   mapTo,
		mapFrom: mapFrom,
	}, true))

	if old != nil {
		prop2.setBindingRecord(old)
	}
}
