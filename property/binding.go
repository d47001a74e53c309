package property

type bindingResult int

const (
	keepBinding bindingResult = iota
	// removeBinding drops the record after the evaluation that returned
	// it; the property keeps the last computed value as a plain value.
	removeBinding
)

// bindingCallable is the behavior behind a binding record. Plain closures
// embed noopBinding for everything except evaluate; two-way redirects and
// animation wrappers override the interception hooks.
type bindingCallable[T comparable] interface {
	evaluate(value *T) bindingResult
	// notifyDirty observes every dirty marking of the record, with the
	// previous dirty state. It runs while the write is still in flight
	// and must not read properties.
	notifyDirty(wasDirty bool)
	// interceptSet forwards a plain write; returning true keeps the
	// binding installed.
	interceptSet(value T) bool
	// interceptSetBinding forwards a binding installation; returning
	// true means rec found another home and the record stays.
	interceptSetBinding(rec *bindingRecord[T]) bool
	dispose()
}

type noopBinding[T comparable] struct{}

func (noopBinding[T]) notifyDirty(wasDirty bool)                      {}
func (noopBinding[T]) interceptSet(value T) bool                      { return false }
func (noopBinding[T]) interceptSetBinding(rec *bindingRecord[T]) bool { return false }
func (noopBinding[T]) dispose()                                       {}

// bindingRecord ties a callable to its graph node. Records start dirty so
// the first read evaluates.
type bindingRecord[T comparable] struct {
	node     evalNode
	callable bindingCallable[T]
	twoWay   bool
}

func newBindingRecord[T comparable](c bindingCallable[T], twoWay bool) *bindingRecord[T] {
	rec := &bindingRecord[T]{callable: c, twoWay: twoWay}
	rec.node.dirty = true
	rec.node.onDirty = c.notifyDirty
	return rec
}

type funcBinding[T comparable] struct {
	noopBinding[T]
	fn func() T
}

func (b *funcBinding[T]) evaluate(value *T) bindingResult {
	*value = b.fn()
	return keepBinding
}
