package property

// Property holds a value of type T, produced either by plain writes or by
// a lazy binding. Reads pull: a dirty binding re-evaluates on demand and
// re-records its dependencies, writes push only dirtiness through the
// graph.
type Property[T comparable] struct {
	rs      *ReactiveSystem
	value   T
	deps    *depSet
	binding *bindingRecord[T]
}

func New[T comparable](rs *ReactiveSystem, value T) *Property[T] {
	return &Property[T]{rs: rs, value: value, deps: newDepSet()}
}

// Get returns the current value, evaluating the binding first if it is
// dirty, and registers the property with the evaluator currently running.
func (p *Property[T]) Get() T {
	if b := p.binding; b != nil && p.rs.active == &b.node {
		// A binding reading its own property mid-evaluation sees the
		// previous value and records no dependency.
		return p.value
	}
	p.update()
	p.deps.register(p.rs)
	return p.value
}

// GetUntracked returns the current value without registering a
// dependency.
func (p *Property[T]) GetUntracked() T {
	p.update()
	return p.value
}

// getInternal reads the cached value without evaluating. Two-way links use
// it to seed the shared cell.
func (p *Property[T]) getInternal() T { return p.value }

// Set writes a plain value. A two-way binding forwards the write to its
// shared cell and survives; any other binding is removed. Dependents are
// marked dirty only when the value actually changes.
func (p *Property[T]) Set(value T) {
	if b := p.binding; b != nil && !b.callable.interceptSet(value) {
		p.dropBinding()
	}
	if p.value != value {
		p.value = value
		p.deps.markDirty()
	}
}

// SetBinding installs a computation as the property's value. The binding
// starts dirty and evaluates on the next read.
func (p *Property[T]) SetBinding(f func() T) {
	p.setBindingRecord(newBindingRecord[T](&funcBinding[T]{fn: f}, false))
}

// setBindingRecord installs rec, giving the previous binding a chance to
// intercept (a two-way redirect installs rec on the shared cell instead).
// The property's dependents go dirty either way.
func (p *Property[T]) setBindingRecord(rec *bindingRecord[T]) {
	if b := p.binding; b != nil {
		if b.callable.interceptSetBinding(rec) {
			return
		}
		p.dropBinding()
	}
	rec.node.notifies = p.deps
	p.binding = rec
	p.deps.markDirty()
}

// IsDirty reports whether a binding is installed and pending
// re-evaluation.
func (p *Property[T]) IsDirty() bool {
	return p.binding != nil && p.binding.node.dirty
}

func (p *Property[T]) update() {
	b := p.binding
	if b == nil || !b.node.dirty || b.node.evaluating {
		return
	}
	result := keepBinding
	p.rs.withEvaluator(&b.node, func() {
		result = b.callable.evaluate(&p.value)
	})
	if result == removeBinding {
		p.dropBinding()
	}
}

func (p *Property[T]) dropBinding() {
	b := p.binding
	if b == nil {
		return
	}
	p.binding = nil
	b.node.detachSources()
	b.callable.dispose()
}
