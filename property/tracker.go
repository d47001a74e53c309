package property

// Tracker records which properties a closure reads, and reports when any
// of them is invalidated afterwards. Render scopes evaluate through a
// tracker and re-render when it goes dirty.
type Tracker struct {
	rs   *ReactiveSystem
	node evalNode
	deps *depSet
}

// NewTracker returns a tracker that starts dirty, so the first
// EvaluateIfDirty always runs.
func NewTracker(rs *ReactiveSystem) *Tracker {
	t := &Tracker{rs: rs, deps: newDepSet()}
	t.node.dirty = true
	t.node.notifies = t.deps
	return t
}

// NewTrackerWithChangeHandler also invokes handler when a tracked property
// goes dirty after an evaluation. The handler fires once per invalidation
// wave, while the triggering write is still in flight; it must schedule
// work, not read properties.
func NewTrackerWithChangeHandler(rs *ReactiveSystem, handler func()) *Tracker {
	t := NewTracker(rs)
	t.node.onDirty = func(wasDirty bool) {
		if !wasDirty {
			handler()
		}
	}
	return t
}

// IsDirty reports whether any property read during the last evaluation has
// potentially changed.
func (t *Tracker) IsDirty() bool { return t.node.dirty }

// SetDirty forces the tracker dirty and notifies anything tracking it.
func (t *Tracker) SetDirty() {
	t.node.dirty = true
	t.deps.markDirty()
}

// Evaluate runs f and records its property reads. When called during
// another evaluation, the tracker registers itself with the outer
// evaluator, so nested trackers propagate dirtiness outward.
func (t *Tracker) Evaluate(f func()) {
	t.deps.register(t.rs)
	t.EvaluateAsDependencyRoot(f)
}

// EvaluateAsDependencyRoot runs f and records its property reads without
// registering the tracker with the outer evaluator; invalidations stay
// local to this tracker.
func (t *Tracker) EvaluateAsDependencyRoot(f func()) {
	t.rs.withEvaluator(&t.node, f)
}

// EvaluateIfDirty runs f only when the tracker is dirty, reporting whether
// it ran. The tracker registers with the outer evaluator either way.
func (t *Tracker) EvaluateIfDirty(f func()) bool {
	t.deps.register(t.rs)
	if !t.node.dirty {
		return false
	}
	t.EvaluateAsDependencyRoot(f)
	return true
}
