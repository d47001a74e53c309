package property

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/delaneyj/propertyparty/animation"
)

// ReactiveSystem holds the evaluation state for one tree of properties.
// Everything reachable from one system must be used from a single
// goroutine; create one system per UI tree or per test.
type ReactiveSystem struct {
	active *evalNode
	driver *animation.Driver
	tick   *Property[time.Duration]
}

func NewReactiveSystem() *ReactiveSystem {
	rs := &ReactiveSystem{
		driver: animation.NewDriver(),
	}
	rs.tick = New(rs, time.Duration(0))
	return rs
}

// Animations exposes the system's animation driver. Event loops poll
// HasActiveAnimations on it to decide whether to schedule another frame.
func (rs *ReactiveSystem) Animations() *animation.Driver { return rs.driver }

// UpdateAnimations advances the animation tick. Animated bindings depend
// on the tick, so moving it marks them dirty and the next read
// re-interpolates.
func (rs *ReactiveSystem) UpdateAnimations() {
	rs.driver.UpdateAnimations()
	rs.tick.Set(rs.driver.CurrentTick())
}

// currentTick reads the tick as a dependency of the active evaluator.
func (rs *ReactiveSystem) currentTick() time.Duration { return rs.tick.Get() }

// withEvaluator runs f with n as the active evaluator. Previously recorded
// sources are dropped first so the dependency set reflects exactly this
// evaluation, and the dirty flag is cleared before f so an evaluation that
// invalidates itself stays dirty for the next read.
func (rs *ReactiveSystem) withEvaluator(n *evalNode, f func()) {
	n.detachSources()
	prev := rs.active
	rs.active = n
	n.evaluating = true
	n.dirty = false
	defer func() {
		n.evaluating = false
		rs.active = prev
	}()
	f()
}

// evalNode is the graph vertex shared by binding records and trackers:
// a dirty flag, the dependency sets it registered with during its last
// evaluation, and the dependents to notify when it goes dirty.
type evalNode struct {
	dirty      bool
	evaluating bool
	sources    []*depSet
	notifies   *depSet
	onDirty    func(wasDirty bool)
}

func (n *evalNode) detachSources() {
	for _, s := range n.sources {
		s.subs.Remove(n)
	}
	n.sources = n.sources[:0]
}

// depSet is the set of evaluators that read a value since they last
// evaluated.
type depSet struct {
	subs mapset.Set[*evalNode]
}

func newDepSet() *depSet {
	return &depSet{subs: mapset.NewThreadUnsafeSet[*evalNode]()}
}

// register subscribes the active evaluator, if any.
func (d *depSet) register(rs *ReactiveSystem) {
	cur := rs.active
	if cur == nil {
		return
	}
	if d.subs.Add(cur) {
		cur.sources = append(cur.sources, d)
	}
}

// markDirty walks dependents transitively. Recursion stops at nodes that
// were already dirty, but the dirty hook still observes every marking so
// animated bindings and trackers can react.
func (d *depSet) markDirty() {
	for _, sub := range d.subs.ToSlice() {
		wasDirty := sub.dirty
		sub.dirty = true
		if sub.onDirty != nil {
			sub.onDirty(wasDirty)
		}
		if !wasDirty && sub.notifies != nil {
			sub.notifies.markDirty()
		}
	}
}
