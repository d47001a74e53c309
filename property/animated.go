package property

import (
	"time"

	"github.com/delaneyj/propertyparty/animation"
)

// valueAnimation interpolates between two values against the system's
// animation tick.
type valueAnimation[T comparable] struct {
	from, to  T
	anim      animation.Animation
	lerp      animation.LerpFunc[T]
	startTick time.Duration
}

// compute reads the tick as a tracked dependency, so a running animation
// goes dirty on every UpdateAnimations and the next read re-interpolates.
func (a *valueAnimation[T]) compute(rs *ReactiveSystem) (T, bool) {
	t, finished := a.anim.Progress(rs.currentTick() - a.startTick)
	if finished {
		return a.to, true
	}
	if a.lerp == nil {
		return a.to, false
	}
	return a.lerp(a.from, a.to, t), false
}

// valueAnimationBinding is the transient binding behind SetAnimatedValue.
// It removes itself once the animation finishes, leaving the target as a
// plain value.
type valueAnimationBinding[T comparable] struct {
	noopBinding[T]
	rs   *ReactiveSystem
	data valueAnimation[T]
}

func (b *valueAnimationBinding[T]) evaluate(value *T) bindingResult {
	v, finished := b.data.compute(b.rs)
	*value = v
	if finished {
		return removeBinding
	}
	b.rs.driver.SetHasActiveAnimations()
	return keepBinding
}

// SetAnimatedValue animates p from its current value to target. A later
// plain Set removes the animation and writes directly.
func SetAnimatedValue[T comparable](p *Property[T], target T, anim animation.Animation, lerp animation.LerpFunc[T]) {
	b := &valueAnimationBinding[T]{
		rs: p.rs,
		data: valueAnimation[T]{
			from:      p.getInternal(),
			to:        target,
			anim:      anim,
			lerp:      lerp,
			startTick: p.rs.driver.CurrentTick(),
		},
	}
	p.setBindingRecord(newBindingRecord[T](b, false))
}

type animatedBindingState int

const (
	animStateNotAnimating animatedBindingState = iota
	animStateShouldStart
	animStateAnimating
)

// animatedBinding wraps a value binding so that dependency changes
// animate instead of jumping. The dirty hook arms the animation: when it
// fires because the wrapped binding itself was invalidated (a real
// dependency change, as opposed to the tick moving), the next read
// captures the current value and the fresh binding result and
// interpolates between them.
type animatedBinding[T comparable] struct {
	noopBinding[T]
	rs        *ReactiveSystem
	rec       *bindingRecord[T]
	innerDeps *depSet
	state     animatedBindingState
	data      valueAnimation[T]
	// details recomputes the animation parameters and start tick per
	// transition; nil keeps the installed parameters.
	details func() (animation.Animation, time.Duration)
}

func (b *animatedBinding[T]) evaluate(value *T) bindingResult {
	// subscribe to the wrapped binding's invalidations
	b.innerDeps.register(b.rs)
	switch b.state {
	case animStateNotAnimating:
		b.updateInner(value)
		return keepBinding
	case animStateShouldStart:
		b.state = animStateAnimating
		b.data.from = *value
		b.data.to = *value
		b.updateInner(&b.data.to)
		if b.details != nil {
			anim, start := b.details()
			b.data.anim = anim
			b.data.startTick = start
		}
	}
	v, finished := b.data.compute(b.rs)
	*value = v
	if finished {
		b.state = animStateNotAnimating
	} else {
		b.rs.driver.SetHasActiveAnimations()
	}
	return keepBinding
}

func (b *animatedBinding[T]) updateInner(value *T) {
	if !b.rec.node.dirty {
		return
	}
	b.rs.withEvaluator(&b.rec.node, func() {
		b.rec.callable.evaluate(value)
	})
}

func (b *animatedBinding[T]) notifyDirty(wasDirty bool) {
	if b.state == animStateShouldStart {
		return
	}
	if b.rec.node.dirty {
		b.state = animStateShouldStart
		b.data.startTick = b.rs.driver.CurrentTick()
	}
}

func (b *animatedBinding[T]) dispose() {
	b.rec.node.detachSources()
	b.rec.callable.dispose()
}

// SetAnimatedBinding installs f on p with animated transitions: whenever a
// dependency of f changes, the property animates from its current value to
// the new result. The binding stays installed after each animation ends.
func SetAnimatedBinding[T comparable](p *Property[T], f func() T, anim animation.Animation, lerp animation.LerpFunc[T]) {
	setAnimatedBinding(p, f, lerp, anim, nil)
}

// SetAnimatedBindingForTransition is like SetAnimatedBinding, but asks
// details for the animation parameters and the start tick at the moment
// each transition begins. State transition animations derive both from a
// StateInfo property.
func SetAnimatedBindingForTransition[T comparable](p *Property[T], f func() T, lerp animation.LerpFunc[T], details func() (animation.Animation, time.Duration)) {
	setAnimatedBinding(p, f, lerp, animation.Animation{}, details)
}

func setAnimatedBinding[T comparable](p *Property[T], f func() T, lerp animation.LerpFunc[T], anim animation.Animation, details func() (animation.Animation, time.Duration)) {
	inner := newBindingRecord[T](&funcBinding[T]{fn: f}, false)
	b := &animatedBinding[T]{
		rs:        p.rs,
		rec:       inner,
		innerDeps: newDepSet(),
		data:      valueAnimation[T]{anim: anim, lerp: lerp},
		details:   details,
	}
	inner.node.notifies = b.innerDeps
	p.setBindingRecord(newBindingRecord[T](b, false))
}
