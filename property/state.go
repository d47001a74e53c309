package property

import "time"

// StateInfo tracks an element state as an integer, remembering the
// previous state and the animation tick at which it last changed.
// Transition animations read ChangeTime to know how far along they are.
type StateInfo struct {
	Current    int
	Previous   int
	ChangeTime time.Duration
}

// stateInfoBinding re-derives the state on each pull. The change time is
// captured in the dirty hook, when the invalidation happens, not when the
// value is eventually read.
type stateInfoBinding struct {
	noopBinding[StateInfo]
	rs        *ReactiveSystem
	compute   func() int
	dirtyTime time.Duration
	hasTime   bool
}

func (b *stateInfoBinding) evaluate(value *StateInfo) bindingResult {
	newState := b.compute()
	timestamp := b.rs.driver.CurrentTick()
	if b.hasTime {
		timestamp = b.dirtyTime
		b.hasTime = false
	}
	if newState != value.Current {
		value.Previous = value.Current
		value.Current = newState
		value.ChangeTime = timestamp
	}
	return keepBinding
}

func (b *stateInfoBinding) notifyDirty(wasDirty bool) {
	if !b.hasTime {
		b.hasTime = true
		b.dirtyTime = b.rs.driver.CurrentTick()
	}
}

// SetStateBinding installs a state computation on p. Whenever a
// dependency of compute changes, the next read re-evaluates it and, if the
// state differs, records the previous state and the tick of the change.
func SetStateBinding(p *Property[StateInfo], compute func() int) {
	p.setBindingRecord(newBindingRecord[StateInfo](&stateInfoBinding{rs: p.rs, compute: compute}, false))
}
