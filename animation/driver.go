package animation

import "time"

// Driver owns the animation tick for one reactive system. Running
// animations read the tick instead of the wall clock, so every animation
// in a frame sees the same instant and tests can step time manually.
type Driver struct {
	start  time.Time
	tick   time.Duration
	active bool
}

func NewDriver() *Driver {
	return &Driver{start: Now()}
}

// UpdateAnimations advances the tick to the current clock time and clears
// the active flag; animations evaluated afterwards re-arm it. Event loops
// call this once per frame while HasActiveAnimations reports true.
func (d *Driver) UpdateAnimations() {
	d.active = false
	d.tick = Now().Sub(d.start)
}

// CurrentTick reports the time of the current frame, relative to the
// driver's start.
func (d *Driver) CurrentTick() time.Duration { return d.tick }

// SetHasActiveAnimations is called by running animations during evaluation
// to request further frames.
func (d *Driver) SetHasActiveAnimations() { d.active = true }

func (d *Driver) HasActiveAnimations() bool { return d.active }
