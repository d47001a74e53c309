package animation

import "time"

// LoopForever makes an animation repeat until its property is written or
// rebound.
const LoopForever = -1

// Animation describes how an animated property moves between two values.
type Animation struct {
	Duration time.Duration
	Delay    time.Duration
	Easing   EasingFunc
	// LoopCount is the number of extra repetitions after the first run,
	// or LoopForever.
	LoopCount int
}

// Progress reports the eased progress for the elapsed time since the
// animation started, and whether the animation has finished.
func (a Animation) Progress(elapsed time.Duration) (float64, bool) {
	elapsed -= a.Delay
	if elapsed < 0 {
		return 0, false
	}
	if a.Duration <= 0 {
		return 1, true
	}
	iteration := elapsed / a.Duration
	if a.LoopCount >= 0 && iteration > time.Duration(a.LoopCount) {
		return 1, true
	}
	t := float64(elapsed%a.Duration) / float64(a.Duration)
	if a.Easing != nil {
		t = a.Easing(t)
	}
	return t, false
}
