package animation

import "math"

// EasingFunc maps linear progress in [0, 1] to eased progress.
type EasingFunc func(t float64) float64

// Linear returns progress unchanged.
func Linear(t float64) float64 { return t }

// Standard CSS easing curves.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1.0)
	EaseIn    = CubicBezier(0.42, 0.0, 1.0, 1.0)
	EaseOut   = CubicBezier(0.0, 0.0, 0.58, 1.0)
	EaseInOut = CubicBezier(0.42, 0.0, 0.58, 1.0)
)

// CubicBezier returns an easing function matching CSS cubic-bezier().
// The control points are (x1,y1) and (x2,y2); the curve runs from (0,0)
// to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) EasingFunc {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return bezier(y1, y2, solveCurveX(x1, x2, t))
	}
}

// solveCurveX finds u such that bezier(x1, x2, u) == x, with Newton-Raphson
// and a bisection fallback for flat derivatives.
func solveCurveX(x1, x2, x float64) float64 {
	u := x
	for i := 0; i < 8; i++ {
		diff := bezier(x1, x2, u) - x
		if math.Abs(diff) < 1e-7 {
			return u
		}
		d := bezierDerivative(x1, x2, u)
		if math.Abs(d) < 1e-7 {
			break
		}
		u -= diff / d
	}

	lo, hi := 0.0, 1.0
	u = math.Min(math.Max(u, 0), 1)
	for i := 0; i < 16; i++ {
		diff := bezier(x1, x2, u) - x
		if math.Abs(diff) < 1e-7 {
			break
		}
		if diff > 0 {
			hi = u
		} else {
			lo = u
		}
		u = (lo + hi) / 2
	}
	return u
}

func bezier(p1, p2, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*p1 + 3*inv*t*t*p2 + t*t*t
}

func bezierDerivative(p1, p2, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*p1 + 6*inv*t*(p2-p1) + 3*t*t*(1-p2)
}
