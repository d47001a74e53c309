package animation

import "math"

// LerpFunc linearly interpolates between a and b at progress t in [0, 1].
type LerpFunc[T any] func(a, b T, t float64) T

func LerpFloat64(a, b float64, t float64) float64 {
	return a + (b-a)*t
}

func LerpFloat32(a, b float32, t float64) float32 {
	return a + float32(float64(b-a)*t)
}

func LerpInt(a, b int, t float64) int {
	return a + int(math.Round(float64(b-a)*t))
}

func LerpInt64(a, b int64, t float64) int64 {
	return a + int64(math.Round(float64(b-a)*t))
}

// Color is a 32-bit ARGB color.
type Color uint32

// LerpColor interpolates each ARGB channel independently.
func LerpColor(a, b Color, t float64) Color {
	ch := func(shift uint) uint32 {
		ca := float64((a >> shift) & 0xFF)
		cb := float64((b >> shift) & 0xFF)
		return uint32(math.Round(LerpFloat64(ca, cb, t))) & 0xFF
	}
	return Color(ch(24)<<24 | ch(16)<<16 | ch(8)<<8 | ch(0))
}
