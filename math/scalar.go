package math

import "github.com/chewxy/math32"

const (
	Pi     = float32(3.141592653589793)
	HalfPi = float32(1.5707963267948966)
	Tau    = float32(6.283185307179586)
)

// WrapAngle reduces an angle into [0, 2π).
func WrapAngle(a float32) float32 {
	a = math32.Mod(a, Tau)
	if a < 0 {
		a += Tau
	}
	if a >= Tau {
		a = 0
	}
	return a
}

func Clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
