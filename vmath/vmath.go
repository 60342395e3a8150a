package vmath

import "math"

// Epsilon guards divisions against zero denominators
const Epsilon = 1e-6

// --- Arithmetic ---

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1]
func Clamp01(v float64) float64 { return Clamp(v, 0, 1) }

// Lerp interpolates a..b by t without clamping t
func Lerp(a, b, t float64) float64 { return a + (b-a)*t }

// Abs returns absolute value
func Abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0, or 1
func Sign(x float64) float64 {
	if x < 0 {
		return -1
	}
	if x > 0 {
		return 1
	}
	return 0
}

// IsFinite reports whether x is neither NaN nor infinite
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// --- Curves ---

// Log2Scale returns log2(1 + x/ref), zero for non-positive x
func Log2Scale(x, ref float64) float64 {
	if x <= 0 {
		return 0
	}
	return math.Log2(1 + x/(ref+Epsilon))
}

// ExpAlpha returns the exponential smoothing factor 1 - e^(-dt/tau)
// tau <= 0 snaps (returns 1)
func ExpAlpha(dt, tau float64) float64 {
	if tau <= 0 {
		return 1
	}
	return 1 - math.Exp(-dt/tau)
}

// Gaussian returns e^(-d²/2σ²)
func Gaussian(d, sigma float64) float64 {
	if sigma <= 0 {
		if d == 0 {
			return 1
		}
		return 0
	}
	return math.Exp(-(d * d) / (2 * sigma * sigma))
}

// Ramp maps x from [lo, hi] to [0, 1] linearly, clamped
func Ramp(x, lo, hi float64) float64 {
	if hi <= lo {
		if x >= hi {
			return 1
		}
		return 0
	}
	return Clamp01((x - lo) / (hi - lo))
}

// PiecewiseLinear evaluates a curve through (xs[i], ys[i]) control points
// xs must be ascending; values beyond the ends hold the end values
// Empty input returns 0
func PiecewiseLinear(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if len(ys) < n {
		n = len(ys)
	}
	if n == 0 {
		return 0
	}
	if x <= xs[0] {
		return ys[0]
	}
	for i := 1; i < n; i++ {
		if x < xs[i] {
			t := Ramp(x, xs[i-1], xs[i])
			return Lerp(ys[i-1], ys[i], t)
		}
	}
	return ys[n-1]
}
