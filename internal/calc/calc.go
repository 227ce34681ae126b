// Package calc holds the small numeric helpers shared by the scorers.
package calc

import "math"

// Round rounds half up (toward +Inf), so Round(-2.5) == -2 and Round(2.5) == 3.
// Scores are rounded this way everywhere, including negative z-scores.
func Round(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	r := math.Floor(x)
	if x-r >= 0.5 {
		r++
	}
	return r
}

// RoundTo rounds x to the given number of decimal places as
// Round(x*10^places)/10^places.
func RoundTo(x float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return Round(x*p) / p
}

// RoundInt rounds half up and converts to int.
func RoundInt(x float64) int {
	return int(Round(x))
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt limits v to [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Weighted sums value/weight pairs left to right. Each product is rounded to
// float64 before it is added, so results do not depend on fused multiply-add.
func Weighted(pairs ...float64) float64 {
	var sum float64
	for i := 0; i+1 < len(pairs); i += 2 {
		sum += float64(pairs[i] * pairs[i+1])
	}
	return sum
}
