package vmath

import "math"

// Clamp limits v to [lo, hi]; lo wins when lo > hi
func Clamp(v, lo, hi float64) float64 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Sign returns -1, 0 or 1
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Radians converts degrees to radians
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Fold mirrors v back into [0, limit] off either boundary, at most maxFolds times
// Returns the folded value and number of folds applied. Result is not clamped
func Fold(v, limit float64, maxFolds int) (float64, int) {
	folds := 0
	for (v < 0 || v > limit) && folds < maxFolds {
		if v < 0 {
			v = -v
		} else {
			v = 2*limit - v
		}
		folds++
	}
	return v, folds
}
