package common

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Numeric helpers shared by the chroma and tonal packages, built on gonum/floats.

// Sum returns the sum of data.
func Sum(data []float64) float64 {
	if len(data) == 0 {
		return 0.0
	}
	return floats.Sum(data)
}

// NormalizeSumTo writes data scaled to unit sum into dst and returns the
// original sum. When the sum is not positive dst is zeroed. A sum that
// overflows to +Inf is returned as is, but dst is still normalised.
func NormalizeSumTo(dst, data []float64) float64 {
	total := Sum(data)
	if total <= 0 {
		for i := range dst {
			dst[i] = 0
		}
		return total
	}
	if math.IsInf(total, 1) {
		floats.ScaleTo(dst, 1/floats.Max(data), data)
		floats.Scale(1/floats.Sum(dst), dst)
		return total
	}
	floats.ScaleTo(dst, 1/total, data)
	return total
}

// FirstNonFinite returns the index of the first NaN or infinite value, or -1.
func FirstNonFinite(data []float64) int {
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}

// FirstNegative returns the index of the first value below zero, or -1.
func FirstNegative(data []float64) int {
	for i, v := range data {
		if v < 0 {
			return i
		}
	}
	return -1
}

// ArgMin returns the index of the smallest value, scanning in order so that
// ties resolve to the lowest index. NaN values never win. Returns -1 when data
// is empty or all NaN.
func ArgMin(data []float64) int {
	best := -1
	for i, v := range data {
		if math.IsNaN(v) {
			continue
		}
		if best < 0 || v < data[best] {
			best = i
		}
	}
	return best
}
