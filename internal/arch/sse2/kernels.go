//go:build (386 || amd64) && !purego

package sse2

import "github.com/cwbudde/algo-simd/internal/lanes"

// Width is the number of float64 lanes in a 128-bit register.
const Width = 2

// Sum returns init plus the sum of all elements in x.
func Sum(x []float64, init float64) float64 {
	return lanes.Sum2(x, init, lanes.Unaligned)
}

// SumAligned is Sum for x starting on a 16-byte boundary.
func SumAligned(x []float64, init float64) float64 {
	return lanes.Sum2(x, init, lanes.Aligned)
}

// DotProduct returns sum(a[i] * b[i]). len(b) must be at least len(a).
func DotProduct(a, b []float64) float64 {
	return lanes.DotProduct2(a, b, lanes.Unaligned)
}

// DotProductAligned is DotProduct for a and b both starting on a 16-byte boundary.
func DotProductAligned(a, b []float64) float64 {
	return lanes.DotProduct2(a, b, lanes.Aligned)
}

// PositiveDiff performs dst[i] = max(a[i]-b[i], 0).
func PositiveDiff(dst, a, b []float64) {
	lanes.PositiveDiff2(dst, a, b, lanes.Unaligned)
}

// PositiveDiffAligned is PositiveDiff for dst, a and b all starting on a 16-byte boundary.
func PositiveDiffAligned(dst, a, b []float64) {
	lanes.PositiveDiff2(dst, a, b, lanes.Aligned)
}
