package kernel

import (
	"sync"

	"github.com/cwbudde/algo-simd/aligned"
)

var (
	defaultDispatcher *Dispatcher
	defaultOnce       sync.Once
)

// Default returns the process-wide dispatcher for the detected CPU. It is
// built on first use.
func Default() *Dispatcher {
	defaultOnce.Do(func() {
		defaultDispatcher = New()
	})
	return defaultDispatcher
}

// Sum returns the sum of all elements in x.
// Returns 0 for an empty slice.
func Sum(x []float64) float64 {
	return Default().Sum(x)
}

// SumInit returns init plus the sum of all elements in x.
func SumInit(x []float64, init float64) float64 {
	return Default().SumInit(x, init)
}

// SumTier is SumInit forced onto tier t.
func SumTier(t Tier, x []float64, init float64) float64 {
	return Default().SumTier(t, x, init)
}

// SumRaw returns init plus the sum of the n elements starting at p.
func SumRaw(p *float64, n int, init float64) float64 {
	return Default().SumRaw(p, n, init)
}

// SumVec returns init plus the sum of the elements of v.
func SumVec(v *aligned.Vec[float64], init float64) float64 {
	return Default().SumVec(v, init)
}

// DotProduct returns sum(a[i] * b[i]). It panics if len(a) != len(b).
func DotProduct(a, b []float64) float64 {
	return Default().DotProduct(a, b)
}

// DotProductTier is DotProduct forced onto tier t.
func DotProductTier(t Tier, a, b []float64) float64 {
	return Default().DotProductTier(t, a, b)
}

// DotProductRaw returns the inner product of the n-element arrays at a and b.
func DotProductRaw(a, b *float64, n int) float64 {
	return Default().DotProductRaw(a, b, n)
}

// DotProductVec returns the inner product of a and b.
func DotProductVec(a, b *aligned.Vec[float64]) float64 {
	return Default().DotProductVec(a, b)
}

// PositiveDiff returns a new slice with out[i] = max(a[i]-b[i], 0).
func PositiveDiff(a, b []float64) []float64 {
	return Default().PositiveDiff(a, b)
}

// PositiveDiffInto writes dst[i] = max(a[i]-b[i], 0).
func PositiveDiffInto(dst, a, b []float64) {
	Default().PositiveDiffInto(dst, a, b)
}

// PositiveDiffTier is PositiveDiffInto forced onto tier t.
func PositiveDiffTier(t Tier, dst, a, b []float64) {
	Default().PositiveDiffTier(t, dst, a, b)
}

// PositiveDiffRaw writes max(a[i]-b[i], 0) for n elements to dst.
func PositiveDiffRaw(dst, a, b *float64, n int) {
	Default().PositiveDiffRaw(dst, a, b, n)
}

// PositiveDiffVec resizes dst to a.Len() and fills it with max(a[i]-b[i], 0).
func PositiveDiffVec(dst, a, b *aligned.Vec[float64]) error {
	return Default().PositiveDiffVec(dst, a, b)
}
