//go:build (386 || amd64) && !goexperiment.simd && !purego

package avx2

import (
	"github.com/viterin/vek"
	"github.com/viterin/vek/vek32"

	"github.com/cwbudde/algo-simd/internal/lanes"
)

// accelerated is true when vek runs its AVX2 assembly on this CPU. vek has
// no aligned entry points, so the aligned kernels are the unaligned ones.
var accelerated = vek32.Info().Acceleration

// Sum returns init plus the sum of all elements in x.
func Sum(x []float64, init float64) float64 {
	if !accelerated {
		return lanes.Sum4(x, init, lanes.Unaligned)
	}
	if len(x) == 0 {
		return init
	}
	return init + vek.Sum(x)
}

// SumAligned is Sum for x starting on a 32-byte boundary.
func SumAligned(x []float64, init float64) float64 {
	if !accelerated {
		return lanes.Sum4(x, init, lanes.Aligned)
	}
	return Sum(x, init)
}

// DotProduct returns sum(a[i] * b[i]). len(b) must be at least len(a).
func DotProduct(a, b []float64) float64 {
	if !accelerated {
		return lanes.DotProduct4(a, b, lanes.Unaligned)
	}
	if len(a) == 0 {
		return 0
	}
	return vek.Dot(a, b[:len(a)])
}

// DotProductAligned is DotProduct for a and b both starting on a 32-byte boundary.
func DotProductAligned(a, b []float64) float64 {
	if !accelerated {
		return lanes.DotProduct4(a, b, lanes.Aligned)
	}
	return DotProduct(a, b)
}

// PositiveDiff performs dst[i] = max(a[i]-b[i], 0).
func PositiveDiff(dst, a, b []float64) {
	if !accelerated {
		lanes.PositiveDiff4(dst, a, b, lanes.Unaligned)
		return
	}
	n := len(dst)
	if n == 0 {
		return
	}
	vek.Sub_Into(dst, a[:n], b[:n])
	vek.MaximumNumber_Inplace(dst, 0)
}

// PositiveDiffAligned is PositiveDiff for dst, a and b all starting on a 32-byte boundary.
func PositiveDiffAligned(dst, a, b []float64) {
	if !accelerated {
		lanes.PositiveDiff4(dst, a, b, lanes.Aligned)
		return
	}
	PositiveDiff(dst, a, b)
}
