//go:build amd64 && goexperiment.simd && !purego

package avx2

import (
	"simd/archsimd"
	"unsafe"
)

// at returns the 4-element block starting at x[i]. The caller guarantees
// i+4 <= len(x).
func at(x []float64, i int) *[4]float64 {
	return (*[4]float64)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(x)), i*8))
}

// hsum folds the lanes of v pairwise: (l0+l2) + (l1+l3).
func hsum(v archsimd.Float64x4) float64 {
	var t [4]float64
	v.StoreSlice(t[:])
	return (t[0] + t[2]) + (t[1] + t[3])
}

// Sum returns init plus the sum of all elements in x.
func Sum(x []float64, init float64) float64 {
	n := len(x)
	acc0 := archsimd.BroadcastFloat64x4(0)
	acc1 := archsimd.BroadcastFloat64x4(0)

	i := 0
	for ; i+8 <= n; i += 8 {
		acc0 = acc0.Add(archsimd.LoadFloat64x4Slice(x[i:]))
		acc1 = acc1.Add(archsimd.LoadFloat64x4Slice(x[i+4:]))
	}
	if i+4 <= n {
		acc0 = acc0.Add(archsimd.LoadFloat64x4Slice(x[i:]))
		i += 4
	}

	s := hsum(acc0.Add(acc1))
	for ; i < n; i++ {
		s += x[i]
	}
	return init + s
}

// SumAligned is Sum for x starting on a 32-byte boundary.
func SumAligned(x []float64, init float64) float64 {
	n := len(x)
	acc0 := archsimd.BroadcastFloat64x4(0)
	acc1 := archsimd.BroadcastFloat64x4(0)

	i := 0
	for ; i+8 <= n; i += 8 {
		acc0 = acc0.Add(archsimd.LoadFloat64x4(at(x, i)))
		acc1 = acc1.Add(archsimd.LoadFloat64x4(at(x, i+4)))
	}
	if i+4 <= n {
		acc0 = acc0.Add(archsimd.LoadFloat64x4(at(x, i)))
		i += 4
	}

	s := hsum(acc0.Add(acc1))
	for ; i < n; i++ {
		s += x[i]
	}
	return init + s
}

// DotProduct returns sum(a[i] * b[i]). len(b) must be at least len(a).
func DotProduct(a, b []float64) float64 {
	n := len(a)
	b = b[:n]
	acc0 := archsimd.BroadcastFloat64x4(0)
	acc1 := archsimd.BroadcastFloat64x4(0)

	i := 0
	for ; i+8 <= n; i += 8 {
		acc0 = acc0.Add(archsimd.LoadFloat64x4Slice(a[i:]).Mul(archsimd.LoadFloat64x4Slice(b[i:])))
		acc1 = acc1.Add(archsimd.LoadFloat64x4Slice(a[i+4:]).Mul(archsimd.LoadFloat64x4Slice(b[i+4:])))
	}
	if i+4 <= n {
		acc0 = acc0.Add(archsimd.LoadFloat64x4Slice(a[i:]).Mul(archsimd.LoadFloat64x4Slice(b[i:])))
		i += 4
	}

	s := hsum(acc0.Add(acc1))
	for ; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

// DotProductAligned is DotProduct for a and b both starting on a 32-byte boundary.
func DotProductAligned(a, b []float64) float64 {
	n := len(a)
	b = b[:n]
	acc0 := archsimd.BroadcastFloat64x4(0)
	acc1 := archsimd.BroadcastFloat64x4(0)

	i := 0
	for ; i+8 <= n; i += 8 {
		acc0 = acc0.Add(archsimd.LoadFloat64x4(at(a, i)).Mul(archsimd.LoadFloat64x4(at(b, i))))
		acc1 = acc1.Add(archsimd.LoadFloat64x4(at(a, i+4)).Mul(archsimd.LoadFloat64x4(at(b, i+4))))
	}
	if i+4 <= n {
		acc0 = acc0.Add(archsimd.LoadFloat64x4(at(a, i)).Mul(archsimd.LoadFloat64x4(at(b, i))))
		i += 4
	}

	s := hsum(acc0.Add(acc1))
	for ; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

// PositiveDiff performs dst[i] = max(a[i]-b[i], 0).
func PositiveDiff(dst, a, b []float64) {
	n := len(dst)
	a, b = a[:n], b[:n]
	zero := archsimd.BroadcastFloat64x4(0)

	i := 0
	for ; i+4 <= n; i += 4 {
		d := archsimd.LoadFloat64x4Slice(a[i:]).Sub(archsimd.LoadFloat64x4Slice(b[i:]))
		d.Max(zero).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = max(a[i]-b[i], 0)
	}
}

// PositiveDiffAligned is PositiveDiff for dst, a and b all starting on a 32-byte boundary.
func PositiveDiffAligned(dst, a, b []float64) {
	n := len(dst)
	a, b = a[:n], b[:n]
	zero := archsimd.BroadcastFloat64x4(0)

	i := 0
	for ; i+4 <= n; i += 4 {
		d := archsimd.LoadFloat64x4(at(a, i)).Sub(archsimd.LoadFloat64x4(at(b, i)))
		d.Max(zero).Store(at(dst, i))
	}
	for ; i < n; i++ {
		dst[i] = max(a[i]-b[i], 0)
	}
}
