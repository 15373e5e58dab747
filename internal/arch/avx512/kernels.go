//go:build amd64 && goexperiment.simd && !purego

package avx512

import (
	"simd/archsimd"
	"unsafe"
)

// at returns the 8-element block starting at x[i]. The caller guarantees
// i+8 <= len(x).
func at(x []float64, i int) *[8]float64 {
	return (*[8]float64)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(x)), i*8))
}

// hsum folds the lanes of v in halves: lane l += lane l+4, then l+2, then l+1.
func hsum(v archsimd.Float64x8) float64 {
	var t [8]float64
	v.StoreSlice(t[:])
	return ((t[0] + t[4]) + (t[2] + t[6])) + ((t[1] + t[5]) + (t[3] + t[7]))
}

// Sum returns init plus the sum of all elements in x.
func Sum(x []float64, init float64) float64 {
	n := len(x)
	acc0 := archsimd.BroadcastFloat64x8(0)
	acc1 := archsimd.BroadcastFloat64x8(0)

	i := 0
	for ; i+16 <= n; i += 16 {
		acc0 = acc0.Add(archsimd.LoadFloat64x8Slice(x[i:]))
		acc1 = acc1.Add(archsimd.LoadFloat64x8Slice(x[i+8:]))
	}
	if i+8 <= n {
		acc0 = acc0.Add(archsimd.LoadFloat64x8Slice(x[i:]))
		i += 8
	}

	s := hsum(acc0.Add(acc1))
	for ; i < n; i++ {
		s += x[i]
	}
	return init + s
}

// SumAligned is Sum for x starting on a 64-byte boundary.
func SumAligned(x []float64, init float64) float64 {
	n := len(x)
	acc0 := archsimd.BroadcastFloat64x8(0)
	acc1 := archsimd.BroadcastFloat64x8(0)

	i := 0
	for ; i+16 <= n; i += 16 {
		acc0 = acc0.Add(archsimd.LoadFloat64x8(at(x, i)))
		acc1 = acc1.Add(archsimd.LoadFloat64x8(at(x, i+8)))
	}
	if i+8 <= n {
		acc0 = acc0.Add(archsimd.LoadFloat64x8(at(x, i)))
		i += 8
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
	acc0 := archsimd.BroadcastFloat64x8(0)
	acc1 := archsimd.BroadcastFloat64x8(0)

	i := 0
	for ; i+16 <= n; i += 16 {
		acc0 = acc0.Add(archsimd.LoadFloat64x8Slice(a[i:]).Mul(archsimd.LoadFloat64x8Slice(b[i:])))
		acc1 = acc1.Add(archsimd.LoadFloat64x8Slice(a[i+8:]).Mul(archsimd.LoadFloat64x8Slice(b[i+8:])))
	}
	if i+8 <= n {
		acc0 = acc0.Add(archsimd.LoadFloat64x8Slice(a[i:]).Mul(archsimd.LoadFloat64x8Slice(b[i:])))
		i += 8
	}

	s := hsum(acc0.Add(acc1))
	for ; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

// DotProductAligned is DotProduct for a and b both starting on a 64-byte boundary.
func DotProductAligned(a, b []float64) float64 {
	n := len(a)
	b = b[:n]
	acc0 := archsimd.BroadcastFloat64x8(0)
	acc1 := archsimd.BroadcastFloat64x8(0)

	i := 0
	for ; i+16 <= n; i += 16 {
		acc0 = acc0.Add(archsimd.LoadFloat64x8(at(a, i)).Mul(archsimd.LoadFloat64x8(at(b, i))))
		acc1 = acc1.Add(archsimd.LoadFloat64x8(at(a, i+8)).Mul(archsimd.LoadFloat64x8(at(b, i+8))))
	}
	if i+8 <= n {
		acc0 = acc0.Add(archsimd.LoadFloat64x8(at(a, i)).Mul(archsimd.LoadFloat64x8(at(b, i))))
		i += 8
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
	zero := archsimd.BroadcastFloat64x8(0)

	i := 0
	for ; i+8 <= n; i += 8 {
		d := archsimd.LoadFloat64x8Slice(a[i:]).Sub(archsimd.LoadFloat64x8Slice(b[i:]))
		d.Max(zero).StoreSlice(dst[i:])
	}
	for ; i < n; i++ {
		dst[i] = max(a[i]-b[i], 0)
	}
}

// PositiveDiffAligned is PositiveDiff for dst, a and b all starting on a 64-byte boundary.
func PositiveDiffAligned(dst, a, b []float64) {
	n := len(dst)
	a, b = a[:n], b[:n]
	zero := archsimd.BroadcastFloat64x8(0)

	i := 0
	for ; i+8 <= n; i += 8 {
		d := archsimd.LoadFloat64x8(at(a, i)).Sub(archsimd.LoadFloat64x8(at(b, i)))
		d.Max(zero).Store(at(dst, i))
	}
	for ; i < n; i++ {
		dst[i] = max(a[i]-b[i], 0)
	}
}
