// Package lanes contains the portable blocked loops used by the vector tiers
// that have no hardware intrinsics behind them.
//
// Each kernel is written for one register width with every lane held in its
// own local accumulator, so the compiler keeps them in registers and the
// additions of different lanes run in parallel. The loops walk the input two
// registers at a time, process one more register if a full one still fits,
// combine the lanes in a fixed pairwise order and finish the remaining
// len%width elements with scalar code. Aligned and Unaligned access read the
// same elements in the same order, so both produce bit-identical results.
package lanes

import "unsafe"

// Access selects how register-sized blocks are addressed.
type Access uint8

const (
	// Unaligned converts bounds-checked subslices to array pointers.
	Unaligned Access = iota
	// Aligned computes block addresses directly from the slice base. The
	// caller guarantees that the base is aligned to the register size.
	Aligned
)

// block2 returns x[i : i+2] as an array pointer.
func block2(x []float64, i int, acc Access) *[2]float64 {
	if acc == Aligned {
		return (*[2]float64)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(x)), i*8))
	}
	return (*[2]float64)(x[i : i+2])
}

// block4 returns x[i : i+4] as an array pointer.
func block4(x []float64, i int, acc Access) *[4]float64 {
	if acc == Aligned {
		return (*[4]float64)(unsafe.Add(unsafe.Pointer(unsafe.SliceData(x)), i*8))
	}
	return (*[4]float64)(x[i : i+4])
}

// Sum2 returns init + sum(x[i]) with 2-lane registers.
func Sum2(x []float64, init float64, acc Access) float64 {
	n := len(x)

	var a0, a1, b0, b1 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		p := block2(x, i, acc)
		q := block2(x, i+2, acc)
		a0 += p[0]
		a1 += p[1]
		b0 += q[0]
		b1 += q[1]
	}
	if i+2 <= n {
		p := block2(x, i, acc)
		a0 += p[0]
		a1 += p[1]
		i += 2
	}

	a0 += b0
	a1 += b1
	s := a0 + a1

	for ; i < n; i++ {
		s += x[i]
	}
	return init + s
}

// Sum4 returns init + sum(x[i]) with 4-lane registers.
func Sum4(x []float64, init float64, acc Access) float64 {
	n := len(x)

	var a0, a1, a2, a3, b0, b1, b2, b3 float64
	i := 0
	for ; i+8 <= n; i += 8 {
		p := block4(x, i, acc)
		q := block4(x, i+4, acc)
		a0 += p[0]
		a1 += p[1]
		a2 += p[2]
		a3 += p[3]
		b0 += q[0]
		b1 += q[1]
		b2 += q[2]
		b3 += q[3]
	}
	if i+4 <= n {
		p := block4(x, i, acc)
		a0 += p[0]
		a1 += p[1]
		a2 += p[2]
		a3 += p[3]
		i += 4
	}

	a0 += b0
	a1 += b1
	a2 += b2
	a3 += b3
	s := (a0 + a2) + (a1 + a3)

	for ; i < n; i++ {
		s += x[i]
	}
	return init + s
}

// DotProduct2 returns sum(a[i] * b[i]) with 2-lane registers.
// len(b) must be at least len(a).
func DotProduct2(a, b []float64, acc Access) float64 {
	n := len(a)
	b = b[:n]

	var s0, s1, t0, t1 float64
	i := 0
	for ; i+4 <= n; i += 4 {
		pa, pb := block2(a, i, acc), block2(b, i, acc)
		qa, qb := block2(a, i+2, acc), block2(b, i+2, acc)
		s0 += pa[0] * pb[0]
		s1 += pa[1] * pb[1]
		t0 += qa[0] * qb[0]
		t1 += qa[1] * qb[1]
	}
	if i+2 <= n {
		pa, pb := block2(a, i, acc), block2(b, i, acc)
		s0 += pa[0] * pb[0]
		s1 += pa[1] * pb[1]
		i += 2
	}

	s0 += t0
	s1 += t1
	s := s0 + s1

	for ; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

// DotProduct4 returns sum(a[i] * b[i]) with 4-lane registers.
// len(b) must be at least len(a).
func DotProduct4(a, b []float64, acc Access) float64 {
	n := len(a)
	b = b[:n]

	var s0, s1, s2, s3, t0, t1, t2, t3 float64
	i := 0
	for ; i+8 <= n; i += 8 {
		pa, pb := block4(a, i, acc), block4(b, i, acc)
		qa, qb := block4(a, i+4, acc), block4(b, i+4, acc)
		s0 += pa[0] * pb[0]
		s1 += pa[1] * pb[1]
		s2 += pa[2] * pb[2]
		s3 += pa[3] * pb[3]
		t0 += qa[0] * qb[0]
		t1 += qa[1] * qb[1]
		t2 += qa[2] * qb[2]
		t3 += qa[3] * qb[3]
	}
	if i+4 <= n {
		pa, pb := block4(a, i, acc), block4(b, i, acc)
		s0 += pa[0] * pb[0]
		s1 += pa[1] * pb[1]
		s2 += pa[2] * pb[2]
		s3 += pa[3] * pb[3]
		i += 4
	}

	s0 += t0
	s1 += t1
	s2 += t2
	s3 += t3
	s := (s0 + s2) + (s1 + s3)

	for ; i < n; i++ {
		s += a[i] * b[i]
	}
	return s
}

// PositiveDiff2 writes dst[i] = max(a[i]-b[i], 0) with 2-lane registers.
// a and b must be at least len(dst) long. dst may alias a or b.
func PositiveDiff2(dst, a, b []float64, acc Access) {
	n := len(dst)
	a, b = a[:n], b[:n]

	i := 0
	for ; i+2 <= n; i += 2 {
		d, p, q := block2(dst, i, acc), block2(a, i, acc), block2(b, i, acc)
		d[0] = max(p[0]-q[0], 0)
		d[1] = max(p[1]-q[1], 0)
	}
	for ; i < n; i++ {
		dst[i] = max(a[i]-b[i], 0)
	}
}

// PositiveDiff4 writes dst[i] = max(a[i]-b[i], 0) with 4-lane registers.
// a and b must be at least len(dst) long. dst may alias a or b.
func PositiveDiff4(dst, a, b []float64, acc Access) {
	n := len(dst)
	a, b = a[:n], b[:n]

	i := 0
	for ; i+4 <= n; i += 4 {
		d, p, q := block4(dst, i, acc), block4(a, i, acc), block4(b, i, acc)
		d[0] = max(p[0]-q[0], 0)
		d[1] = max(p[1]-q[1], 0)
		d[2] = max(p[2]-q[2], 0)
		d[3] = max(p[3]-q[3], 0)
	}
	for ; i < n; i++ {
		dst[i] = max(a[i]-b[i], 0)
	}
}
