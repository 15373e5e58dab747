package kernel

import (
	"unsafe"

	"github.com/cwbudde/algo-simd/aligned"
)

// rawSlice views n elements at p. A nil p is only valid with n == 0.
func rawSlice(p *float64, n int) []float64 {
	if n < 0 {
		panic("kernel: negative element count")
	}
	if n == 0 {
		return nil
	}
	return unsafe.Slice(p, n)
}

// SumRaw returns init plus the sum of the n elements starting at p.
func (d *Dispatcher) SumRaw(p *float64, n int, init float64) float64 {
	return d.SumInit(rawSlice(p, n), init)
}

// DotProductRaw returns the inner product of the n-element arrays at a and b.
func (d *Dispatcher) DotProductRaw(a, b *float64, n int) float64 {
	return d.DotProduct(rawSlice(a, n), rawSlice(b, n))
}

// PositiveDiffRaw writes max(a[i]-b[i], 0) for n elements to dst.
func (d *Dispatcher) PositiveDiffRaw(dst, a, b *float64, n int) {
	d.PositiveDiffInto(rawSlice(dst, n), rawSlice(a, n), rawSlice(b, n))
}

// vecTier picks the tier for aligned containers. When every container's
// alignment covers the vector width the aligned tier is chosen from the types
// alone; otherwise the addresses decide.
func (d *Dispatcher) vecTier(vs ...*aligned.Vec[float64]) Tier {
	if !d.vector.IsVector() {
		return TierScalar
	}
	for _, v := range vs {
		if v.Alignment() < d.vector.VectorBytes() {
			bufs := make([][]float64, len(vs))
			for i, w := range vs {
				bufs[i] = w.Slice()
			}
			return d.SelectTier(bufs...)
		}
	}
	return TierVectorAligned
}

// SumVec returns init plus the sum of the elements of v.
func (d *Dispatcher) SumVec(v *aligned.Vec[float64], init float64) float64 {
	return d.SumTier(d.vecTier(v), v.Slice(), init)
}

// DotProductVec returns the inner product of a and b.
func (d *Dispatcher) DotProductVec(a, b *aligned.Vec[float64]) float64 {
	return d.DotProductTier(d.vecTier(a, b), a.Slice(), b.Slice())
}

// PositiveDiffVec resizes dst to the length of a and fills it with
// max(a[i]-b[i], 0). It panics if a and b differ in length and returns the
// allocation error if dst cannot grow.
func (d *Dispatcher) PositiveDiffVec(dst, a, b *aligned.Vec[float64]) error {
	checkLengths("PositiveDiff", a.Len(), b.Len())
	if err := dst.Resize(a.Len()); err != nil {
		return err
	}
	d.positiveDiff(d.vecTier(dst, a, b), dst.Slice(), a.Slice(), b.Slice())
	return nil
}
