package testutil

import (
	"math"
	"math/rand"
	"unsafe"
)

// Ramp returns [start, start+1, ..., start+n-1].
func Ramp(start float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + float64(i)
	}
	return out
}

// Sentinels returns n distinct powers of two, 2^0 .. 2^(n-1) cycling every
// 40 entries. Each element is exactly representable and dropping any one of
// them from a short sum changes the result, which exposes skipped remainders.
func Sentinels(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.Ldexp(1, i%40)
	}
	return out
}

// DeterministicNoise generates values in [-amplitude, amplitude) with a fixed
// seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// DC generates a constant-valued slice.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// Ones returns a slice of length n filled with 1.0.
func Ones(n int) []float64 {
	return DC(1.0, n)
}

// Misaligned returns a copy of src whose first element is 8 bytes past an
// alignment-byte boundary, so it is never aligned to alignment > 8.
func Misaligned(src []float64, alignment int) []float64 {
	stride := alignment / 8
	backing := make([]float64, len(src)+2*stride)
	off := 0
	for ; off < 2*stride; off++ {
		p := uintptr(unsafe.Pointer(&backing[off]))
		if p%uintptr(alignment) == 8 {
			break
		}
	}
	out := backing[off : off+len(src) : off+len(src)]
	copy(out, src)
	return out
}
