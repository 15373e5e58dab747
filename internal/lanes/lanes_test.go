package lanes

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-simd/aligned"
	"github.com/cwbudde/algo-simd/internal/testutil"
)

type kernels struct {
	width        int
	sum          func(x []float64, init float64, acc Access) float64
	dotProduct   func(a, b []float64, acc Access) float64
	positiveDiff func(dst, a, b []float64, acc Access)
}

var widths = []kernels{
	{width: 2, sum: Sum2, dotProduct: DotProduct2, positiveDiff: PositiveDiff2},
	{width: 4, sum: Sum4, dotProduct: DotProduct4, positiveDiff: PositiveDiff4},
}

// alignedCopy returns src copied into a 64-byte aligned buffer.
func alignedCopy(t *testing.T, src []float64) []float64 {
	t.Helper()
	v, err := aligned.FromSlice(64, src)
	if err != nil {
		t.Fatalf("FromSlice: %v", err)
	}
	t.Cleanup(func() { _ = v.Release() })
	return v.Slice()
}

func scalarSum(x []float64, init float64) float64 {
	s := init
	for _, v := range x {
		s += v
	}
	return s
}

func TestSumRemainderCoverage(t *testing.T) {
	for _, k := range widths {
		for n := 0; n < 5*k.width; n++ {
			t.Run(fmt.Sprintf("w=%d/n=%d", k.width, n), func(t *testing.T) {
				x := testutil.Sentinels(n)
				want := scalarSum(x, 0)

				// Powers of two below 2^40 add exactly in any order.
				if got := k.sum(x, 0, Unaligned); got != want {
					t.Fatalf("Sum = %v, want %v", got, want)
				}
				if got := k.sum(alignedCopy(t, x), 0, Aligned); got != want {
					t.Fatalf("aligned Sum = %v, want %v", got, want)
				}
			})
		}
	}
}

func TestSumInit(t *testing.T) {
	for _, k := range widths {
		if got := k.sum(nil, 10, Unaligned); got != 10 {
			t.Errorf("w=%d: Sum(nil, 10) = %v, want 10", k.width, got)
		}
		if got := k.sum(testutil.Ramp(0, 100), 0, Unaligned); got != 4950 {
			t.Errorf("w=%d: Sum(0..99) = %v, want 4950", k.width, got)
		}
	}
}

func TestDotProductRemainderCoverage(t *testing.T) {
	for _, k := range widths {
		for n := 0; n < 5*k.width; n++ {
			a := testutil.Sentinels(n)
			b := testutil.Ones(n)
			want := scalarSum(a, 0)

			if got := k.dotProduct(a, b, Unaligned); got != want {
				t.Fatalf("w=%d n=%d: DotProduct = %v, want %v", k.width, n, got, want)
			}
			if got := k.dotProduct(alignedCopy(t, a), alignedCopy(t, b), Aligned); got != want {
				t.Fatalf("w=%d n=%d: aligned DotProduct = %v, want %v", k.width, n, got, want)
			}
		}
	}
}

func TestPositiveDiffRemainderCoverage(t *testing.T) {
	for _, k := range widths {
		for n := 0; n < 5*k.width; n++ {
			a := testutil.Sentinels(n)
			b := make([]float64, n)
			want := make([]float64, n)
			for i := range b {
				if i%2 == 0 {
					b[i] = a[i] / 2
					want[i] = a[i] / 2
				} else {
					b[i] = a[i] * 2
				}
			}

			got := make([]float64, n)
			for i := range got {
				got[i] = math.NaN()
			}
			k.positiveDiff(got, a, b, Unaligned)
			testutil.RequireBitIdentical(t, got, want)

			dst := alignedCopy(t, got)
			k.positiveDiff(dst, alignedCopy(t, a), alignedCopy(t, b), Aligned)
			testutil.RequireBitIdentical(t, dst, want)
		}
	}
}

func TestPositiveDiffInPlace(t *testing.T) {
	for _, k := range widths {
		a := []float64{5, 1, 3, 9, -2, 4, 0, 8, 7}
		b := []float64{2, 4, 3, 1, -7, 4, 1, 2, 9}
		k.positiveDiff(a, a, b, Unaligned)
		testutil.RequireBitIdentical(t, a, []float64{3, 0, 0, 8, 5, 0, 0, 6, 0})
	}
}

func TestPositiveDiffLongerInputs(t *testing.T) {
	a := testutil.Ramp(10, 12)
	b := testutil.Ones(12)
	dst := make([]float64, 5)
	PositiveDiff4(dst, a, b, Unaligned)
	testutil.RequireBitIdentical(t, dst, []float64{9, 10, 11, 12, 13})
}

func TestAlignedMatchesUnaligned(t *testing.T) {
	for _, k := range widths {
		for _, n := range []int{1, 7, 64, 1000, 1023} {
			a := testutil.DeterministicNoise(int64(n), 100, n)
			b := testutil.DeterministicNoise(int64(n)+1, 100, n)
			aa, ab := alignedCopy(t, a), alignedCopy(t, b)

			u := k.sum(a, 0.5, Unaligned)
			al := k.sum(aa, 0.5, Aligned)
			if math.Float64bits(u) != math.Float64bits(al) {
				t.Fatalf("w=%d n=%d: Sum unaligned %v != aligned %v", k.width, n, u, al)
			}
			testutil.RequireNearlyEqualRel(t, u, scalarSum(a, 0.5), 1e-12)

			du := k.dotProduct(a, b, Unaligned)
			da := k.dotProduct(aa, ab, Aligned)
			if math.Float64bits(du) != math.Float64bits(da) {
				t.Fatalf("w=%d n=%d: DotProduct unaligned %v != aligned %v", k.width, n, du, da)
			}
		}
	}
}

func TestLaneOrder(t *testing.T) {
	// A sequential loop loses the first 1 to 1e16; lane accumulation keeps it.
	x := []float64{1e16, 1, -1e16, 1, 0, 0, 0, 0}
	if got := Sum4(x, 0, Unaligned); got != 2 {
		t.Fatalf("Sum4 = %v, want 2", got)
	}
	if got := Sum2(x[:4], 0, Unaligned); got != 2 {
		t.Fatalf("Sum2 = %v, want 2", got)
	}
	if got := scalarLoop(x); got != 1 {
		t.Fatalf("scalar loop = %v, want 1", got)
	}
}

var sink float64

func scalarLoop(x []float64) float64 {
	var s float64
	for _, v := range x {
		s += v
	}
	return s
}

func BenchmarkSum(b *testing.B) {
	x := testutil.DeterministicNoise(1, 1, 4096)
	b.Run("scalar", func(b *testing.B) {
		b.SetBytes(int64(len(x) * 8))
		for b.Loop() {
			sink = scalarLoop(x)
		}
	})
	for _, k := range widths {
		b.Run(fmt.Sprintf("w=%d", k.width), func(b *testing.B) {
			b.SetBytes(int64(len(x) * 8))
			for b.Loop() {
				sink = k.sum(x, 0, Unaligned)
			}
		})
	}
}
