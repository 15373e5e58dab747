//go:build (386 || amd64) && !purego

package avx2

import (
	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/internal/registry"
)

// Width is the number of float64 lanes in a 256-bit register.
const Width = 4

// init registers the 256-bit implementations with the kernel registry.
//
// AVX2 is available on Intel Haswell (2013+) and AMD Excavator (2015+).
// Built with GOEXPERIMENT=simd the kernels use simd/archsimd; otherwise they
// call vek's AVX2 assembly and fall back to 4-lane Go loops when vek reports
// no acceleration.
//
// Priority: 20 (preferred over SSE2 and generic when available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx2",
		SIMDLevel: cpu.SIMDAVX2,
		Priority:  20,
		Width:     Width,

		Sum:                 Sum,
		SumAligned:          SumAligned,
		DotProduct:          DotProduct,
		DotProductAligned:   DotProductAligned,
		PositiveDiff:        PositiveDiff,
		PositiveDiffAligned: PositiveDiffAligned,
	})
}
