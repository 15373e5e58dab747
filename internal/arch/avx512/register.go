//go:build amd64 && goexperiment.simd && !purego

package avx512

import (
	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/internal/registry"
)

// Width is the number of float64 lanes in a 512-bit register.
const Width = 8

// init registers the 512-bit implementations with the kernel registry.
//
// Requires AVX-512 Foundation with OS support for the ZMM register state.
// Only built with GOEXPERIMENT=simd; without it there is no 512-bit code
// path faster than the avx2 entry.
//
// Priority: 30 (highest on x86)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "avx512",
		SIMDLevel: cpu.SIMDAVX512,
		Priority:  30,
		Width:     Width,

		Sum:                 Sum,
		SumAligned:          SumAligned,
		DotProduct:          DotProduct,
		DotProductAligned:   DotProductAligned,
		PositiveDiff:        PositiveDiff,
		PositiveDiffAligned: PositiveDiffAligned,
	})
}
