//go:build (386 || amd64) && !purego

package sse2

import (
	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/internal/registry"
)

// init registers the 128-bit implementations with the kernel registry.
//
// SSE2 is part of the x86-64 baseline, so this entry is the floor on amd64
// even when AVX is disabled by the OS.
//
// Priority: 10 (preferred over generic)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "sse2",
		SIMDLevel: cpu.SIMDSSE2,
		Priority:  10,
		Width:     Width,

		Sum:                 Sum,
		SumAligned:          SumAligned,
		DotProduct:          DotProduct,
		DotProductAligned:   DotProductAligned,
		PositiveDiff:        PositiveDiff,
		PositiveDiffAligned: PositiveDiffAligned,
	})
}
