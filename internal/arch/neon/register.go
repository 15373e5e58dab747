//go:build arm64 && !purego

package neon

import (
	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/internal/registry"
)

// init registers the 128-bit NEON implementations with the kernel registry.
//
// NEON (ASIMD) is mandatory on ARMv8, so this entry is always selected on arm64
// unless ForceGeneric is set.
//
// Priority: 15
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "neon",
		SIMDLevel: cpu.SIMDNEON,
		Priority:  15,
		Width:     Width,

		Sum:                 Sum,
		SumAligned:          SumAligned,
		DotProduct:          DotProduct,
		DotProductAligned:   DotProductAligned,
		PositiveDiff:        PositiveDiff,
		PositiveDiffAligned: PositiveDiffAligned,
	})
}
