package generic

import (
	"github.com/cwbudde/algo-simd/cpu"
	"github.com/cwbudde/algo-simd/internal/registry"
)

// init registers the scalar implementations with the kernel registry.
//
// Generic implementations serve as the baseline fallback when no SIMD optimizations
// are available or when ForceGeneric is enabled for testing. Scalar loads carry
// no alignment requirement, so the aligned forms are the same functions.
//
// Priority: 0 (lowest - used only when no SIMD alternatives are available)
func init() {
	registry.Global.Register(registry.OpEntry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,
		Width:     1,

		Sum:                 Sum,
		SumAligned:          Sum,
		DotProduct:          DotProduct,
		DotProductAligned:   DotProduct,
		PositiveDiff:        PositiveDiff,
		PositiveDiffAligned: PositiveDiff,
	})
}
