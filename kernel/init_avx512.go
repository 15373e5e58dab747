//go:build amd64 && goexperiment.simd && !purego

package kernel

import (
	// 512-bit implementations exist only on the archsimd build
	_ "github.com/cwbudde/algo-simd/internal/arch/avx512"
)
