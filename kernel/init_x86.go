//go:build (386 || amd64) && !purego

package kernel

// This file imports x86-specific implementation packages to trigger
// their init() functions, which register implementations with the global registry.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-simd/internal/arch/generic"

	// x86 implementations
	_ "github.com/cwbudde/algo-simd/internal/arch/avx2"
	_ "github.com/cwbudde/algo-simd/internal/arch/sse2"
)
