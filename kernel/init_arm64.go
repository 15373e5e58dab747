//go:build arm64 && !purego

package kernel

// This file imports arm64-specific implementation packages to trigger
// their init() functions, which register implementations with the global registry.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-simd/internal/arch/generic"

	// ARM64 implementations
	_ "github.com/cwbudde/algo-simd/internal/arch/neon"
)
