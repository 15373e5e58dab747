//go:build purego || !(386 || amd64 || arm64)

package kernel

// This file imports generic implementation packages for unsupported
// architectures and purego builds.

import (
	// Generic implementations (pure Go fallback)
	_ "github.com/cwbudde/algo-simd/internal/arch/generic"
)
