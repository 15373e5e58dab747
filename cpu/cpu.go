// Package cpu provides CPU feature detection for vector kernel selection.
//
// This package probes the executing processor for SIMD instruction set
// extensions (SSE through AVX-512 on x86, NEON on arm64), records the vendor and
// brand strings, and derives the memory alignment that best suits the widest
// usable vector unit.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
// A platform whose hardware query is unavailable reports no extensions; this is
// not an error and only limits dispatch to scalar code.
package cpu

import (
	"sync"
)

// SIMDLevel represents a SIMD instruction set extension level.
// Higher numeric values generally indicate more advanced SIMD capabilities,
// but levels are not strictly comparable across architectures (e.g., AVX2 vs NEON).
type SIMDLevel int

const (
	// SIMDNone indicates no SIMD optimization (pure Go fallback).
	SIMDNone SIMDLevel = iota

	// SIMDSSE2 indicates x86 SSE2 (baseline for amd64, 128-bit).
	SIMDSSE2

	// SIMDAVX indicates x86 AVX (256-bit floating point).
	SIMDAVX

	// SIMDAVX2 indicates x86 AVX2 (256-bit integer and floating point).
	SIMDAVX2

	// SIMDAVX512 indicates x86 AVX-512 Foundation (512-bit vectors).
	SIMDAVX512

	// SIMDNEON indicates ARM NEON / Advanced SIMD (128-bit).
	SIMDNEON

	// SIMDSVE indicates ARM SVE (Scalable Vector Extension, not dispatched yet).
	SIMDSVE
)

// String returns a human-readable name for the SIMD level.
func (s SIMDLevel) String() string {
	switch s {
	case SIMDNone:
		return "None"
	case SIMDSSE2:
		return "SSE2"
	case SIMDAVX:
		return "AVX"
	case SIMDAVX2:
		return "AVX2"
	case SIMDAVX512:
		return "AVX-512"
	case SIMDNEON:
		return "NEON"
	case SIMDSVE:
		return "SVE"
	default:
		return "Unknown"
	}
}

// Baseline alignments in bytes, indexed by the widest usable vector register.
const (
	AlignmentBaseline = 16
	AlignmentAVX      = 32
	AlignmentAVX512   = 64
)

// Features describes CPU capabilities relevant to kernel selection.
//
// The Has* fields hold the raw probe results. Vendor-exclusive extensions are
// scoped by Has and the package-level queries, so a raw bit reported by a
// processor of another vendor never enables them.
type Features struct {
	// Identification
	Vendor       Vendor // Normalised vendor
	VendorString string // Raw vendor identifier (e.g., "GenuineIntel")
	BrandName    string // Processor brand string

	// x86 SIMD features
	HasSSE      bool // Streaming SIMD Extensions
	HasSSE2     bool // SSE2 (baseline for amd64)
	HasSSE3     bool // SSE3
	HasSSSE3    bool // Supplemental SSE3
	HasSSE41    bool // SSE4.1
	HasSSE42    bool // SSE4.2
	HasSSE4A    bool // SSE4a (AMD only)
	HasAVX      bool // Advanced Vector Extensions
	HasAVX2     bool // Advanced Vector Extensions 2
	HasFMA3     bool // Fused multiply-add, three operand
	HasFMA4     bool // Fused multiply-add, four operand (AMD only)
	HasXOP      bool // Extended operations (AMD only)
	HasAVX512F  bool // AVX-512 Foundation
	HasAVX512CD bool // AVX-512 Conflict Detection
	HasAVX512BW bool // AVX-512 Byte and Word
	HasAVX512DQ bool // AVX-512 Doubleword and Quadword
	HasAVX512VL bool // AVX-512 Vector Length
	HasAVX512ER bool // AVX-512 Exponential and Reciprocal (Intel only)
	HasAVX512PF bool // AVX-512 Prefetch (Intel only)

	// ARM SIMD features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// Control flags
	ForceGeneric bool // Disable all SIMD optimizations (for testing/debugging)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex

	// probe is the platform hardware query. Tests replace it to count calls
	// or simulate a failing query.
	probe = detectFeaturesImpl
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = safeProbe()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// safeProbe runs the platform query and degrades to an empty feature set
// if the query faults.
func safeProbe() (f Features) {
	defer func() {
		if recover() != nil {
			f = unknownFeatures()
		}
	}()
	return probe()
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// OptimalAlignment returns the buffer alignment in bytes that suits the widest
// usable vector register: 64 with AVX-512 Foundation, 32 with AVX or AVX2,
// 16 otherwise.
func (f Features) OptimalAlignment() int {
	switch {
	case f.ForceGeneric:
		return AlignmentBaseline
	case f.HasAVX512F:
		return AlignmentAVX512
	case f.HasAVX2 || f.HasAVX:
		return AlignmentAVX
	default:
		return AlignmentBaseline
	}
}

// Level returns the most capable SIMD level supported by f.
func (f Features) Level() SIMDLevel {
	for _, level := range []SIMDLevel{SIMDAVX512, SIMDAVX2, SIMDAVX, SIMDNEON, SIMDSSE2} {
		if Supports(f, level) {
			return level
		}
	}
	return SIMDNone
}

// Supports returns true if the given CPU features support the specified SIMD level.
// This function is used by the kernel registry to determine implementation compatibility.
func Supports(features Features, level SIMDLevel) bool {
	if features.ForceGeneric {
		return level == SIMDNone
	}

	switch level {
	case SIMDNone:
		return true
	case SIMDSSE2:
		return features.HasSSE2
	case SIMDAVX:
		return features.HasAVX
	case SIMDAVX2:
		return features.HasAVX2
	case SIMDAVX512:
		return features.HasAVX512F
	case SIMDNEON:
		return features.HasNEON
	case SIMDSVE:
		// SVE not yet supported
		return false
	default:
		return false
	}
}
