// Package registry provides the implementation registry for the numeric kernels.
//
// The registry-based dispatch system allows multiple implementation variants
// (generic, SSE2, AVX2, AVX-512, NEON) to coexist. The best implementation for
// the current CPU is selected at runtime.
//
// Architecture-specific implementations register themselves via init() functions,
// and the kernel package uses the registry to select the best implementation
// based on detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-simd/cpu"
)

// SumFunc reduces x to init + sum(x[i]).
type SumFunc func(x []float64, init float64) float64

// DotProductFunc returns sum(a[i] * b[i]). Callers guarantee len(a) == len(b).
type DotProductFunc func(a, b []float64) float64

// PositiveDiffFunc writes dst[i] = max(a[i]-b[i], 0). Callers guarantee equal lengths.
type PositiveDiffFunc func(dst, a, b []float64)

// OpEntry represents a registered implementation variant.
//
// Vector entries carry two forms of each operation: one that loads through
// ordinary (unaligned) accesses and one that requires every operand to start on
// a Width*8 byte boundary. The aligned forms must only be called once that
// alignment has been established by the caller.
type OpEntry struct {
	// Name is a human-readable identifier for this implementation (e.g., "avx2", "neon").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this implementation.
	SIMDLevel cpu.SIMDLevel

	// Priority determines selection order when multiple compatible implementations exist.
	// Higher priority implementations are preferred. Suggested priorities:
	//   - Generic (SIMDNone): 0
	//   - SSE2: 10
	//   - AVX/NEON: 15
	//   - AVX2: 20
	//   - AVX-512: 30
	Priority int

	// Width is the number of float64 lanes per vector register; 1 for scalar code.
	Width int

	// Sum returns init plus the sum of all elements.
	Sum        SumFunc
	SumAligned SumFunc

	// DotProduct returns the inner product of two equal-length slices.
	DotProduct        DotProductFunc
	DotProductAligned DotProductFunc

	// PositiveDiff performs element-wise rectified subtraction.
	PositiveDiff        PositiveDiffFunc
	PositiveDiffAligned PositiveDiffFunc
}

// VectorBytes returns the register size in bytes, which is also the alignment
// the aligned forms require.
func (e *OpEntry) VectorBytes() int {
	return e.Width * 8
}

// IsVector reports whether the entry processes more than one lane at a time.
func (e *OpEntry) IsVector() bool {
	return e.Width > 1
}

// Complete reports whether every operation is populated.
func (e *OpEntry) Complete() bool {
	return e.Sum != nil && e.SumAligned != nil &&
		e.DotProduct != nil && e.DotProductAligned != nil &&
		e.PositiveDiff != nil && e.PositiveDiffAligned != nil
}

// OpRegistry manages the registration and lookup of implementation variants.
//
// Implementations register themselves via init() functions. At runtime, Lookup()
// selects the highest-priority implementation compatible with the current CPU.
type OpRegistry struct {
	mu      sync.RWMutex
	entries []OpEntry
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the kernel package.
var Global = &OpRegistry{}

// Register adds an implementation variant to the registry.
//
// This function is typically called from init() functions in architecture-specific
// implementation packages. It is safe to call concurrently, but all registrations
// should complete before the first call to Lookup().
func (r *OpRegistry) Register(entry OpEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best implementation variant for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU. If no compatible
// implementations are found, returns nil (which should never happen if a generic
// fallback is registered).
//
// This function is thread-safe and performs lazy sorting of entries on first call.
func (r *OpRegistry) Lookup(features cpu.Features) *OpEntry {
	r.mu.Lock()
	if !r.sorted {
		// Sort entries by priority (descending) for efficient lookup
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	// Find highest priority compatible implementation
	for i := range r.entries {
		entry := r.entries[i]
		if cpu.Supports(features, entry.SIMDLevel) {
			return &entry
		}
	}

	return nil // Should never happen if generic fallback is registered
}

// LookupName returns the entry registered under name, regardless of CPU support.
func (r *OpRegistry) LookupName(name string) *OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		if r.entries[i].Name == name {
			entry := r.entries[i]
			return &entry
		}
	}
	return nil
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *OpRegistry) sortByPriority() {
	// Simple insertion sort (registry is small, ~3-5 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}

// ListEntries returns a copy of all registered entries.
// This function is primarily intended for testing and debugging.
func (r *OpRegistry) ListEntries() []OpEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]OpEntry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *OpRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
