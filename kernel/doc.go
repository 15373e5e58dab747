// Package kernel executes float64 reduce-sum, inner product and elementwise
// positive difference on the fastest implementation the CPU supports.
//
// Each primitive exists in three tiers:
//
//   - TierScalar: a plain loop, always available.
//   - TierVectorUnaligned: blocked vector loop with ordinary loads.
//   - TierVectorAligned: the same loop with whole-register loads, used only
//     when every operand starts on a vector-width boundary.
//
// The auto-selecting entry points choose the vector implementation from the
// detected CPU features and pick the aligned tier only when alignment is proven,
// either by the container type (aligned.Vec with a large enough alignment) or by
// checking the operand addresses. The Tier variants let callers force a tier for
// benchmarking and testing.
//
// Results within one tier are bit-identical across repeated calls and across
// the aligned and unaligned vector tiers of the same width. Scalar and vector
// results may differ in the last bits because the summation order differs.
//
// Mismatched operand lengths are a programming error: every entry point panics
// with an error wrapping ErrLengthMismatch before any element is read.
//
// Kernels are synchronous and single-threaded. A Dispatcher is immutable after
// New, so concurrent calls on independent buffers need no locking.
package kernel
