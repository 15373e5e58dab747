// Package aligned allocates numeric buffers whose first element sits on a
// caller-chosen power-of-two byte boundary.
//
// Vector load and store instructions run fastest (and, for the aligned
// instruction forms, only run correctly) when the address is a multiple of
// the register width. Buffer, Allocator and Vec give that guarantee for
// pointer-free element types:
//
//	buf, err := aligned.Alloc[float64](1024, cpu.OptimalAlignment())
//	if err != nil {
//		return err
//	}
//	defer buf.Release()
//
// Memory comes from one of two sources. SourceHeap over-allocates a Go byte
// slice and offsets into it; the garbage collector reclaims it once released.
// SourceOffHeap maps anonymous pages from the operating system (mmap on unix,
// VirtualAlloc on windows) and is returned to the OS by Release, so every such
// buffer must be released exactly once by its owner. Release clears the
// buffer, which makes further calls no-ops.
//
// Vec is a growable sequence container that requests the same alignment on
// every reallocation, and Pool recycles heap-backed vectors in hot loops.
package aligned
