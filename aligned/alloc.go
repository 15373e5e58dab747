package aligned

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"unsafe"
)

var (
	// ErrAllocation is returned when memory cannot be obtained: the system is
	// out of memory, the mapping call failed, or count*sizeof(T) overflows.
	ErrAllocation = errors.New("aligned: allocation failed")

	// ErrConfiguration is returned for an alignment that is not a power of two,
	// is smaller than a pointer or larger than MaxAlignment, and for negative
	// element counts.
	ErrConfiguration = errors.New("aligned: invalid configuration")
)

const (
	// MinAlignment is the smallest accepted alignment (pointer size).
	MinAlignment = int(unsafe.Sizeof(uintptr(0)))

	// MaxAlignment is the largest accepted alignment (one 4 KiB page).
	MaxAlignment = 4096

	// maxAllocBytes bounds a single request; larger sizes cannot be addressed
	// by a Go slice on any supported platform.
	maxAllocBytes = math.MaxInt >> 1
)

// Element constrains buffer contents to pointer-free numeric types. Off-heap
// memory is not scanned by the garbage collector, so it must never hold Go
// pointers.
type Element interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr |
		~float32 | ~float64 | ~complex64 | ~complex128
}

// Buffer is an exclusively owned block of count elements whose first element
// is aligned to Alignment() bytes. It is not safe for concurrent Release.
type Buffer[T Element] struct {
	data      []T
	alignment int
	source    Source

	raw  []byte             // whole reservation
	free func([]byte) error // nil for heap memory
}

// Alloc returns a buffer of count zeroed elements aligned to alignment bytes.
// The buffer must be released with Release once it is no longer used.
func Alloc[T Element](count, alignment int, opts ...Option) (*Buffer[T], error) {
	if err := ValidateAlignment(alignment); err != nil {
		return nil, err
	}
	return alloc[T](count, alignment, applyOptions(opts...))
}

// With allocates a buffer, passes its elements to fn and releases it when fn
// returns. The slice must not be retained after fn returns.
func With[T Element](count, alignment int, fn func([]T) error, opts ...Option) (err error) {
	buf, err := Alloc[T](count, alignment, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := buf.Release(); err == nil {
			err = rerr
		}
	}()
	return fn(buf.Slice())
}

// ValidateAlignment reports ErrConfiguration unless alignment is a power of two
// in [MinAlignment, MaxAlignment].
func ValidateAlignment(alignment int) error {
	if alignment <= 0 || alignment&(alignment-1) != 0 {
		return fmt.Errorf("%w: alignment %d is not a power of two", ErrConfiguration, alignment)
	}
	if alignment < MinAlignment {
		return fmt.Errorf("%w: alignment %d is below pointer size %d", ErrConfiguration, alignment, MinAlignment)
	}
	if alignment > MaxAlignment {
		return fmt.Errorf("%w: alignment %d exceeds %d", ErrConfiguration, alignment, MaxAlignment)
	}
	return nil
}

func alloc[T Element](count, alignment int, cfg config) (*Buffer[T], error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: negative element count %d", ErrConfiguration, count)
	}

	buf := &Buffer[T]{alignment: alignment, source: cfg.source}
	if count == 0 {
		return buf, nil
	}

	var zero T
	hi, size := bits.Mul(uint(count), uint(unsafe.Sizeof(zero)))
	if hi != 0 || size > uint(maxAllocBytes-alignment) {
		return nil, fmt.Errorf("%w: %d elements of %d bytes overflow addressable size",
			ErrAllocation, count, unsafe.Sizeof(zero))
	}
	total := int(size) + alignment - 1

	raw, free, err := reserve(total, cfg.source)
	if err != nil {
		return nil, err
	}

	base := uintptr(unsafe.Pointer(unsafe.SliceData(raw)))
	offset := int(alignUp(base, uintptr(alignment)) - base)
	start := unsafe.Pointer(&raw[offset])

	buf.data = unsafe.Slice((*T)(start), count)
	buf.raw = raw
	buf.free = free
	return buf, nil
}

// reserve obtains total bytes from src.
func reserve(total int, src Source) (raw []byte, free func([]byte) error, err error) {
	if src == SourceOffHeap {
		raw, err = mapRegion(total)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: map %d bytes: %w", ErrAllocation, total, err)
		}
		return raw, unmapRegion, nil
	}

	defer func() {
		// makeslice panics on lengths the runtime cannot represent.
		if r := recover(); r != nil {
			raw, free = nil, nil
			err = fmt.Errorf("%w: %d bytes: %v", ErrAllocation, total, r)
		}
	}()
	return make([]byte, total), nil, nil
}

// Slice returns the buffer's elements. It is empty after Release.
func (b *Buffer[T]) Slice() []T {
	return b.data
}

// Len returns the number of elements.
func (b *Buffer[T]) Len() int {
	return len(b.data)
}

// Alignment returns the guaranteed alignment of the first element in bytes.
func (b *Buffer[T]) Alignment() int {
	return b.alignment
}

// Source reports where the memory came from.
func (b *Buffer[T]) Source() Source {
	return b.source
}

// Ptr returns the address of the first element, or nil for an empty or
// released buffer.
func (b *Buffer[T]) Ptr() unsafe.Pointer {
	if len(b.data) == 0 {
		return nil
	}
	return unsafe.Pointer(unsafe.SliceData(b.data))
}

// Released reports whether the buffer holds no memory, either because it
// was allocated empty or because Release has been called.
func (b *Buffer[T]) Released() bool {
	return b.raw == nil
}

// Release returns the memory to its source. It is the single release point
// for the buffer: the buffer is cleared before the memory is freed, so a
// second call does nothing. Slices obtained from Slice must not be used
// afterwards.
func (b *Buffer[T]) Release() error {
	if b == nil || b.raw == nil {
		return nil
	}
	raw, free := b.raw, b.free
	b.data, b.raw, b.free = nil, nil, nil

	if free == nil {
		return nil
	}
	if err := free(raw); err != nil {
		return fmt.Errorf("aligned: release %d bytes: %w", len(raw), err)
	}
	return nil
}

// IsAligned reports whether p is a multiple of alignment, which must be a
// power of two.
func IsAligned(p unsafe.Pointer, alignment int) bool {
	return uintptr(p)&uintptr(alignment-1) == 0
}

// IsSliceAligned reports whether the first element of s is aligned.
// Empty slices are trivially aligned.
func IsSliceAligned[T any](s []T, alignment int) bool {
	if len(s) == 0 {
		return true
	}
	return IsAligned(unsafe.Pointer(unsafe.SliceData(s)), alignment)
}

// AlignUp rounds n up to the next multiple of alignment (a power of two).
func AlignUp(n, alignment int) int {
	return int(alignUp(uintptr(n), uintptr(alignment)))
}

func alignUp(n, alignment uintptr) uintptr {
	return (n + alignment - 1) &^ (alignment - 1)
}
