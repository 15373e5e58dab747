package aligned

import "fmt"

// minVecCap is the smallest capacity a growing Vec allocates.
const minVecCap = 8

var errNoAllocator = fmt.Errorf("%w: vector has no allocator", ErrConfiguration)

// Vec is a growable sequence whose backing store is always aligned to the
// allocator's boundary. Growth allocates a new aligned buffer, copies the
// elements and releases the old one.
//
// A Vec owns its memory: call Release when done (required for off-heap
// sources). Slices returned by Slice are invalidated by any call that grows
// the vector and by Release.
//
// The zero value is an empty vector with no allocator. It can be read and
// released, but any call that needs memory returns ErrConfiguration; create
// vectors with NewVec, FromSlice or Allocator.NewVec.
type Vec[T Element] struct {
	alloc *Allocator[T]
	buf   *Buffer[T]
	n     int
}

// NewVec returns a vector of length zeroed elements aligned to alignment bytes.
func NewVec[T Element](alignment, length int, opts ...Option) (*Vec[T], error) {
	a, err := NewAllocator[T](alignment, opts...)
	if err != nil {
		return nil, err
	}
	return a.NewVec(length)
}

// FromSlice returns an aligned vector holding a copy of src.
func FromSlice[T Element](alignment int, src []T, opts ...Option) (*Vec[T], error) {
	v, err := NewVec[T](alignment, len(src), opts...)
	if err != nil {
		return nil, err
	}
	copy(v.Slice(), src)
	return v, nil
}

// Slice returns the elements. The first element is aligned to Alignment().
func (v *Vec[T]) Slice() []T {
	if v.buf == nil {
		return nil
	}
	return v.buf.data[:v.n]
}

// Len returns the current number of elements.
func (v *Vec[T]) Len() int {
	return v.n
}

// Cap returns the current capacity of the backing buffer.
func (v *Vec[T]) Cap() int {
	if v.buf == nil {
		return 0
	}
	return v.buf.Len()
}

// Alignment returns the byte alignment of the backing store, or 0 for a
// vector without an allocator.
func (v *Vec[T]) Alignment() int {
	if v.alloc == nil {
		return 0
	}
	return v.alloc.Alignment()
}

// Allocator returns the allocator backing v.
func (v *Vec[T]) Allocator() *Allocator[T] {
	return v.alloc
}

// Reserve ensures capacity is at least n, preserving existing data.
// If the current capacity is already >= n this is a no-op.
func (v *Vec[T]) Reserve(n int) error {
	if n <= v.Cap() {
		return nil
	}
	return v.realloc(n)
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed. Negative n is
// treated as zero.
func (v *Vec[T]) Resize(n int) error {
	if n < 0 {
		n = 0
	}
	if n > v.Cap() {
		if err := v.realloc(n); err != nil {
			return err
		}
	}
	oldLen := v.n
	v.n = n
	// Zero any newly exposed elements that may have stale data from
	// previous use of the backing array.
	if n > oldLen {
		v.ZeroRange(oldLen, n)
	}
	return nil
}

// Append adds vals to the end of the vector, growing geometrically.
func (v *Vec[T]) Append(vals ...T) error {
	if len(vals) == 0 {
		return nil
	}
	need := v.n + len(vals)
	if need > v.Cap() {
		if err := v.realloc(max(need, 2*v.Cap(), minVecCap)); err != nil {
			return err
		}
	}
	copy(v.buf.data[v.n:need], vals)
	v.n = need
	return nil
}

// Zero sets all elements to 0.
func (v *Vec[T]) Zero() {
	clear(v.Slice())
}

// ZeroRange sets elements in [start, end) to 0.
// Indices are clamped to valid bounds.
func (v *Vec[T]) ZeroRange(start, end int) {
	s := v.Slice()
	start = max(start, 0)
	end = min(end, len(s))
	if start >= end {
		return
	}
	clear(s[start:end])
}

// Clone returns a deep copy with the same alignment and source.
func (v *Vec[T]) Clone() (*Vec[T], error) {
	if v.alloc == nil {
		return nil, errNoAllocator
	}
	c, err := v.alloc.NewVec(v.n)
	if err != nil {
		return nil, err
	}
	copy(c.Slice(), v.Slice())
	return c, nil
}

// Release frees the backing buffer and empties the vector. The vector may be
// reused afterwards; it allocates again on growth.
func (v *Vec[T]) Release() error {
	buf := v.buf
	v.buf, v.n = nil, 0
	return buf.Release()
}

// realloc moves the contents into a new buffer of capacity c.
func (v *Vec[T]) realloc(c int) error {
	if v.alloc == nil {
		return errNoAllocator
	}
	nb, err := v.alloc.Allocate(c)
	if err != nil {
		return err
	}
	old := v.buf
	if old != nil {
		copy(nb.data, old.data[:v.n])
	}
	v.buf = nb
	return old.Release()
}
