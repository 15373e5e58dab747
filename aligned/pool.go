package aligned

import "sync"

// Pool provides sync.Pool-based Vec reuse for scratch buffers in hot loops.
// Pooled vectors always come from the Go heap: the pool may drop entries at
// any time and off-heap memory would never be unmapped.
type Pool[T Element] struct {
	alloc *Allocator[T]
	pool  sync.Pool
}

// NewPool returns a Pool handing out vectors aligned to alignment bytes.
func NewPool[T Element](alignment int) (*Pool[T], error) {
	a, err := NewAllocator[T](alignment, WithSource(SourceHeap))
	if err != nil {
		return nil, err
	}
	p := &Pool[T]{alloc: a}
	p.pool.New = func() any {
		return &Vec[T]{alloc: a}
	}
	return p, nil
}

// Alignment returns the alignment of every vector from p.
func (p *Pool[T]) Alignment() int {
	return p.alloc.Alignment()
}

// Get returns a Vec with the requested length. The vector is zeroed.
// Callers must return it via Put when done.
func (p *Pool[T]) Get(length int) (*Vec[T], error) {
	v := p.pool.Get().(*Vec[T])
	if err := v.Resize(length); err != nil {
		p.pool.Put(v)
		return nil, err
	}
	v.Zero()
	return v, nil
}

// Put returns a Vec to the pool for reuse. Vectors from other allocators are
// ignored. The caller must not use the vector after calling Put.
func (p *Pool[T]) Put(v *Vec[T]) {
	if v == nil || v.alloc != p.alloc {
		return
	}
	p.pool.Put(v)
}
