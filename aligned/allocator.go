package aligned

// Allocator hands out buffers with a fixed alignment and source. Containers
// hold an Allocator so that every reallocation asks for the same alignment.
type Allocator[T Element] struct {
	alignment int
	cfg       config
}

// NewAllocator returns an allocator for alignment-byte aligned buffers.
func NewAllocator[T Element](alignment int, opts ...Option) (*Allocator[T], error) {
	if err := ValidateAlignment(alignment); err != nil {
		return nil, err
	}
	return &Allocator[T]{alignment: alignment, cfg: applyOptions(opts...)}, nil
}

// Allocate returns a zeroed buffer of count elements.
func (a *Allocator[T]) Allocate(count int) (*Buffer[T], error) {
	return alloc[T](count, a.alignment, a.cfg)
}

// Alignment returns the byte alignment of every buffer from a.
func (a *Allocator[T]) Alignment() int {
	return a.alignment
}

// Source returns the memory source in use.
func (a *Allocator[T]) Source() Source {
	return a.cfg.source
}

// NewVec returns a vector of length zeroed elements backed by a.
func (a *Allocator[T]) NewVec(length int) (*Vec[T], error) {
	v := &Vec[T]{alloc: a}
	if err := v.Resize(length); err != nil {
		return nil, err
	}
	return v, nil
}
