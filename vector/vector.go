package vector

import (
	"github.com/joshuapare/rawvec/internal/alloc"
	"github.com/joshuapare/rawvec/internal/buffer"
	"github.com/joshuapare/rawvec/lifecycle"
	"github.com/joshuapare/rawvec/pkg/types"
)

// Vector is a growable array of T whose element lifecycle is handled by L.
// The zero value holds no buffer and is ready to use.
type Vector[T any, L lifecycle.Policy[T]] struct {
	buf buffer.Buffer[T, L]
}

// Values is a vector of trivial elements.
type Values[T any] = Vector[T, lifecycle.Trivial[T]]

// Resources is a vector of managed elements.
type Resources[T any, PT lifecycle.Resource[T]] = Vector[T, lifecycle.Managed[T, PT]]

// New returns an empty vector with capacity 1 and default options.
func New[T any, L lifecycle.Policy[T]]() *Vector[T, L] {
	return &Vector[T, L]{buf: buffer.Seeded[T, L](DefaultOptions().bufferConfig())}
}

// NewValues returns an empty vector of trivial elements.
func NewValues[T any]() *Values[T] {
	return New[T, lifecycle.Trivial[T]]()
}

// NewResources returns an empty vector of managed elements.
func NewResources[T any, PT lifecycle.Resource[T]]() *Resources[T, PT] {
	return New[T, lifecycle.Managed[T, PT]]()
}

// NewWithOptions returns an empty vector configured by opts. A nil opts
// means DefaultOptions().
func NewWithOptions[T any, L lifecycle.Policy[T]](opts *Options) (*Vector[T, L], error) {
	return NewSized[T, L](0, opts)
}

// NewSized returns a vector holding n default elements: zero values for
// trivial types, initialized ones for managed types. The capacity is the
// configured initial capacity doubled until it covers n.
func NewSized[T any, L lifecycle.Policy[T]](n int, opts *Options) (*Vector[T, L], error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	if n < 0 {
		return nil, types.ArgumentError("vector: negative size %d", n)
	}
	if err := opts.validate(alloc.ElemSize[T]()); err != nil {
		return nil, err
	}
	capacity, err := alloc.Grow(max(opts.InitialCapacity, 1), n)
	if err != nil {
		return nil, types.AllocationError("new", err)
	}
	b, err := buffer.New[T, L](capacity, opts.bufferConfig())
	if err != nil {
		return nil, types.AllocationError("new", err)
	}
	// Capacity already covers n, so Resize only moves the boundary.
	if err := b.Resize(n); err != nil {
		b.Release()
		return nil, types.AllocationError("new", err)
	}
	return &Vector[T, L]{buf: b}, nil
}

// Len returns the number of elements.
func (v *Vector[T, L]) Len() int { return v.buf.Len() }

// Cap returns the number of allocated slots.
func (v *Vector[T, L]) Cap() int { return v.buf.Cap() }

// Empty reports whether Len is zero.
func (v *Vector[T, L]) Empty() bool { return v.buf.Len() == 0 }

// IsTrivial reports whether T is handled by a trivial lifecycle policy.
func (v *Vector[T, L]) IsTrivial() bool { return v.buf.Trivial() }

// Close destroys every element and drops the buffer. The vector can be
// reused afterwards; it behaves like the zero value.
func (v *Vector[T, L]) Close() {
	v.buf.Release()
}

// Clone returns an independent deep copy with the same length, capacity
// and options.
func (v *Vector[T, L]) Clone() (*Vector[T, L], error) {
	b, err := v.buf.Clone(v.buf.Config().MaxBytes)
	if err != nil {
		return nil, types.AllocationError("clone", err)
	}
	return &Vector[T, L]{buf: b}, nil
}

// CopyAssign replaces v's elements with a deep copy of src's. The copy is
// built before v's elements are destroyed, so on failure v is unchanged.
// Assigning a vector to itself does nothing.
func (v *Vector[T, L]) CopyAssign(src *Vector[T, L]) error {
	if err := v.buf.CopyFrom(&src.buf); err != nil {
		return types.AllocationError("copy_assign", err)
	}
	return nil
}

// Move transfers v's buffer to a new vector and leaves v empty with a
// fresh single-slot buffer.
func (v *Vector[T, L]) Move() *Vector[T, L] {
	return &Vector[T, L]{buf: v.buf.Take()}
}

// MoveAssign destroys v's elements, takes over src's buffer and leaves src
// empty with a fresh single-slot buffer. Moving a vector onto itself does
// nothing.
func (v *Vector[T, L]) MoveAssign(src *Vector[T, L]) {
	v.buf.MoveFrom(&src.buf)
}

// Swap exchanges the contents of v and o in O(1). Options stay with their
// vectors.
func (v *Vector[T, L]) Swap(o *Vector[T, L]) {
	v.buf.Swap(&o.buf)
}
