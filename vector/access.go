package vector

import (
	"github.com/joshuapare/rawvec/internal/buf"
	"github.com/joshuapare/rawvec/pkg/types"
)

// At returns a pointer to the element at index i, or ErrIndexOutOfRange
// when i is outside [0, Len()). The pointer is valid until the next
// capacity change.
func (v *Vector[T, L]) At(i int) (*T, error) {
	if !buf.InRange(i, v.buf.Len()) {
		return nil, types.IndexError("at", i, v.buf.Len())
	}
	return &v.buf.Live()[i], nil
}

// Get returns the element at index i. It panics if i is outside
// [0, Len()).
func (v *Vector[T, L]) Get(i int) T {
	return v.buf.Live()[i]
}

// Ptr returns a pointer to the element at index i. It panics if i is
// outside [0, Len()).
func (v *Vector[T, L]) Ptr(i int) *T {
	return &v.buf.Live()[i]
}

// Set replaces the element at index i, releasing the old one and taking
// ownership of x. It panics if i is outside [0, Len()).
func (v *Vector[T, L]) Set(i int, x T) {
	_ = v.buf.Live()[i]
	v.buf.Set(i, x)
}

// Front returns a pointer to the first element.
func (v *Vector[T, L]) Front() (*T, error) {
	if v.buf.Len() == 0 {
		return nil, types.EmptyError("front")
	}
	return &v.buf.Live()[0], nil
}

// Back returns a pointer to the last element.
func (v *Vector[T, L]) Back() (*T, error) {
	n := v.buf.Len()
	if n == 0 {
		return nil, types.EmptyError("back")
	}
	return &v.buf.Live()[n-1], nil
}
