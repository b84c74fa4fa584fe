package vector

import (
	"github.com/joshuapare/rawvec/internal/buf"
	"github.com/joshuapare/rawvec/pkg/types"
)

// PushBack appends x, taking ownership of it. On failure the caller keeps
// ownership of x and the vector is unchanged.
func (v *Vector[T, L]) PushBack(x T) error {
	if err := v.buf.Push(x); err != nil {
		return types.AllocationError("push_back", err)
	}
	return nil
}

// PushBackCopy appends an independent copy of *x. x may point into v.
func (v *Vector[T, L]) PushBackCopy(x *T) error {
	// Copy before growing: a relocation empties the slot x may point at.
	c := v.buf.CopyValue(x)
	if err := v.buf.Push(c); err != nil {
		v.buf.Discard(&c)
		return types.AllocationError("push_back", err)
	}
	return nil
}

// PopBack destroys the last element.
func (v *Vector[T, L]) PopBack() error {
	if v.buf.Len() == 0 {
		return types.EmptyError("pop_back")
	}
	v.buf.Pop()
	return nil
}

// Insert stores x at index i, shifting the elements at and after i one
// position to the right. i may equal Len to append.
func (v *Vector[T, L]) Insert(i int, x T) error {
	n := v.buf.Len()
	if !buf.InRangeInclusive(i, n) {
		return types.IndexError("insert", i, n+1)
	}
	if err := v.buf.Insert(i, x); err != nil {
		return types.AllocationError("insert", err)
	}
	return nil
}

// InsertCopy stores an independent copy of *x at index i. x may point
// into v.
func (v *Vector[T, L]) InsertCopy(i int, x *T) error {
	n := v.buf.Len()
	if !buf.InRangeInclusive(i, n) {
		return types.IndexError("insert", i, n+1)
	}
	c := v.buf.CopyValue(x)
	if err := v.buf.Insert(i, c); err != nil {
		v.buf.Discard(&c)
		return types.AllocationError("insert", err)
	}
	return nil
}

// Erase destroys the element at index i and shifts the following elements
// one position to the left.
func (v *Vector[T, L]) Erase(i int) error {
	n := v.buf.Len()
	if !buf.InRange(i, n) {
		return types.IndexError("erase", i, n)
	}
	v.buf.Erase(i)
	return nil
}

// InsertAt inserts x at the position of it and returns an iterator to the
// inserted element. it is invalidated.
func (v *Vector[T, L]) InsertAt(it Iterator[T], x T) (Iterator[T], error) {
	i := it.Index()
	if err := v.Insert(i, x); err != nil {
		return Iterator[T]{}, err
	}
	return v.at(i, 1), nil
}

// EraseAt erases the element at the position of it and returns an iterator
// to the element that now occupies that position, or End(). it is
// invalidated.
func (v *Vector[T, L]) EraseAt(it Iterator[T]) (Iterator[T], error) {
	i := it.Index()
	if err := v.Erase(i); err != nil {
		return Iterator[T]{}, err
	}
	return v.at(i, 1), nil
}

// Clear destroys every element and installs a fresh single-slot buffer.
func (v *Vector[T, L]) Clear() {
	v.buf.Reset()
}

// Reserve grows the capacity to exactly n when n exceeds it. It never
// shrinks and never changes Len.
func (v *Vector[T, L]) Reserve(n int) error {
	if err := v.buf.Reserve(n); err != nil {
		return types.AllocationError("reserve", err)
	}
	return nil
}

// ShrinkToFit reduces the capacity to Len, or to 1 when the vector is
// empty. Calling it twice has the same effect as calling it once.
func (v *Vector[T, L]) ShrinkToFit() error {
	if err := v.buf.ShrinkToFit(); err != nil {
		return types.AllocationError("shrink_to_fit", err)
	}
	return nil
}

// Resize sets Len to n. Growing appends default elements; shrinking
// destroys the elements past n.
func (v *Vector[T, L]) Resize(n int) error {
	if n < 0 {
		return types.ArgumentError("resize: negative size %d", n)
	}
	if err := v.buf.Resize(n); err != nil {
		return types.AllocationError("resize", err)
	}
	return nil
}
