package buffer

import (
	"unsafe"

	"github.com/joshuapare/rawvec/internal/alloc"
	"github.com/joshuapare/rawvec/internal/buf"
)

// Room ensures capacity for one more element.
func (b *Buffer[T, L]) Room() error {
	need, ok := buf.AddCount(b.size, 1)
	if !ok {
		return alloc.ErrOverflow
	}
	return b.Ensure(need)
}

// Push appends v, growing first if the buffer is full. The buffer takes
// ownership of v.
func (b *Buffer[T, L]) Push(v T) error {
	if err := b.Room(); err != nil {
		return err
	}
	var p L
	p.Assign(&b.slots[b.size], v)
	b.size++
	return nil
}

// Pop destroys the last element. Len must be positive.
func (b *Buffer[T, L]) Pop() {
	b.size--
	b.vacate(b.size, b.size+1)
}

// Insert stores v at index i in [0, Len()], shifting [i, Len()) one slot to
// the right. Capacity is ensured before anything moves.
func (b *Buffer[T, L]) Insert(i int, v T) error {
	if err := b.Room(); err != nil {
		return err
	}
	var p L
	p.ShiftRight(b.slots[i : b.size+1])
	p.Assign(&b.slots[i], v)
	b.size++
	return nil
}

// Erase destroys the element at index i in [0, Len()) and shifts the rest
// one slot to the left.
func (b *Buffer[T, L]) Erase(i int) {
	var p L
	p.ShiftLeft(b.slots[i:b.size])
	b.size--
	b.vacate(b.size, b.size+1)
}

// Set replaces the element at index i in [0, Len()), releasing the old one.
func (b *Buffer[T, L]) Set(i int, v T) {
	var p L
	p.Assign(&b.slots[i], v)
}

// Discard destroys a value that was never stored in the buffer, such as a
// copy whose insertion failed.
func (b *Buffer[T, L]) Discard(v *T) {
	var p L
	p.Destroy(unsafe.Slice(v, 1))
}

// CopyValue returns an independent copy of *src under the buffer's policy.
func (b *Buffer[T, L]) CopyValue(src *T) T {
	var p L
	return p.CopyValue(src)
}
