package vector

import (
	"cmp"
	"iter"
)

// Iterator is a non-owning cursor into a vector's buffer. Forward
// iterators move toward higher indexes; reverse iterators (from RBegin and
// REnd) move toward lower ones, so Next always walks the sequence in its
// iteration order.
//
// An Iterator holds a snapshot of the elements present when it was
// created; it never reaches the unused slots past Len. Any capacity change
// of the vector, or an Insert or Erase at or before its position,
// invalidates it. Reading an invalidated iterator does not fault but yields
// unspecified values.
type Iterator[T any] struct {
	slots []T
	pos   int
	step  int
}

func (v *Vector[T, L]) at(pos, step int) Iterator[T] {
	return Iterator[T]{slots: v.buf.Live(), pos: pos, step: step}
}

// Begin returns an iterator to the first element.
func (v *Vector[T, L]) Begin() Iterator[T] { return v.at(0, 1) }

// End returns an iterator one past the last element.
func (v *Vector[T, L]) End() Iterator[T] { return v.at(v.buf.Len(), 1) }

// RBegin returns a reverse iterator to the last element.
func (v *Vector[T, L]) RBegin() Iterator[T] { return v.at(v.buf.Len()-1, -1) }

// REnd returns a reverse iterator one before the first element.
func (v *Vector[T, L]) REnd() Iterator[T] { return v.at(-1, -1) }

func (it Iterator[T]) dir() int {
	if it.step == 0 {
		return 1
	}
	return it.step
}

// Index returns the buffer index the iterator points at.
func (it Iterator[T]) Index() int { return it.pos }

// Reverse reports whether the iterator walks toward lower indexes.
func (it Iterator[T]) Reverse() bool { return it.dir() < 0 }

// Ptr returns a pointer to the element under the iterator. It panics when
// the iterator is outside the elements it was created over, as End and REnd
// are.
func (it Iterator[T]) Ptr() *T { return &it.slots[it.pos] }

// Value returns the element under the iterator. It panics where Ptr does.
func (it Iterator[T]) Value() T { return it.slots[it.pos] }

// Next returns the iterator advanced by one in its direction.
func (it Iterator[T]) Next() Iterator[T] { return it.Add(1) }

// Prev returns the iterator moved back by one.
func (it Iterator[T]) Prev() Iterator[T] { return it.Add(-1) }

// Add returns the iterator advanced by n in its direction.
func (it Iterator[T]) Add(n int) Iterator[T] {
	it.pos += n * it.dir()
	return it
}

// Sub returns the iterator moved back by n.
func (it Iterator[T]) Sub(n int) Iterator[T] { return it.Add(-n) }

// Diff returns the number of steps from o to it, so that o.Add(it.Diff(o))
// equals it.
func (it Iterator[T]) Diff(o Iterator[T]) int {
	return (it.pos - o.pos) * it.dir()
}

// Compare orders two iterators of the same buffer and direction: -1 when
// it comes first in iteration order, +1 when it comes later, 0 when equal.
func (it Iterator[T]) Compare(o Iterator[T]) int {
	return cmp.Compare(it.pos*it.dir(), o.pos*o.dir())
}

// Equal reports whether both iterators point at the same slot of the same
// buffer.
func (it Iterator[T]) Equal(o Iterator[T]) bool {
	return it.pos == o.pos && sameBuffer(it.slots, o.slots)
}

// Less reports whether it comes before o in iteration order.
func (it Iterator[T]) Less(o Iterator[T]) bool { return it.Compare(o) < 0 }

// LessEqual reports whether it comes before o or equals it.
func (it Iterator[T]) LessEqual(o Iterator[T]) bool { return it.Compare(o) <= 0 }

// Greater reports whether it comes after o in iteration order.
func (it Iterator[T]) Greater(o Iterator[T]) bool { return it.Compare(o) > 0 }

// GreaterEqual reports whether it comes after o or equals it.
func (it Iterator[T]) GreaterEqual(o Iterator[T]) bool { return it.Compare(o) >= 0 }

func sameBuffer[T any](a, b []T) bool {
	if cap(a) == 0 || cap(b) == 0 {
		return cap(a) == cap(b)
	}
	return &a[:1][0] == &b[:1][0]
}

// ConstIterator is a read-only Iterator. Its methods behave like the
// Iterator methods of the same name; there is no Ptr.
type ConstIterator[T any] struct {
	it Iterator[T]
}

// CBegin returns a read-only iterator to the first element.
func (v *Vector[T, L]) CBegin() ConstIterator[T] { return ConstIterator[T]{v.Begin()} }

// CEnd returns a read-only iterator one past the last element.
func (v *Vector[T, L]) CEnd() ConstIterator[T] { return ConstIterator[T]{v.End()} }

// CRBegin returns a read-only reverse iterator to the last element.
func (v *Vector[T, L]) CRBegin() ConstIterator[T] { return ConstIterator[T]{v.RBegin()} }

// CREnd returns a read-only reverse iterator one before the first element.
func (v *Vector[T, L]) CREnd() ConstIterator[T] { return ConstIterator[T]{v.REnd()} }

// Index returns the buffer index the iterator points at.
func (c ConstIterator[T]) Index() int { return c.it.Index() }

// Reverse reports whether the iterator walks toward lower indexes.
func (c ConstIterator[T]) Reverse() bool { return c.it.Reverse() }

// Value returns the element under the iterator.
func (c ConstIterator[T]) Value() T { return c.it.Value() }

// Next returns the iterator advanced by one in its direction.
func (c ConstIterator[T]) Next() ConstIterator[T] { return ConstIterator[T]{c.it.Next()} }

// Prev returns the iterator moved back by one.
func (c ConstIterator[T]) Prev() ConstIterator[T] { return ConstIterator[T]{c.it.Prev()} }

// Add returns the iterator advanced by n in its direction.
func (c ConstIterator[T]) Add(n int) ConstIterator[T] { return ConstIterator[T]{c.it.Add(n)} }

// Sub returns the iterator moved back by n.
func (c ConstIterator[T]) Sub(n int) ConstIterator[T] { return ConstIterator[T]{c.it.Sub(n)} }

// Diff returns the number of steps from o to c.
func (c ConstIterator[T]) Diff(o ConstIterator[T]) int { return c.it.Diff(o.it) }

// Compare orders c and o as Iterator.Compare does.
func (c ConstIterator[T]) Compare(o ConstIterator[T]) int { return c.it.Compare(o.it) }

// Equal reports whether c and o point at the same slot of the same buffer.
func (c ConstIterator[T]) Equal(o ConstIterator[T]) bool { return c.it.Equal(o.it) }

// Less reports whether c comes before o in iteration order.
func (c ConstIterator[T]) Less(o ConstIterator[T]) bool { return c.it.Less(o.it) }

// LessEqual reports whether c comes before o or equals it.
func (c ConstIterator[T]) LessEqual(o ConstIterator[T]) bool { return c.it.LessEqual(o.it) }

// Greater reports whether c comes after o in iteration order.
func (c ConstIterator[T]) Greater(o ConstIterator[T]) bool { return c.it.Greater(o.it) }

// GreaterEqual reports whether c comes after o or equals it.
func (c ConstIterator[T]) GreaterEqual(o ConstIterator[T]) bool { return c.it.GreaterEqual(o.it) }

// All yields index/element pairs in order. The sequence walks a snapshot
// of the elements present when iteration starts.
func (v *Vector[T, L]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.buf.Live() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Values yields the elements in order.
func (v *Vector[T, L]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range v.buf.Live() {
			if !yield(x) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from the last element to the first.
func (v *Vector[T, L]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		live := v.buf.Live()
		for i := len(live) - 1; i >= 0; i-- {
			if !yield(i, live[i]) {
				return
			}
		}
	}
}
