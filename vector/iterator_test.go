package vector

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filled(t *testing.T, xs ...int) *Values[int] {
	t.Helper()
	v := NewValues[int]()
	for _, x := range xs {
		require.NoError(t, v.PushBack(x))
	}
	return v
}

func TestIterator_ForwardWalk(t *testing.T) {
	v := filled(t, 1, 2, 3, 4)
	var got []int
	for it := v.Begin(); !it.Equal(v.End()); it = it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	assert.Equal(t, 4, v.End().Diff(v.Begin()))
}

func TestIterator_ReverseWalk(t *testing.T) {
	v := filled(t, 1, 2, 3, 4)
	var got []int
	for it := v.RBegin(); it.Less(v.REnd()); it = it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{4, 3, 2, 1}, got)
	assert.True(t, v.RBegin().Reverse())
	assert.Equal(t, 4, v.REnd().Diff(v.RBegin()))
}

func TestIterator_Arithmetic(t *testing.T) {
	v := filled(t, 10, 20, 30, 40, 50)
	it := v.Begin().Add(3)
	assert.Equal(t, 40, it.Value())
	assert.Equal(t, 3, it.Index())
	assert.Equal(t, 20, it.Sub(2).Value())
	assert.Equal(t, 30, it.Prev().Value())
	assert.Equal(t, 50, it.Next().Value())
	assert.True(t, v.Begin().Add(it.Diff(v.Begin())).Equal(it))

	r := v.RBegin().Add(1)
	assert.Equal(t, 40, r.Value())
	assert.Equal(t, 50, r.Prev().Value())
}

func TestIterator_Ordering(t *testing.T) {
	v := filled(t, 1, 2, 3)
	a, b := v.Begin(), v.Begin().Next()

	assert.True(t, a.Less(b))
	assert.True(t, a.LessEqual(b))
	assert.True(t, a.LessEqual(a))
	assert.True(t, b.Greater(a))
	assert.True(t, b.GreaterEqual(a))
	assert.True(t, b.GreaterEqual(b))
	assert.False(t, b.Less(a))
	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(v.Begin()))

	ra, rb := v.RBegin(), v.RBegin().Next()
	assert.True(t, ra.Less(rb), "reverse iterators order by iteration")
	assert.True(t, rb.Greater(ra))
}

func TestIterator_EqualRequiresSameBuffer(t *testing.T) {
	v := filled(t, 1, 2)
	w := filled(t, 1, 2)
	assert.True(t, v.Begin().Equal(v.Begin()))
	assert.False(t, v.Begin().Equal(w.Begin()))
	assert.False(t, v.Begin().Equal(v.End()))
}

func TestIterator_PtrWrites(t *testing.T) {
	v := filled(t, 1, 2, 3)
	*v.Begin().Next().Ptr() = 20
	assert.Equal(t, []int{1, 20, 3}, slices.Collect(v.Values()))
}

func TestIterator_EndPanics(t *testing.T) {
	v := filled(t, 1, 2)
	require.Equal(t, v.Len(), v.Cap())
	assert.Panics(t, func() { v.End().Value() })
	assert.Panics(t, func() { v.REnd().Ptr() })

	// Spare capacity past Len is not reachable either.
	require.NoError(t, v.Reserve(8))
	assert.Panics(t, func() { v.End().Ptr() })
	assert.Panics(t, func() { v.Begin().Add(5).Value() })

	b := newBlobs(t)
	require.NoError(t, b.Reserve(4))
	assert.Panics(t, func() { b.End().Ptr() })
	requireNoLeaks(t, b)
}

func TestConstIterator(t *testing.T) {
	v := filled(t, 5, 6, 7)
	var got []int
	for it := v.CBegin(); it.Less(v.CEnd()); it = it.Next() {
		got = append(got, it.Value())
	}
	assert.Equal(t, []int{5, 6, 7}, got)

	var back []int
	for it := v.CRBegin(); !it.Equal(v.CREnd()); it = it.Next() {
		back = append(back, it.Value())
	}
	assert.Equal(t, []int{7, 6, 5}, back)

	c := v.CBegin().Add(2)
	assert.Equal(t, 2, c.Index())
	assert.Equal(t, 6, c.Prev().Value())
	assert.Equal(t, 5, c.Sub(2).Value())
	assert.Equal(t, 2, c.Diff(v.CBegin()))
	assert.True(t, c.Greater(v.CBegin()))
	assert.True(t, c.GreaterEqual(c))
	assert.True(t, v.CBegin().LessEqual(c))
	assert.Equal(t, 0, c.Compare(c))
	assert.True(t, v.CRBegin().Reverse())
}

func TestInsertAt(t *testing.T) {
	v := filled(t, 1, 2, 3)
	it, err := v.InsertAt(v.Begin().Next(), 99)
	require.NoError(t, err)
	assert.Equal(t, 99, it.Value())
	assert.Equal(t, 1, it.Index())
	assert.Equal(t, []int{1, 99, 2, 3}, slices.Collect(v.Values()))

	it, err = v.InsertAt(v.End(), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, it.Value())

	_, err = v.InsertAt(v.End().Next(), 0)
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestEraseAt(t *testing.T) {
	v := filled(t, 1, 2, 3)
	it, err := v.EraseAt(v.Begin())
	require.NoError(t, err)
	assert.Equal(t, 2, it.Value())

	it, err = v.EraseAt(v.Begin().Next())
	require.NoError(t, err)
	assert.True(t, it.Equal(v.End()), "erasing the last element yields End")
	assert.Equal(t, []int{2}, slices.Collect(v.Values()))

	_, err = v.EraseAt(v.End())
	require.ErrorIs(t, err, ErrIndexOutOfRange)
}

// Erase everything through iterators, the classic loop shape.
func TestEraseAt_Loop(t *testing.T) {
	v := filled(t, 1, 2, 3, 4, 5, 6)
	for it := v.Begin(); !it.Equal(v.End()); {
		if it.Value()%2 == 0 {
			var err error
			it, err = v.EraseAt(it)
			require.NoError(t, err)
			continue
		}
		it = it.Next()
	}
	assert.Equal(t, []int{1, 3, 5}, slices.Collect(v.Values()))
}

func TestIterator_InvalidatedByReallocation(t *testing.T) {
	v := filled(t, 1, 2)
	require.Equal(t, 2, v.Cap())
	it := v.Begin()

	require.NoError(t, v.PushBack(3)) // capacity 2 -> 4
	*v.Ptr(0) = 100

	assert.False(t, it.Equal(v.Begin()), "old iterator refers to the old buffer")
	assert.Equal(t, 1, it.Value(), "stale snapshot, not the live element")
	assert.Equal(t, 100, v.Begin().Value(), "re-acquired iterator sees the change")
}

func TestIterator_InvalidatedByInsertBeforePosition(t *testing.T) {
	v := filled(t, 1, 2, 3)
	require.NoError(t, v.Reserve(8))
	it := v.Begin().Add(1) // points at 2

	require.NoError(t, v.Insert(0, 0)) // no reallocation, but shifts
	assert.True(t, it.Equal(v.Begin().Add(1)), "same slot of the same buffer")
	assert.Equal(t, 1, it.Value(), "the slot now holds a different element")

	// An insert after the position leaves the iterator valid.
	it = v.Begin().Add(1)
	require.NoError(t, v.Insert(3, 50))
	assert.Equal(t, 1, it.Value())
}

func TestIterator_InvalidatedByEraseBeforePosition(t *testing.T) {
	v := filled(t, 1, 2, 3, 4)
	it := v.Begin().Add(2) // points at 3

	require.NoError(t, v.Erase(0))
	assert.True(t, it.Equal(v.Begin().Add(2)), "same slot of the same buffer")
	assert.Equal(t, 4, it.Value(), "the slot now holds the next element")

	// Erasing the element under the iterator shifts its successor in.
	it = v.Begin().Add(1) // points at 3
	require.NoError(t, v.Erase(1))
	assert.Equal(t, 4, it.Value())

	// An erase after the position leaves the iterator valid.
	it = v.Begin()
	require.NoError(t, v.Erase(1))
	assert.Equal(t, 2, it.Value())
	assert.Equal(t, []int{2}, slices.Collect(v.Values()))
}

func TestRangeFuncs(t *testing.T) {
	v := filled(t, 1, 2, 3)

	var idx []int
	for i, x := range v.All() {
		idx = append(idx, i)
		assert.Equal(t, v.Get(i), x)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)

	var back []int
	for i, x := range v.Backward() {
		back = append(back, x)
		assert.Equal(t, v.Get(i), x)
	}
	assert.Equal(t, []int{3, 2, 1}, back)

	// Early exit.
	var first []int
	for x := range v.Values() {
		first = append(first, x)
		break
	}
	assert.Equal(t, []int{1}, first)
	for range v.All() {
		break
	}
	for range v.Backward() {
		break
	}
}
