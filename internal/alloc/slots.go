package alloc

import (
	"fmt"
	"unsafe"

	"github.com/joshuapare/rawvec/internal/buf"
)

// ElemSize returns the in-memory size of one T in bytes.
func ElemSize[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// Slots allocates n zeroed slots of T. The total byte size is checked for
// overflow and against maxBytes (0 means DefaultMaxBytes) before calling
// make, and a runtime allocation panic is converted into ErrNoSpace.
func Slots[T any](n, maxBytes int) (s []T, err error) {
	if n < 0 {
		return nil, ErrNegative
	}
	total, err := buf.SlotBytes(n, ElemSize[T]())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOverflow, err)
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes()
	}
	if total > maxBytes {
		return nil, fmt.Errorf("%w: %d slots need %d bytes, budget is %d", ErrTooLarge, n, total, maxBytes)
	}

	defer func() {
		if r := recover(); r != nil {
			s = nil
			err = fmt.Errorf("%w: %d slots: %v", ErrNoSpace, n, r)
		}
	}()
	return make([]T, n), nil
}

// Grow returns the capacity that covers need slots under the doubling
// policy: start from max(cur, 1) and double until the result is >= need.
// When doubling would overflow, need itself is returned. A cur that
// already covers need is returned unchanged.
func Grow(cur, need int) (int, error) {
	if need < 0 {
		return 0, ErrNegative
	}
	c := max(cur, 1)
	for c < need {
		next, ok := buf.Double(c)
		if !ok {
			return need, nil
		}
		c = next
	}
	return c, nil
}
