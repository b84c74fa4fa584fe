// Package buf contains overflow-checked arithmetic for sizing slot buffers
// and the index checks shared by the container operations.
package buf

import (
	"fmt"
	"math"
	"math/bits"
)

// MulCount multiplies two non-negative counts, returning ok = false when the
// product does not fit in an int or either operand is negative.
func MulCount(a, b int) (int, bool) {
	if a < 0 || b < 0 {
		return 0, false
	}
	hi, lo := bits.Mul(uint(a), uint(b))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	return int(lo), true
}

// AddCount adds two non-negative counts, returning ok = false on overflow or
// a negative operand.
func AddCount(a, b int) (int, bool) {
	if a < 0 || b < 0 || a > math.MaxInt-b {
		return 0, false
	}
	return a + b, true
}

// Double returns 2*c, or ok = false when that does not fit in an int.
func Double(c int) (int, bool) {
	return MulCount(c, 2)
}

// SlotBytes returns the number of bytes occupied by count slots of elemSize
// bytes each.
//
//	n, err := buf.SlotBytes(capacity, int(unsafe.Sizeof(zero)))
func SlotBytes(count, elemSize int) (int, error) {
	if count < 0 {
		return 0, fmt.Errorf("negative slot count %d", count)
	}
	if elemSize < 0 {
		return 0, fmt.Errorf("negative element size %d", elemSize)
	}
	total, ok := MulCount(count, elemSize)
	if !ok {
		return 0, fmt.Errorf("%d slots of %d bytes overflow int", count, elemSize)
	}
	return total, nil
}

// InRange reports whether i indexes one of n elements.
func InRange(i, n int) bool {
	return i >= 0 && i < n
}

// InRangeInclusive reports whether i is a position in [0, n], the set of
// positions an element may be inserted at.
func InRangeInclusive(i, n int) bool {
	return i >= 0 && i <= n
}
