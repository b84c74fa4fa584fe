package buf

import (
	"math"
	"testing"
)

func TestAddCount(t *testing.T) {
	if sum, ok := AddCount(10, 5); !ok || sum != 15 {
		t.Fatalf("AddCount(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddCount(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddCount(-1, 1); ok {
		t.Fatalf("negative counts must be rejected")
	}
}

func TestMulCount(t *testing.T) {
	tests := []struct {
		a, b int
		want int
		ok   bool
	}{
		{0, math.MaxInt, 0, true},
		{3, 7, 21, true},
		{math.MaxInt, 1, math.MaxInt, true},
		{-3, 7, 0, false},
		{math.MaxInt/2 + 1, 2, 0, false},
		{math.MaxInt, math.MaxInt, 0, false},
	}
	for _, tt := range tests {
		got, ok := MulCount(tt.a, tt.b)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Fatalf("MulCount(%d,%d)=%d,%v want %d,%v", tt.a, tt.b, got, ok, tt.want, tt.ok)
		}
	}
}

func TestDouble(t *testing.T) {
	if d, ok := Double(8); !ok || d != 16 {
		t.Fatalf("Double(8)=%d,%v want 16,true", d, ok)
	}
	if _, ok := Double(math.MaxInt/2 + 1); ok {
		t.Fatalf("expected overflow doubling past MaxInt")
	}
}

func TestSlotBytes(t *testing.T) {
	if n, err := SlotBytes(16, 8); err != nil || n != 128 {
		t.Fatalf("SlotBytes(16,8)=%d,%v want 128,nil", n, err)
	}
	if n, err := SlotBytes(1<<20, 0); err != nil || n != 0 {
		t.Fatalf("zero-size elements should need no bytes, got %d,%v", n, err)
	}
	if _, err := SlotBytes(-1, 8); err == nil {
		t.Fatalf("SlotBytes should reject negative count")
	}
	if _, err := SlotBytes(4, -8); err == nil {
		t.Fatalf("SlotBytes should reject negative element size")
	}
	if _, err := SlotBytes(math.MaxInt/4, 8); err == nil {
		t.Fatalf("SlotBytes should report overflow")
	}
}

func TestInRange(t *testing.T) {
	if !InRange(0, 1) || !InRange(4, 5) {
		t.Fatalf("InRange should accept indexes below n")
	}
	if InRange(5, 5) || InRange(-1, 5) || InRange(0, 0) {
		t.Fatalf("InRange should reject n, negatives and empty ranges")
	}
	if !InRangeInclusive(5, 5) || !InRangeInclusive(0, 0) {
		t.Fatalf("InRangeInclusive should accept the end position")
	}
	if InRangeInclusive(6, 5) || InRangeInclusive(-1, 5) {
		t.Fatalf("InRangeInclusive should reject positions past the end")
	}
}
