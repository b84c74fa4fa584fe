package lifecycle

// Trivial is the Policy for element types whose bytes are their value:
// numbers, strings, plain structs and any type that needs no cleanup.
type Trivial[T any] struct{}

var _ Policy[int] = Trivial[int]{}

func (Trivial[T]) Trivial() bool { return true }

func (Trivial[T]) Init(s []T) { clear(s) }

func (Trivial[T]) Destroy(s []T) { clear(s) }

func (Trivial[T]) Relocate(dst, src []T) { copy(dst, src) }

func (Trivial[T]) Clone(dst, src []T) { copy(dst, src) }

func (Trivial[T]) CopyValue(src *T) T { return *src }

func (Trivial[T]) Assign(dst *T, v T) { *dst = v }

func (Trivial[T]) ShiftRight(s []T) {
	if len(s) < 2 {
		return
	}
	copy(s[1:], s[:len(s)-1])
}

func (Trivial[T]) ShiftLeft(s []T) {
	if len(s) < 2 {
		return
	}
	copy(s, s[1:])
}
