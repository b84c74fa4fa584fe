package lifecycle

// Policy performs the lifecycle steps of element type T. Implementations
// are zero-size struct types used as type arguments; the zero value is
// ready to use.
//
// Slices passed to the bulk methods are slot ranges of one buffer. Unless
// stated otherwise dst and src never overlap.
type Policy[T any] interface {
	// Trivial reports whether T is relocated by plain copy with no cleanup.
	Trivial() bool

	// Init default-constructs every slot of s. The slots hold zero values
	// on entry.
	Init(s []T)

	// Destroy releases every slot of s and leaves them zeroed.
	Destroy(s []T)

	// Relocate move-constructs dst[i] from src[i] and destroys src[i].
	// dst holds zero values on entry. Managed src slots are left zeroed;
	// trivial ones are left as they were and must not be read again.
	Relocate(dst, src []T)

	// Clone copy-constructs dst[i] from src[i]. dst holds zero values on
	// entry; src is unchanged.
	Clone(dst, src []T)

	// CopyValue returns an independent copy of *src.
	CopyValue(src *T) T

	// Assign replaces the live value at dst with v, taking ownership of v.
	Assign(dst *T, v T)

	// ShiftRight moves s[0:len-1] into s[1:len], back to front, releasing
	// the value overwritten at s[len-1]. s[0] is left moved-from.
	ShiftRight(s []T)

	// ShiftLeft moves s[1:len] into s[0:len-1], front to back, releasing
	// the value overwritten at s[0]. s[len-1] is left moved-from.
	ShiftLeft(s []T)
}
