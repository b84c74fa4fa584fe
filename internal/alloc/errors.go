package alloc

import "errors"

var (
	// ErrNoSpace indicates that the runtime refused the allocation.
	ErrNoSpace = errors.New("alloc: out of memory")

	// ErrTooLarge indicates the request exceeds the configured byte budget.
	ErrTooLarge = errors.New("alloc: request exceeds byte budget")

	// ErrOverflow indicates the request size does not fit in an int.
	ErrOverflow = errors.New("alloc: size overflow")

	// ErrNegative indicates a negative slot count.
	ErrNegative = errors.New("alloc: negative slot count")
)
