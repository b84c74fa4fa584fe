package types

import "fmt"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindAllocation ErrKind = iota // memory for a buffer could not be obtained
	ErrKindRange                     // index or position outside the valid range
	ErrKindEmpty                     // removal or access on an empty container
	ErrKindArgument                  // malformed argument (negative count, tiny budget)
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindAllocation:
		return "allocation"
	case ErrKindRange:
		return "range"
	case ErrKindEmpty:
		return "empty"
	case ErrKindArgument:
		return "argument"
	default:
		return fmt.Sprintf("ErrKind(%d)", int(k))
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind, so detailed errors built at the
// failure site still satisfy errors.Is against the sentinels below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrAllocationFailure indicates a buffer could not be allocated. The
	// container that reported it is unchanged.
	ErrAllocationFailure = &Error{Kind: ErrKindAllocation, Msg: "allocation failure"}
	// ErrIndexOutOfRange indicates an index outside the valid range.
	ErrIndexOutOfRange = &Error{Kind: ErrKindRange, Msg: "index out of range"}
	// ErrEmptyContainer indicates removal or access on an empty container.
	ErrEmptyContainer = &Error{Kind: ErrKindEmpty, Msg: "container is empty"}
	// ErrInvalidArgument indicates a malformed argument.
	ErrInvalidArgument = &Error{Kind: ErrKindArgument, Msg: "invalid argument"}
)

// IndexError builds an ErrKindRange error naming the offending index and the
// exclusive bound it had to stay under.
func IndexError(op string, index, bound int) *Error {
	return &Error{
		Kind: ErrKindRange,
		Msg:  fmt.Sprintf("%s: index %d out of range [0,%d)", op, index, bound),
	}
}

// EmptyError builds an ErrKindEmpty error for op.
func EmptyError(op string) *Error {
	return &Error{Kind: ErrKindEmpty, Msg: op + ": container is empty"}
}

// AllocationError wraps an allocator failure for op.
func AllocationError(op string, err error) *Error {
	return &Error{Kind: ErrKindAllocation, Msg: op + ": allocation failure", Err: err}
}

// ArgumentError builds an ErrKindArgument error.
func ArgumentError(format string, args ...any) *Error {
	return &Error{Kind: ErrKindArgument, Msg: fmt.Sprintf(format, args...)}
}
