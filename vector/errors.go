package vector

import "github.com/joshuapare/rawvec/pkg/types"

// Sentinel errors. Every error returned by this package matches exactly one
// of them under errors.Is.
var (
	ErrAllocationFailure = types.ErrAllocationFailure
	ErrIndexOutOfRange   = types.ErrIndexOutOfRange
	ErrEmptyContainer    = types.ErrEmptyContainer
	ErrInvalidArgument   = types.ErrInvalidArgument
)
