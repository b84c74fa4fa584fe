// Package vector provides a generic growable array with amortized O(1)
// append, random access, positional insertion and removal, and explicit
// capacity control.
//
// # Overview
//
// A Vector[T, L] owns exactly one contiguous slot buffer. The second type
// parameter is a lifecycle.Policy that fixes, once per instantiation, how
// elements are constructed, relocated, copied and destroyed:
//
//   - lifecycle.Trivial[T] for plain values (numbers, strings, flat structs)
//   - lifecycle.Managed[T, *T] for types that own resources and implement
//     lifecycle.Resource on their pointer
//
// The aliases Values[T] and Resources[T, PT] spell the two common forms:
//
//	nums := vector.NewValues[int]()
//	_ = nums.PushBack(1)
//	_ = nums.PushBack(2)
//	_ = nums.Insert(1, 99) // [1 99 2]
//
//	blobs := vector.NewResources[Blob]()
//	defer blobs.Close()
//
// # Capacity
//
// A new vector has capacity 1. When an operation needs more slots the
// capacity doubles until it is large enough. Reserve grows to an exact
// size, ShrinkToFit trims to Len (never below 1) and Clear returns to a
// fresh single-slot buffer. For managed types every allocated slot, used or
// not, holds a live initialized element; slots freed by PopBack, Erase or
// Resize are released and re-initialized in place.
//
// # Errors
//
// Every failing operation leaves the vector exactly as it was and returns
// an error matching one of:
//
//   - ErrAllocationFailure: the new buffer could not be allocated
//   - ErrIndexOutOfRange: At, Insert, Erase or their iterator forms got a
//     position outside the valid range
//   - ErrEmptyContainer: PopBack, Front or Back on an empty vector
//   - ErrInvalidArgument: negative sizes or an unusable byte budget
//
// Get, Set and Ptr are the unchecked forms; an index outside [0, Len())
// panics.
//
// # Copy and move
//
// Clone and CopyAssign make independent deep copies. Move and MoveAssign
// transfer the buffer and leave the source empty with a fresh single-slot
// buffer, ready for reuse. Swap exchanges buffers in O(1).
//
// # Iterators
//
// Iterators are non-owning cursors into the buffer. They are invalidated
// by any capacity change, and by any Insert or Erase at or before their
// position. An invalidated iterator still reads its old snapshot without
// faulting, but what it reads is unspecified. Nothing detects
// invalidation; re-acquire iterators after mutating.
//
// # Lifetime
//
// Close destroys every element and drops the buffer. Managed vectors must
// be closed to release what their elements hold. A closed vector, like the
// zero value, holds no buffer and grows again on the next insertion.
//
// # Thread Safety
//
// Vectors are not safe for concurrent use. Callers must synchronize access
// externally.
package vector
