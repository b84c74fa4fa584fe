// Package types holds the stable, dependency-free types shared by the
// rawvec packages: the typed error taxonomy and the resize event record
// handed to observers.
//
// Errors carry an ErrKind so callers can branch on intent rather than text:
//
//	if errors.Is(err, types.ErrIndexOutOfRange) {
//	    // position was outside [0, Len())
//	}
//
// Every *Error matches the sentinel of its kind under errors.Is, so errors
// built with IndexError or AllocationError keep their detail while still
// comparing equal to ErrIndexOutOfRange or ErrAllocationFailure.
//
// This package has no dependencies beyond the standard library.
package types
