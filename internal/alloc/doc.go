// Package alloc obtains slot storage for rawvec buffers.
//
// # Overview
//
// Go's make panics (or aborts the process) when a slice cannot be
// allocated. This package puts a checked front door on it so that an
// impossible or over-budget request is reported as an error while the
// caller's existing buffer is still intact:
//
//   - Slots(n, maxBytes): allocate n zeroed slots of T within a byte budget
//   - Grow(cur, need): the doubling growth policy
//   - DefaultMaxBytes(): the budget used when none is configured
//
// # Budgets
//
// A budget caps the size of a single allocation, not the sum over all
// buffers. The default is the machine's physical memory on Linux (read via
// sysinfo(2)) and a fixed 1 TiB elsewhere. A request above the budget fails
// with ErrTooLarge before any memory is touched.
//
// # Growth
//
// Capacity starts from at least one slot and doubles until it covers the
// request, giving amortized O(1) append:
//
//	newCap, err := alloc.Grow(cap(slots), len+1)
//	if err != nil {
//	    return err
//	}
//	next, err := alloc.Slots[T](newCap, budget)
//
// # Thread Safety
//
// All functions are pure and safe for concurrent use.
package alloc
