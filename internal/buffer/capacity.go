package buffer

import (
	"github.com/joshuapare/rawvec/internal/alloc"
	"github.com/joshuapare/rawvec/pkg/types"
)

// Reserve grows the buffer to exactly n slots when n exceeds the capacity.
// It never shrinks and never changes Len.
func (b *Buffer[T, L]) Reserve(n int) error {
	if n <= len(b.slots) {
		return nil
	}
	return b.relocate(n, types.OpReserve)
}

// Ensure grows the buffer under the doubling policy until it holds at least
// need slots.
func (b *Buffer[T, L]) Ensure(need int) error {
	if need <= len(b.slots) {
		return nil
	}
	newCap, err := alloc.Grow(len(b.slots), need)
	if err != nil {
		return err
	}
	return b.relocate(newCap, types.OpGrow)
}

// ShrinkToFit relocates to max(Len, 1) slots. Calling it again is a no-op.
func (b *Buffer[T, L]) ShrinkToFit() error {
	target := max(b.size, 1)
	if len(b.slots) == target {
		return nil
	}
	return b.relocate(target, types.OpShrink)
}

// Resize sets Len to n. Growing reveals zero (trivial) or freshly
// initialized (managed) elements; shrinking destroys the truncated ones.
func (b *Buffer[T, L]) Resize(n int) error {
	var p L
	switch {
	case n > b.size:
		if err := b.Ensure(n); err != nil {
			return err
		}
		if p.Trivial() {
			p.Init(b.slots[b.size:n])
		}
		b.size = n
	case n < b.size:
		b.vacate(n, b.size)
		b.size = n
	}
	return nil
}

// Clone returns a deep copy with the same capacity, allocated within
// maxBytes. Cloning a buffer without slots yields another one.
func (b *Buffer[T, L]) Clone(maxBytes int) (Buffer[T, L], error) {
	out := Buffer[T, L]{cfg: b.cfg}
	if len(b.slots) == 0 {
		return out, nil
	}
	slots, err := b.replicate(b, maxBytes)
	if err != nil {
		return out, err
	}
	out.install(slots, b.size)
	b.emit(types.OpClone, len(b.slots), len(slots))
	return out, nil
}

// CopyFrom replaces b's contents with a deep copy of src. The copy is built
// under b's budget before anything of b is destroyed, so on failure b is
// unchanged. Events are reported on b. Copying a buffer onto itself is a
// no-op.
func (b *Buffer[T, L]) CopyFrom(src *Buffer[T, L]) error {
	if b == src {
		return nil
	}
	if len(src.slots) == 0 {
		b.Release()
		return nil
	}
	slots, err := b.replicate(src, b.cfg.MaxBytes)
	if err != nil {
		return err
	}
	var p L
	old := len(b.slots)
	p.Destroy(b.slots)
	b.install(slots, src.size)
	b.emit(types.OpClone, old, len(slots))
	return nil
}

// replicate allocates len(src.slots) fresh slots and copy-constructs src's
// elements into them. A refused allocation is reported on b.
func (b *Buffer[T, L]) replicate(src *Buffer[T, L], maxBytes int) ([]T, error) {
	slots, err := alloc.Slots[T](len(src.slots), maxBytes)
	if err != nil {
		b.fail(types.OpClone, len(src.slots), err)
		return nil, err
	}
	var p L
	p.Clone(slots[:src.size], src.slots[:src.size])
	return slots, nil
}

// relocate moves the live elements into newCap fresh slots. newCap must be
// at least Len. The old slots are destroyed only after the new ones exist.
func (b *Buffer[T, L]) relocate(newCap int, op types.ResizeOp) error {
	next, err := alloc.Slots[T](newCap, b.cfg.MaxBytes)
	if err != nil {
		b.fail(op, newCap, err)
		return err
	}

	var p L
	p.Relocate(next[:b.size], b.slots[:b.size])
	if !p.Trivial() {
		p.Destroy(b.slots[b.size:])
	}

	old := len(b.slots)
	b.install(next, b.size)
	b.emit(op, old, newCap)
	return nil
}

// vacate destroys the slots in [from, to) and, for managed types,
// re-initializes them so the tail stays live.
func (b *Buffer[T, L]) vacate(from, to int) {
	var p L
	s := b.slots[from:to]
	p.Destroy(s)
	if !p.Trivial() {
		p.Init(s)
	}
}

func (b *Buffer[T, L]) emit(op types.ResizeOp, oldCap, newCap int) {
	ev := types.ResizeEvent{Op: op, OldCap: oldCap, NewCap: newCap, Size: b.size, Trivial: b.Trivial()}
	if b.cfg.Logger != nil {
		b.cfg.Logger.Debug("buffer resized",
			"op", string(ev.Op),
			"old_cap", ev.OldCap,
			"new_cap", ev.NewCap,
			"size", ev.Size,
			"policy", ev.Policy())
	}
	if b.cfg.Observer != nil {
		b.cfg.Observer(ev)
	}
}

func (b *Buffer[T, L]) fail(op types.ResizeOp, want int, err error) {
	ev := types.ResizeEvent{Op: types.OpFail, OldCap: len(b.slots), NewCap: want, Size: b.size, Trivial: b.Trivial()}
	if b.cfg.Logger != nil {
		b.cfg.Logger.Warn("buffer allocation failed",
			"op", string(op),
			"cap", ev.OldCap,
			"want", want,
			"size", ev.Size,
			"policy", ev.Policy(),
			"error", err)
	}
	if b.cfg.Observer != nil {
		b.cfg.Observer(ev)
	}
}
