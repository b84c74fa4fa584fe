// Package buffer implements the single-owner slot buffer behind a vector and
// the capacity manager that grows, shrinks and relocates it.
//
// A Buffer is one Go slice whose length is the capacity plus the logical
// size. For managed element types every slot in [0, Cap()) holds a live,
// initialized value; for trivial types the slots in [Len(), Cap()) are zero
// and never observed. Every capacity change allocates the new slots before
// touching the old ones, so a failed allocation leaves the buffer exactly as
// it was.
//
// Callers validate indexes; methods taking a position assume it is in range.
// Buffer is not safe for concurrent use.
package buffer

import (
	"log/slog"

	"github.com/joshuapare/rawvec/internal/alloc"
	"github.com/joshuapare/rawvec/lifecycle"
	"github.com/joshuapare/rawvec/pkg/types"
)

// Config carries the per-buffer allocation budget and event sinks.
type Config struct {
	// MaxBytes caps any single allocation; 0 means alloc.DefaultMaxBytes.
	MaxBytes int
	// Logger receives debug records for capacity changes; nil disables them.
	Logger *slog.Logger
	// Observer receives every ResizeEvent; nil disables it.
	Observer func(types.ResizeEvent)
}

// Buffer holds the slots of a vector. The zero value holds no slots and is
// ready to use; growth starts from a single slot.
type Buffer[T any, L lifecycle.Policy[T]] struct {
	slots []T
	size  int
	cfg   Config
}

// New allocates a buffer with the given capacity (at least 1) and size 0.
func New[T any, L lifecycle.Policy[T]](capacity int, cfg Config) (Buffer[T, L], error) {
	b := Buffer[T, L]{cfg: cfg}
	slots, err := alloc.Slots[T](max(capacity, 1), cfg.MaxBytes)
	if err != nil {
		b.fail(types.OpGrow, max(capacity, 1), err)
		return b, err
	}
	b.install(slots, 0)
	return b, nil
}

// Seeded returns a buffer with a single slot and size 0. Like seed, the
// allocation bypasses the budget and cannot fail.
func Seeded[T any, L lifecycle.Policy[T]](cfg Config) Buffer[T, L] {
	b := Buffer[T, L]{cfg: cfg}
	b.install(make([]T, 1), 0)
	return b
}

// Len returns the number of live elements.
func (b *Buffer[T, L]) Len() int { return b.size }

// Cap returns the number of allocated slots.
func (b *Buffer[T, L]) Cap() int { return len(b.slots) }

// Trivial reports the lifecycle classification of T under L.
func (b *Buffer[T, L]) Trivial() bool {
	var p L
	return p.Trivial()
}

// Live returns the slots holding elements, [0, Len()). The slice aliases the
// buffer and is invalidated by the next capacity change.
func (b *Buffer[T, L]) Live() []T { return b.slots[:b.size] }

// Slots returns every allocated slot, [0, Cap()).
func (b *Buffer[T, L]) Slots() []T { return b.slots }

// Config returns the buffer's configuration.
func (b *Buffer[T, L]) Config() Config { return b.cfg }

// install adopts freshly allocated slots, initializing the tail beyond size
// when T is managed.
func (b *Buffer[T, L]) install(slots []T, size int) {
	var p L
	if !p.Trivial() {
		p.Init(slots[size:])
	}
	b.slots, b.size = slots, size
}

// seed installs a fresh single-slot buffer over slots that were already
// destroyed or moved out; old is the capacity being replaced. The one-slot
// allocation bypasses the budget, which vectors validate at construction,
// so seeding cannot fail.
func (b *Buffer[T, L]) seed(old int) {
	b.install(make([]T, 1), 0)
	b.emit(types.OpReset, old, 1)
}

// Reset destroys every slot and installs a fresh single-slot buffer.
func (b *Buffer[T, L]) Reset() {
	var p L
	old := len(b.slots)
	p.Destroy(b.slots)
	b.seed(old)
}

// Release destroys every slot and drops the allocation. The buffer is left
// holding no slots, like the zero value.
func (b *Buffer[T, L]) Release() {
	var p L
	old := len(b.slots)
	p.Destroy(b.slots)
	b.slots, b.size = nil, 0
	if old > 0 {
		b.emit(types.OpRelease, old, 0)
	}
}

// Swap exchanges slots and sizes with o. Configurations stay put.
func (b *Buffer[T, L]) Swap(o *Buffer[T, L]) {
	b.slots, o.slots = o.slots, b.slots
	b.size, o.size = o.size, b.size
}

// Take moves the slots out into a new Buffer sharing b's configuration and
// re-seeds b.
func (b *Buffer[T, L]) Take() Buffer[T, L] {
	out := Buffer[T, L]{slots: b.slots, size: b.size, cfg: b.cfg}
	b.seed(len(b.slots))
	return out
}

// MoveFrom releases b's slots, adopts src's and re-seeds src. Moving a
// buffer onto itself is a no-op.
func (b *Buffer[T, L]) MoveFrom(src *Buffer[T, L]) {
	if b == src {
		return
	}
	b.Release()
	b.slots, b.size = src.slots, src.size
	src.seed(len(src.slots))
}
