package vector

import (
	"io"
	"log/slog"

	"github.com/joshuapare/rawvec/internal/buffer"
	"github.com/joshuapare/rawvec/pkg/types"
)

// ResizeEvent describes one capacity change of a vector's buffer.
type ResizeEvent = types.ResizeEvent

// Observer receives an event for every capacity change, and for every
// refused allocation, of the vectors it is configured on.
type Observer interface {
	ObserveResize(ev ResizeEvent)
}

// discard is the logger used when none is configured.
var discard = slog.New(slog.NewTextHandler(io.Discard, nil))

// Options configures a vector.
//
// Use DefaultOptions() for the standard configuration.
type Options struct {
	// InitialCapacity is the number of slots allocated up front. Values
	// below 1 are raised to 1.
	// Default: 1
	InitialCapacity int

	// MaxBytes caps the size in bytes of any single buffer the vector
	// allocates. Requests above it fail with ErrAllocationFailure instead of
	// exhausting memory. 0 uses the machine's physical memory.
	// Default: 0
	MaxBytes int

	// Logger receives Debug records for capacity changes and Warn records
	// for refused allocations.
	// Default: a logger that discards everything
	Logger *slog.Logger

	// Observer is notified of every capacity change.
	// Default: nil (no notifications)
	Observer Observer
}

// DefaultOptions returns the options used by New.
func DefaultOptions() *Options {
	return &Options{
		InitialCapacity: 1,
		MaxBytes:        0,
		Logger:          discard,
	}
}

func (o *Options) bufferConfig() buffer.Config {
	cfg := buffer.Config{MaxBytes: o.MaxBytes, Logger: o.Logger}
	if cfg.Logger == nil {
		cfg.Logger = discard
	}
	if o.Observer != nil {
		cfg.Observer = o.Observer.ObserveResize
	}
	return cfg
}

// validate checks opts against the element size of the vector being built.
func (o *Options) validate(elemSize int) error {
	if o.MaxBytes < 0 {
		return types.ArgumentError("vector: negative MaxBytes %d", o.MaxBytes)
	}
	if o.MaxBytes > 0 && o.MaxBytes < elemSize {
		return types.ArgumentError("vector: MaxBytes %d is smaller than one %d-byte element", o.MaxBytes, elemSize)
	}
	return nil
}
