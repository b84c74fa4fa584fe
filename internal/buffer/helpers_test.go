package buffer

import (
	"testing"

	"github.com/joshuapare/rawvec/lifecycle"
	"github.com/joshuapare/rawvec/pkg/types"
)

// liveResources counts res values that hold a resource.
var liveResources int

// res is a managed element owning a heap-allocated label.
type res struct {
	label *string
}

func (r *res) Init() {
	s := ""
	r.label = &s
	liveResources++
}

func (r *res) Release() {
	if r.label == nil {
		return
	}
	r.label = nil
	liveResources--
}

func (r *res) CopyFrom(src *res) {
	s := *src.label
	r.label = &s
	liveResources++
}

func mk(label string) res {
	liveResources++
	return res{label: &label}
}

func labels(s []res) []string {
	out := make([]string, len(s))
	for i := range s {
		if s[i].label != nil {
			out[i] = *s[i].label
		}
	}
	return out
}

type (
	intBuf = Buffer[int, lifecycle.Trivial[int]]
	resBuf = Buffer[res, lifecycle.Managed[res, *res]]
)

func newIntBuf(t testing.TB, capacity int, cfg Config) intBuf {
	t.Helper()
	b, err := New[int, lifecycle.Trivial[int]](capacity, cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

func newResBuf(t testing.TB, capacity int) resBuf {
	t.Helper()
	liveResources = 0
	b, err := New[res, lifecycle.Managed[res, *res]](capacity, Config{})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return b
}

// recorder collects ResizeEvents.
type recorder struct{ events []types.ResizeEvent }

func (r *recorder) observe(ev types.ResizeEvent) { r.events = append(r.events, ev) }

func (r *recorder) ops() []types.ResizeOp {
	out := make([]types.ResizeOp, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Op
	}
	return out
}
