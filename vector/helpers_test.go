package vector

import (
	"slices"
	"testing"

	"github.com/joshuapare/rawvec/pkg/types"
)

// liveBlobs counts blob resources acquired and not yet released.
var liveBlobs int

// blob is a managed element that owns a heap-allocated payload.
type blob struct {
	id   int
	data *[]byte
}

func (b *blob) Init() {
	d := make([]byte, 0, 4)
	b.id, b.data = 0, &d
	liveBlobs++
}

func (b *blob) Release() {
	if b.data == nil {
		return
	}
	b.data = nil
	liveBlobs--
}

func (b *blob) CopyFrom(src *blob) {
	d := slices.Clone(*src.data)
	b.id, b.data = src.id, &d
	liveBlobs++
}

func newBlob(id int) blob {
	d := []byte{byte(id)}
	liveBlobs++
	return blob{id: id, data: &d}
}

type blobs = Resources[blob, *blob]

func newBlobs(t testing.TB) *blobs {
	t.Helper()
	liveBlobs = 0
	return NewResources[blob]()
}

func ids(v *blobs) []int {
	out := make([]int, 0, v.Len())
	for b := range v.Values() {
		out = append(out, b.id)
	}
	return out
}

// requireNoLeaks checks that closing v releases every resource.
func requireNoLeaks(t *testing.T, v *blobs) {
	t.Helper()
	if liveBlobs != v.Cap() {
		t.Fatalf("live resources = %d, want one per slot (%d)", liveBlobs, v.Cap())
	}
	v.Close()
	if liveBlobs != 0 {
		t.Fatalf("after Close: %d resources still live", liveBlobs)
	}
}

type eventLog struct{ events []types.ResizeEvent }

func (e *eventLog) ObserveResize(ev types.ResizeEvent) { e.events = append(e.events, ev) }

func failCount(e *eventLog) int {
	n := 0
	for _, ev := range e.events {
		if ev.Op == types.OpFail {
			n++
		}
	}
	return n
}
