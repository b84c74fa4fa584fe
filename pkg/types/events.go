package types

// ResizeOp names the buffer operation behind a ResizeEvent.
type ResizeOp string

const (
	OpGrow    ResizeOp = "grow"    // doubling growth on append/insert/resize
	OpReserve ResizeOp = "reserve" // explicit reserve
	OpShrink  ResizeOp = "shrink"  // shrink-to-fit
	OpClone   ResizeOp = "clone"   // deep copy into a fresh buffer
	OpReset   ResizeOp = "reset"   // clear, or re-seeding a moved-from container
	OpRelease ResizeOp = "release" // close: every slot destroyed, buffer dropped
	OpFail    ResizeOp = "fail"    // an allocation was refused; nothing changed
)

// ResizeEvent describes one change (or attempted change) of a buffer's
// capacity. OldCap and NewCap are slot counts; Size is the logical length at
// the time of the event.
type ResizeEvent struct {
	Op      ResizeOp
	OldCap  int
	NewCap  int
	Size    int
	Trivial bool
}

// Policy returns the label used for the element lifecycle in logs and metrics.
func (e ResizeEvent) Policy() string {
	if e.Trivial {
		return "trivial"
	}
	return "managed"
}
