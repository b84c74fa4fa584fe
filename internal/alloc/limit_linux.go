//go:build linux

package alloc

import (
	"math"
	"sync"

	"golang.org/x/sys/unix"
)

var (
	defaultOnce  sync.Once
	defaultBytes int
)

// DefaultMaxBytes returns the total physical memory reported by sysinfo(2),
// clamped to math.MaxInt. It falls back to fallbackMaxBytes when the call
// fails.
func DefaultMaxBytes() int {
	defaultOnce.Do(func() {
		defaultBytes = fallbackMaxBytes
		var info unix.Sysinfo_t
		if err := unix.Sysinfo(&info); err != nil {
			return
		}
		total := uint64(info.Totalram) * uint64(max(info.Unit, 1))
		if total == 0 {
			return
		}
		defaultBytes = int(min(total, uint64(math.MaxInt)))
	})
	return defaultBytes
}
