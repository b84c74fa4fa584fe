//go:build !linux

package alloc

// DefaultMaxBytes returns fallbackMaxBytes on platforms without sysinfo(2).
func DefaultMaxBytes() int {
	return fallbackMaxBytes
}
