package alloc

import "math"

// fallbackMaxBytes is 1 TiB on 64-bit platforms and MaxInt on 32-bit ones.
const fallbackMaxBytes = int(min(uint64(1)<<40, uint64(math.MaxInt)))
