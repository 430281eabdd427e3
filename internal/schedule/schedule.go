package schedule

import (
	"math/rand"
	"time"
)

// Jitter returns a random delay in [min, max]. A degenerate range yields
// min.
func Jitter(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + time.Duration(rand.Int63n(int64(max-min)+1))
}

// InQuietHours reports whether t's UTC hour falls in the quiet set.
func InQuietHours(t time.Time, quietHours []int) bool {
	h := t.UTC().Hour()
	for _, q := range quietHours {
		if q == h {
			return true
		}
	}
	return false
}
