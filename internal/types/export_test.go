package types

import "time"

// SetNow replaces the clock used by Current and returns a function restoring it.
func SetNow(f func() time.Time) func() {
	original := now
	now = f
	return func() { now = original }
}
