package util

import "time"

// NowUTC is the default clock for timestamps written to history storage.
func NowUTC() time.Time {
	return time.Now().UTC()
}
