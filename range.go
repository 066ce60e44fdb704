package dostime

import (
	"time"
)

var (
	// MinTime is the earliest time that can be represented. Its encoding, date word 0x0021 and time word 0, is the
	// smallest value that is not the zero "no timestamp" marker.
	MinTime = time.Date(1980, time.January, 1, 0, 0, 0, 0, time.UTC)

	// MaxTime is the latest time that can be represented
	MaxTime = time.Date(2107, time.December, 31, 23, 59, 58, 0, time.UTC)
)

// InRange reports whether the wall-clock fields of t, in t's own location, fall between [MinTime] and [MaxTime]
// (ignoring the dropped odd second), i.e. whether [FromTime] can encode t without losing anything but precision.
func InRange(t time.Time) bool {
	year := t.Year()
	return year >= MinTime.Year() && year <= MaxTime.Year()
}
