package dostime

import (
	"time"
)

// maxCentiseconds is the largest valid value of the FAT creation time fine resolution byte (1.99 seconds)
const maxCentiseconds = 199

// FromTimeFine encodes t like [FromTime], and also returns the part of t's seconds that the 2-second resolution drops,
// in units of 10 milliseconds (0-199). This is the value FAT stores in the CrtTimeTenth byte of a directory entry.
func FromTimeFine(t time.Time) (DateTime, uint8) {
	cs := (t.Second()%2)*100 + t.Nanosecond()/int(10*time.Millisecond)
	return FromTime(t), uint8(cs)
}

// TimeFine decodes d like [DateTime.Time] and adds cs units of 10 milliseconds. See [DateTime.TimeFineIn].
func (d DateTime) TimeFine(cs uint8) (time.Time, bool) {
	return d.TimeFineIn(cs, time.UTC)
}

// TimeFineIn decodes d like [DateTime.TimeIn] and adds cs units of 10 milliseconds. A cs greater than 199 is not a
// valid FAT fine resolution value and is ignored.
func (d DateTime) TimeFineIn(cs uint8, loc *time.Location) (time.Time, bool) {
	t, ok := d.TimeIn(loc)
	if !ok {
		return t, false
	}

	if cs > maxCentiseconds {
		return t, true
	}

	return t.Add(time.Duration(cs) * 10 * time.Millisecond), true
}
