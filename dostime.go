// Package dostime converts between Go times and the packed MS-DOS date and time format used by FAT directory entries
// and ZIP archive headers.
//
// A packed timestamp is a pair of 16-bit words. The date word holds the years since 1980 in bits 15-9, the month in bits
// 8-5 and the day of the month in bits 4-0. The time word holds the hour in bits 15-11, the minute in bits 10-5 and the
// second divided by two in bits 4-0. The representable range is 1980-01-01 00:00:00 to 2107-12-31 23:59:58 with a
// resolution of two seconds. Neither word records a time zone: times are encoded from, and decoded to, wall-clock
// fields.
package dostime

import (
	"fmt"
	"github.com/davejbax/go-dostime/internal/encode"
	"time"
)

// DateTime is a packed MS-DOS timestamp. It is a plain bit container: it does not check that its fields make up a real
// date. That check happens when it is decoded with [DateTime.Time].
//
// The zero value (both words zero) is the conventional marker for "no timestamp" and never decodes to a time.
type DateTime struct {
	TimePart uint16
	DatePart uint16
}

// New creates a [DateTime] from a time word and a date word, given in the order they are stored on disk.
func New(timeWord, dateWord uint16) DateTime {
	return DateTime{TimePart: timeWord, DatePart: dateWord}
}

// FromUint32 splits the 32-bit form of a timestamp, with the date word in the high half and the time word in the low
// half, into a [DateTime].
func FromUint32(v uint32) DateTime {
	return DateTime{
		TimePart: uint16(v & 0xFFFF),
		DatePart: uint16(v >> 16),
	}
}

// FromTime encodes the wall-clock fields of t, in t's own location. It never fails: odd seconds and fractions of a
// second are dropped, and a year outside 1980-2107 produces a well-defined but meaningless value (see [InRange]).
func FromTime(t time.Time) DateTime {
	year, month, day := t.Date()
	hour, minute, second := t.Clock()

	return DateTime{
		TimePart: encode.PackTime(hour, minute, second),
		DatePart: encode.PackDate(year, int(month), day),
	}
}

// Uint32 returns the 32-bit form of d, with the date word in the high half.
func (d DateTime) Uint32() uint32 {
	return uint32(d.DatePart)<<16 | uint32(d.TimePart)
}

// IsZero reports whether d is the all-zero "no timestamp" value.
func (d DateTime) IsZero() bool {
	return d.DatePart == 0 && d.TimePart == 0
}

// Time decodes d into a time in UTC. See [DateTime.TimeIn].
func (d DateTime) Time() (time.Time, bool) {
	return d.TimeIn(time.UTC)
}

// TimeIn decodes d into a time whose wall-clock fields, in loc, are the fields stored in d. A nil loc means UTC. The
// boolean result is false if d is the zero value, or if its fields do not form a real date and time (for example month
// 13, 30 February or hour 24); the returned time is then the zero time. A wall-clock time that loc skips, such as one
// in a daylight saving gap, is still valid and is adjusted the way [time.Date] adjusts it.
func (d DateTime) TimeIn(loc *time.Location) (time.Time, bool) {
	if d.IsZero() {
		return time.Time{}, false
	}

	if loc == nil {
		loc = time.UTC
	}

	year, month, day := d.fields()
	hour, minute, second := encode.UnpackTime(d.TimePart)

	// time.Date normalises out of range fields (e.g. 31 April becomes 1 May), so any difference means the fields
	// were not a valid date and time. UTC has no gaps, so only invalid fields are caught here.
	t := time.Date(year, time.Month(month), day, hour, minute, second, 0, time.UTC)
	y, m, dd := t.Date()
	h, mm, s := t.Clock()
	if y != year || int(m) != month || dd != day || h != hour || mm != minute || s != second {
		return time.Time{}, false
	}

	if loc == time.UTC {
		return t, true
	}

	return time.Date(year, time.Month(month), day, hour, minute, second, 0, loc), true
}

func (d DateTime) fields() (year, month, day int) {
	return encode.UnpackDate(d.DatePart)
}

// Year returns the year stored in d, between 1980 and 2107
func (d DateTime) Year() int {
	year, _, _ := d.fields()
	return year
}

// Month returns the raw month field; it is not checked to be between 1 and 12
func (d DateTime) Month() int {
	_, month, _ := d.fields()
	return month
}

// Day returns the raw day of month field
func (d DateTime) Day() int {
	_, _, day := d.fields()
	return day
}

// Hour returns the raw hour field
func (d DateTime) Hour() int {
	hour, _, _ := encode.UnpackTime(d.TimePart)
	return hour
}

// Minute returns the raw minute field
func (d DateTime) Minute() int {
	_, minute, _ := encode.UnpackTime(d.TimePart)
	return minute
}

// Second returns the stored 2-second count doubled, so it is always even
func (d DateTime) Second() int {
	_, _, second := encode.UnpackTime(d.TimePart)
	return second
}

func (d DateTime) String() string {
	return fmt.Sprintf("0x%08X", d.Uint32())
}
