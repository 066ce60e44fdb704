package encode

import (
	"github.com/davejbax/go-dostime/internal/layout"
)

// PackDate packs a calendar date into an MS-DOS date word. No range checking is done: a year outside 1980-2107
// overflows the 7-bit year field and is truncated to 16 bits along with it.
func PackDate(year, month, day int) uint16 {
	return uint16(((year - layout.Epoch) << layout.YearShift) |
		(month << layout.MonthShift) |
		(day << layout.DayShift))
}

// PackTime packs a time of day into an MS-DOS time word. The seconds are halved, so odd seconds are rounded down.
func PackTime(hour, minute, second int) uint16 {
	return uint16((hour << layout.HourShift) |
		(minute << layout.MinuteShift) |
		((second / layout.SecondResolution) << layout.SecondShift))
}

// UnpackDate extracts the fields of an MS-DOS date word. The year is absolute (the 1980 epoch is already added); month
// and day are returned exactly as stored and may be zero or otherwise invalid.
func UnpackDate(date uint16) (year, month, day int) {
	year = layout.Epoch + int((date>>layout.YearShift)&layout.YearMask)
	month = int((date >> layout.MonthShift) & layout.MonthMask)
	day = int((date >> layout.DayShift) & layout.DayMask)
	return year, month, day
}

// UnpackTime extracts the fields of an MS-DOS time word. The second is the stored 2-second count doubled, so it is
// always even and may be as large as 62.
func UnpackTime(t uint16) (hour, minute, second int) {
	hour = int((t >> layout.HourShift) & layout.HourMask)
	minute = int((t >> layout.MinuteShift) & layout.MinuteMask)
	second = int((t>>layout.SecondShift)&layout.SecondMask) * layout.SecondResolution
	return hour, minute, second
}
