package layout

// Bit positions and widths of the fields of an MS-DOS date and time word. Bit 0 is the least significant bit of the
// 16-bit word.
//
// fatgen103, "Date and Time Formats"; APPNOTE.TXT §4.4.6
const (
	DayShift   = 0
	DayMask    = 0x1F
	MonthShift = 5
	MonthMask  = 0x0F
	YearShift  = 9
	YearMask   = 0x7F

	SecondShift = 0
	SecondMask  = 0x1F
	MinuteShift = 5
	MinuteMask  = 0x3F
	HourShift   = 11
	HourMask    = 0x1F
)

// Epoch is the year that a year offset of zero refers to
const Epoch = 1980

// SecondResolution is the number of seconds represented by one unit of the seconds field
const SecondResolution = 2

// DateTimeSize is the number of bytes a packed [DateTime] occupies on disk
const DateTimeSize = 4

// DateTime is a time word followed by a date word, the order in which both FAT directory entries and ZIP headers
// record them.
//
// DateTime can be encoded by the [struc] library.
type DateTime struct {
	Time uint16 `struc:"uint16,little"`
	Date uint16 `struc:"uint16,little"`
}
