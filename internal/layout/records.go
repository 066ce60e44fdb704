package layout

// DirectoryEntrySize is the size in bytes of a short (8.3) FAT directory entry
const DirectoryEntrySize = 32

// DirectoryEntry is a short (8.3) FAT directory entry. All multi-byte fields are little endian.
//
// CreateTimeTenth extends CreateTime with a count of 10 millisecond units in the range 0-199, which restores the odd
// second that the 2-second resolution of the time word drops. LastAccessDate has no time word.
//
// fatgen103, "FAT Directory Structure"
type DirectoryEntry struct {
	Name            [11]byte
	Attribute       uint8
	NTReserved      uint8
	CreateTimeTenth uint8
	CreateTime      uint16 `struc:"uint16,little"`
	CreateDate      uint16 `struc:"uint16,little"`
	LastAccessDate  uint16 `struc:"uint16,little"`
	FirstClusterHI  uint16 `struc:"uint16,little"`
	WriteTime       uint16 `struc:"uint16,little"`
	WriteDate       uint16 `struc:"uint16,little"`
	FirstClusterLO  uint16 `struc:"uint16,little"`
	FileSize        uint32 `struc:"uint32,little"`
}

// LocalFileHeaderSignature is the magic number that starts every ZIP local file header
const LocalFileHeaderSignature = 0x04034b50

// LocalFileHeaderSize is the size in bytes of the fixed part of a [LocalFileHeader]
const LocalFileHeaderSize = 30

// LocalFileHeader is the fixed-size part of a ZIP local file header. It is followed on disk by the file name and
// extra field, whose lengths are given by FileNameLength and ExtraFieldLength.
//
// APPNOTE.TXT §4.3.7
type LocalFileHeader struct {
	Signature        uint32 `struc:"uint32,little"`
	VersionNeeded    uint16 `struc:"uint16,little"`
	Flags            uint16 `struc:"uint16,little"`
	Method           uint16 `struc:"uint16,little"`
	ModifiedTime     uint16 `struc:"uint16,little"`
	ModifiedDate     uint16 `struc:"uint16,little"`
	CRC32            uint32 `struc:"uint32,little"`
	CompressedSize   uint32 `struc:"uint32,little"`
	UncompressedSize uint32 `struc:"uint32,little"`
	FileNameLength   uint16 `struc:"uint16,little"`
	ExtraFieldLength uint16 `struc:"uint16,little"`
}
