package dostime

import (
	"errors"
	"fmt"
	"github.com/davejbax/go-dostime/internal/layout"
	"io"
	"time"
)

// ErrBadSignature indicates that a ZIP local file header did not start with the expected signature
var ErrBadSignature = errors.New("not a ZIP local file header")

// EntryTimes are the timestamps recorded in a FAT directory entry
type EntryTimes struct {
	Created DateTime

	// CreatedCentiseconds is the creation time's fine resolution part, see [DateTime.TimeFine]
	CreatedCentiseconds uint8

	Modified DateTime

	// Accessed only has a date word; its time word is always zero
	Accessed DateTime
}

// CreatedTime decodes the creation time including its fine resolution part
func (e EntryTimes) CreatedTime() (time.Time, bool) {
	return e.Created.TimeFine(e.CreatedCentiseconds)
}

// ReadEntryTimes reads one 32-byte short FAT directory entry from r and returns its timestamps. Errors follow
// [ReadDateTime].
func ReadEntryTimes(r io.Reader) (EntryTimes, error) {
	var entry layout.DirectoryEntry
	if err := unpack(r, &entry); err != nil {
		return EntryTimes{}, err
	}

	return EntryTimes{
		Created:             New(entry.CreateTime, entry.CreateDate),
		CreatedCentiseconds: entry.CreateTimeTenth,
		Modified:            New(entry.WriteTime, entry.WriteDate),
		Accessed:            New(0, entry.LastAccessDate),
	}, nil
}

// ReadZipModified reads the fixed part of a ZIP local file header from r and returns the file's modification time.
// The variable length file name and extra field that follow the header are left unread.
func ReadZipModified(r io.Reader) (DateTime, error) {
	var header layout.LocalFileHeader
	if err := unpack(r, &header); err != nil {
		return DateTime{}, err
	}

	if header.Signature != layout.LocalFileHeaderSignature {
		return DateTime{}, fmt.Errorf("%w: signature 0x%08x", ErrBadSignature, header.Signature)
	}

	return New(header.ModifiedTime, header.ModifiedDate), nil
}
