package dostime

import (
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"github.com/davejbax/go-dostime/internal/layout"
	"github.com/itchio/headway/counter"
	"github.com/lunixbochs/struc"
	"io"
)

var (
	// ErrShortRead indicates that the input ended part way through a structure
	ErrShortRead = errors.New("input ended before the end of the structure")

	// ErrInvalidLength indicates that a byte slice given to UnmarshalBinary is not exactly 4 bytes long
	ErrInvalidLength = errors.New("packed date and time must be exactly 4 bytes")
)

var (
	_ io.WriterTo                = DateTime{}
	_ encoding.BinaryMarshaler   = DateTime{}
	_ encoding.BinaryUnmarshaler = &DateTime{}
)

// WriteTo writes d as 4 little endian bytes: the time word followed by the date word, as found in FAT directory
// entries and ZIP headers.
func (d DateTime) WriteTo(w io.Writer) (int64, error) {
	cw := counter.NewWriter(w)
	packed := layout.DateTime{Time: d.TimePart, Date: d.DatePart}

	if err := struc.Pack(cw, &packed); err != nil {
		return cw.Count(), fmt.Errorf("failed to pack date and time: %w", err)
	}

	return cw.Count(), nil
}

// ReadDateTime reads a [DateTime] in the format written by [DateTime.WriteTo]. If r is already exhausted, io.EOF is
// returned as is; if it ends part way through, the error wraps [ErrShortRead].
func ReadDateTime(r io.Reader) (DateTime, error) {
	var packed layout.DateTime
	if err := unpack(r, &packed); err != nil {
		return DateTime{}, err
	}

	return DateTime{TimePart: packed.Time, DatePart: packed.Date}, nil
}

func (d DateTime) MarshalBinary() ([]byte, error) {
	buff := bytes.NewBuffer(make([]byte, 0, layout.DateTimeSize))
	if _, err := d.WriteTo(buff); err != nil {
		return nil, err
	}

	return buff.Bytes(), nil
}

func (d *DateTime) UnmarshalBinary(data []byte) error {
	if len(data) != layout.DateTimeSize {
		return fmt.Errorf("%w: got %d bytes", ErrInvalidLength, len(data))
	}

	read, err := ReadDateTime(bytes.NewReader(data))
	if err != nil {
		return err
	}

	*d = read
	return nil
}

// unpack reads a single fixed size structure, keeping io.EOF intact when r held no data at all so that callers can
// read structures in a loop. The whole structure is read up front as struc reads field by field, and would report a
// structure cut off between two fields as a plain io.EOF.
func unpack(r io.Reader, data any) error {
	size, err := struc.Sizeof(data)
	if err != nil {
		return fmt.Errorf("failed to size %T: %w", data, err)
	}

	buff := make([]byte, size)
	if _, err := io.ReadFull(r, buff); err != nil {
		switch {
		case err == io.EOF:
			return io.EOF
		case errors.Is(err, io.ErrUnexpectedEOF):
			return fmt.Errorf("%w: %w", ErrShortRead, err)
		default:
			return fmt.Errorf("failed to read %T: %w", data, err)
		}
	}

	if err := struc.Unpack(bytes.NewReader(buff), data); err != nil {
		return fmt.Errorf("failed to unpack %T: %w", data, err)
	}

	return nil
}
