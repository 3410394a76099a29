package dvtime

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// ErrTruncatedRead is returned when a container header field lies past the
// end of the stream. It is fatal for the structure being parsed.
var ErrTruncatedRead = errors.New("truncated read")

// ErrChunkUnavailable is returned when an index-referenced chunk cannot be
// read in full. Callers skip the entry and keep going.
var ErrChunkUnavailable = errors.New("chunk unavailable")

// Reader provides absolute-offset reads over a random-access byte source.
// Every read seeks first, so frame buffers can be revisited freely.
type Reader struct {
	src io.ReadSeeker
}

func NewReader(src io.ReadSeeker) *Reader {
	return &Reader{src: src}
}

func (r *Reader) readAt(offset int64, buf []byte) error {
	if _, err := r.src.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	if _, err := io.ReadFull(r.src, buf); err != nil {
		return err
	}
	return nil
}

// ReadInt reads a little-endian unsigned integer of 2 or 4 bytes.
func (r *Reader) ReadInt(offset int64, size int) (uint32, error) {
	if size != 2 && size != 4 {
		return 0, fmt.Errorf("unsupported integer size %d", size)
	}
	buf := make([]byte, size)
	if err := r.readAt(offset, buf); err != nil {
		return 0, fmt.Errorf("%w: %d bytes at offset %d", ErrTruncatedRead, size, offset)
	}
	if size == 2 {
		return uint32(binary.LittleEndian.Uint16(buf)), nil
	}
	return binary.LittleEndian.Uint32(buf), nil
}

// ReadString reads size bytes and returns them as ASCII, dropping any
// non-ASCII bytes.
func (r *Reader) ReadString(offset int64, size int) (string, error) {
	buf := make([]byte, size)
	if err := r.readAt(offset, buf); err != nil {
		return "", fmt.Errorf("%w: %d bytes at offset %d", ErrTruncatedRead, size, offset)
	}
	return asciiString(buf), nil
}

// ReadChunk reads size raw bytes at offset. A short or failed read reports
// ErrChunkUnavailable so index-driven callers can skip the entry.
func (r *Reader) ReadChunk(offset int64, size int) ([]byte, error) {
	buf := make([]byte, size)
	if err := r.readAt(offset, buf); err != nil {
		return nil, fmt.Errorf("%w: %d bytes at offset %d", ErrChunkUnavailable, size, offset)
	}
	return buf, nil
}

func asciiString(data []byte) string {
	out := make([]byte, 0, len(data))
	for _, b := range data {
		if b < 0x80 {
			out = append(out, b)
		}
	}
	return string(out)
}
