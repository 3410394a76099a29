package dvtime

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrNotAVI marks a file without a RIFF signature. Fatal for that file,
// batch processing moves on.
var ErrNotAVI = errors.New("not an AVI file")

const indexEntrySize = 16

// IndexEntry is one 16-byte record of the legacy idx1 index.
type IndexEntry struct {
	StreamID string
	Flags    uint32
	Offset   uint32
	Size     uint32
}

// ParseIndex walks the top-level RIFF chunks until it finds the first idx1
// chunk and returns its entries. A file without an idx1 chunk yields an
// empty slice and no error; the caller treats that as "no timecodes found".
// Additional idx1 chunks after the first are ignored.
func ParseIndex(r *Reader) ([]IndexEntry, error) {
	tag, err := r.ReadString(0, 4)
	if err != nil {
		return nil, err
	}
	if tag != "RIFF" {
		return nil, ErrNotAVI
	}

	// Chunk scanning starts after the 12-byte RIFF header (tag, file size,
	// form type).
	offset := int64(12)
	for {
		chunkID, err := r.ReadString(offset, 4)
		if err != nil {
			// End of stream before any idx1 chunk.
			return nil, nil
		}
		chunkSize, err := r.ReadInt(offset+4, 4)
		if err != nil {
			return nil, nil
		}
		if chunkID == "idx1" {
			return parseIndexEntries(r, offset+8, chunkSize)
		}
		offset += 8 + int64(chunkSize)
	}
}

func parseIndexEntries(r *Reader, offset int64, chunkSize uint32) ([]IndexEntry, error) {
	count := int(chunkSize / indexEntrySize)
	entries := make([]IndexEntry, 0, count)
	for i := 0; i < count; i++ {
		record, err := r.ReadChunk(offset+int64(i)*indexEntrySize, indexEntrySize)
		if err != nil {
			return nil, fmt.Errorf("index entry %d: %w", i, err)
		}
		entries = append(entries, IndexEntry{
			StreamID: asciiString(record[0:4]),
			Flags:    binary.LittleEndian.Uint32(record[4:8]),
			Offset:   binary.LittleEndian.Uint32(record[8:12]),
			Size:     binary.LittleEndian.Uint32(record[12:16]),
		})
	}
	return entries, nil
}
