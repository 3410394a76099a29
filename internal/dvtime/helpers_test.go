package dvtime

import "encoding/binary"

// packOffset mirrors the subcode scan arithmetic: sequence i, sub-block j,
// pack k.
func packOffset(i, j, k int) int {
	return i*blocksPerSeq*difBlockSize + j*difBlockSize + 3 + k*8 + 3
}

// testFrame builds a DV-sized frame with the given date and time packs
// placed at the first scan position (and second position for the time pack).
func testFrame(size int, date, tod [8]byte) []byte {
	frame := make([]byte, size)
	copy(frame[packOffset(0, 0, 0):], date[:])
	copy(frame[packOffset(0, 0, 1):], tod[:])
	return frame
}

func datePack(day, month, year byte) [8]byte {
	return [8]byte{packDate, 0xFF, day, month, year, 0xFF, 0xFF, 0xFF}
}

func timePack(sec, min, hour byte) [8]byte {
	return [8]byte{packTime, 0xFF, sec, min, hour, 0xFF, 0xFF, 0xFF}
}

// chunk renders a RIFF chunk: 4-byte tag plus little-endian size plus
// payload.
func chunk(tag string, payload []byte) []byte {
	out := make([]byte, 0, 8+len(payload))
	out = append(out, tag...)
	out = binary.LittleEndian.AppendUint32(out, uint32(len(payload)))
	return append(out, payload...)
}

func indexRecord(streamID string, flags, offset, size uint32) []byte {
	buf := make([]byte, indexEntrySize)
	copy(buf[0:4], streamID)
	binary.LittleEndian.PutUint32(buf[4:8], flags)
	binary.LittleEndian.PutUint32(buf[8:12], offset)
	binary.LittleEndian.PutUint32(buf[12:16], size)
	return buf
}
