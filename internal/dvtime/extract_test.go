package dvtime

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// buildAVI assembles a minimal RIFF buffer: one DV-sized data chunk plus an
// idx1 chunk whose entries all point at it.
func buildAVI(frame []byte, votes int) []byte {
	data := aviHeader()
	frameOffset := uint32(len(data) + 8)
	data = append(data, chunk("00db", frame)...)

	index := []byte{}
	for i := 0; i < votes; i++ {
		index = append(index, indexRecord("00db", 0x10, frameOffset, uint32(len(frame)))...)
	}
	return append(data, chunk("idx1", index)...)
}

func TestExtractTimecodesEndToEnd(t *testing.T) {
	frame := testFrame(FrameSizePAL, datePack(0x14, 0x07, 0x04), timePack(0x30, 0x15, 0x09))
	data := buildAVI(frame, 3)

	result, err := ExtractTimecodes(bytes.NewReader(data), Options{})
	require.NoError(t, err)

	want := Timecode{Day: 14, Month: 7, Year: 2004, Hour: 9, Minute: 15, Second: 30}
	require.Equal(t, []Timecode{want}, result.Timeline)
	require.Equal(t, 3, result.FramesScanned)
	require.Equal(t, 3, result.FramesDecoded)
}

func TestExtractTimecodesBelowThreshold(t *testing.T) {
	frame := testFrame(FrameSizePAL, datePack(0x14, 0x07, 0x04), timePack(0x30, 0x15, 0x09))
	data := buildAVI(frame, 2)

	result, err := ExtractTimecodes(bytes.NewReader(data), Options{})
	require.ErrorIs(t, err, ErrNoTimecodes)
	require.Empty(t, result.Timeline)
	require.Equal(t, 2, result.FramesDecoded)
}

func TestExtractTimecodesIgnoresNonDVChunks(t *testing.T) {
	audio := make([]byte, 960)
	data := aviHeader()
	audioOffset := uint32(len(data) + 8)
	data = append(data, chunk("01wb", audio)...)
	data = append(data, chunk("idx1", indexRecord("01wb", 0, audioOffset, uint32(len(audio))))...)

	result, err := ExtractTimecodes(bytes.NewReader(data), Options{})
	require.ErrorIs(t, err, ErrNoTimecodes)
	require.Equal(t, 0, result.FramesScanned)
}

func TestExtractTimecodesSkipsUnreadableChunks(t *testing.T) {
	frame := testFrame(FrameSizePAL, datePack(0x14, 0x07, 0x04), timePack(0x30, 0x15, 0x09))
	data := aviHeader()
	frameOffset := uint32(len(data) + 8)
	data = append(data, chunk("00db", frame)...)

	index := []byte{}
	// One entry points far past the end of the buffer.
	index = append(index, indexRecord("00db", 0, 0x7FFFFFFF, FrameSizePAL)...)
	for i := 0; i < 3; i++ {
		index = append(index, indexRecord("00db", 0, frameOffset, FrameSizePAL)...)
	}
	data = append(data, chunk("idx1", index)...)

	result, err := ExtractTimecodes(bytes.NewReader(data), Options{})
	require.NoError(t, err)
	require.Equal(t, 4, result.FramesScanned)
	require.Equal(t, 3, result.FramesDecoded)
	require.Len(t, result.Timeline, 1)
}

func TestExtractTimecodesMinCountOverride(t *testing.T) {
	frame := testFrame(FrameSizeNTSC, datePack(0x01, 0x02, 0x03), timePack(0x04, 0x05, 0x06))
	data := buildAVI(frame, 1)

	result, err := ExtractTimecodes(bytes.NewReader(data), Options{MinCount: 1})
	require.NoError(t, err)
	require.Len(t, result.Timeline, 1)
}

func TestExtractTimecodesNotAVI(t *testing.T) {
	_, err := ExtractTimecodes(bytes.NewReader([]byte("this is not a container")), Options{})
	require.ErrorIs(t, err, ErrNotAVI)
}

func TestProcessFile(t *testing.T) {
	frame := testFrame(FrameSizePAL, datePack(0x24, 0x12, 0x01), timePack(0x00, 0x30, 0x18))
	data := buildAVI(frame, 3)

	dir := t.TempDir()
	input := filepath.Join(dir, "tape.avi")
	require.NoError(t, os.WriteFile(input, data, 0644))

	result, err := ProcessFile(input, Options{})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "tape.srt"), result.OutputPath)

	srt, err := os.ReadFile(result.OutputPath)
	require.NoError(t, err)
	want := "1\n" +
		"00:00:00,000 --> 00:00:01,000\n" +
		"24/12/2001\n" +
		"18:30:00\n" +
		"\n"
	require.Equal(t, want, string(srt))
}

func TestProcessFileMissing(t *testing.T) {
	_, err := ProcessFile(filepath.Join(t.TempDir(), "absent.avi"), Options{})
	require.Error(t, err)
}
