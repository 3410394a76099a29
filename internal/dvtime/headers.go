package dvtime

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Diagnostic header dumps for debug mode. These walk the conventional
// layout of a DV-camera AVI (RIFF header, hdrl list, first stream list)
// and log every field with its offset and raw bytes. None of this feeds
// extraction; decoding works purely off the idx1 index.

type headerField struct {
	name string
	size int
	str  bool
}

func DumpHeaders(r *Reader, log *logrus.Logger) {
	offset := dumpFields(r, log, "RIFF header", 0, []headerField{
		{"RIFF ID", 4, true},
		{"Size", 4, false},
		{"Format", 4, true},
	})
	offset = dumpFields(r, log, "Header list", offset, []headerField{
		{"List ID", 4, true},
		{"Length", 4, false},
		{"Header ID", 4, true},
		{"AVI header ID", 4, true},
		{"Length", 4, false},
	})
	offset = dumpFields(r, log, "AVI main header", offset, []headerField{
		{"Microsecs per frame", 4, false},
		{"Max byte rate", 4, false},
		{"Reserved", 4, false},
		{"Flags", 4, false},
		{"Total frames", 4, false},
		{"Initial frame", 4, false},
		{"Streams", 4, false},
		{"Buffer size", 4, false},
		{"Width", 4, false},
		{"Height", 4, false},
	})
	offset += 16 // reserved tail of the main header
	offset = dumpFields(r, log, "Stream list", offset, []headerField{
		{"List ID", 4, true},
		{"Length", 4, false},
		{"List type", 4, true},
		{"Chunk ID", 4, true},
		{"Chunk size", 4, false},
	})
	offset = dumpFields(r, log, "Stream header", offset, []headerField{
		{"Type", 4, true},
		{"Handler", 4, true},
		{"Flags", 4, false},
		{"Priority", 4, false},
		{"Initial frames", 4, false},
		{"Scale", 4, false},
		{"Rate", 4, false},
		{"Start", 4, false},
		{"Length", 4, false},
		{"Buffer size", 4, false},
		{"Quality", 4, false},
		{"Sample size", 4, false},
	})
	offset += 8 // rcFrame
	offset = dumpFields(r, log, "Stream format", offset, []headerField{
		{"Chunk ID", 4, true},
		{"Chunk size", 4, false},
	})
	dumpFields(r, log, "BITMAPINFOHEADER", offset, []headerField{
		{"Size", 4, false},
		{"Width", 4, false},
		{"Height", 4, false},
		{"Planes", 2, false},
		{"Bit count", 2, false},
		{"Compression", 4, true},
		{"Image size", 4, false},
		{"X pels per meter", 4, false},
		{"Y pels per meter", 4, false},
		{"Colors used", 4, false},
		{"Colors important", 4, false},
	})
}

func dumpFields(r *Reader, log *logrus.Logger, section string, offset int64, fields []headerField) int64 {
	log.Debugf("--- %s ---", section)
	for _, f := range fields {
		raw, err := r.ReadChunk(offset, f.size)
		if err != nil {
			log.WithError(err).Debugf("%s ends early at offset %d", section, offset)
			return offset
		}
		var value string
		if f.str {
			value = asciiString(raw)
		} else if f.size == 2 || f.size == 4 {
			v, _ := r.ReadInt(offset, f.size)
			value = fmt.Sprintf("%d", v)
		}
		log.WithFields(logrus.Fields{
			"offset": offset,
			"size":   f.size,
			"value":  value,
			"hex":    hexBytes(raw),
		}).Debug(f.name)
		offset += int64(f.size)
	}
	return offset
}

func hexBytes(data []byte) string {
	out := make([]byte, 0, len(data)*3)
	for i, b := range data {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, fmt.Sprintf("%02X", b)...)
	}
	return string(out)
}
