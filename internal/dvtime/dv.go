package dvtime

// DV frame sizes. Anything else is not a complete DV frame and carries no
// usable subcode data.
const (
	FrameSizePAL  = 144000
	FrameSizeNTSC = 120000
)

const (
	packDate = 0x62
	packTime = 0x63

	difBlockSize     = 80
	blocksPerSeq     = 150
	packsPerSubBlock = 6
)

// findSubcodePack scans the subcode DIF blocks of a frame for the first
// 8-byte pack whose leading byte matches packType. Scan order is sequence,
// then sub-block, then pack; the first match is authoritative.
//
// The sequence count is a size heuristic (12 for PAL-sized buffers, 10 for
// NTSC), not a field read from the frame itself.
func findSubcodePack(frame []byte, packType byte) ([]byte, bool) {
	seqCount := 10
	if len(frame) >= FrameSizePAL {
		seqCount = 12
	}
	for i := 0; i < seqCount; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < packsPerSubBlock; k++ {
				offset := i*blocksPerSeq*difBlockSize + j*difBlockSize + 3 + k*8 + 3
				if offset+8 > len(frame) {
					return nil, false
				}
				pack := frame[offset : offset+8]
				if pack[0] == packType {
					return pack, true
				}
			}
		}
	}
	return nil, false
}

// BCD field decoders. Each takes one raw subcode byte; the tens mask
// differs per field because the high bits carry unrelated flags.

func bcdDay(b byte) int    { return int(b&0xf) + 10*int((b>>4)&0x3) }
func bcdMonth(b byte) int  { return int(b&0xf) + 10*int((b>>4)&0x1) }
func bcdHour(b byte) int   { return int(b&0xf) + 10*int((b>>4)&0x3) }
func bcdMinSec(b byte) int { return int(b&0xf) + 10*int((b>>4)&0x7) }

// bcdYear decodes a two-digit year and pivots at 50: 49 means 2049,
// 50 means 1950.
func bcdYear(b byte) int {
	year := int(b&0xf) + 10*int((b>>4)&0xf)
	if year < 50 {
		return year + 2000
	}
	return year + 1900
}

// DecodeTimecode recovers the recording date/time embedded in one DV frame.
// Frames that are not exactly PAL- or NTSC-sized, frames missing the date or
// time pack, and frames whose decoded fields fall outside their valid ranges
// all yield no Timecode. Rejection is routine; robustness comes from
// majority aggregation across frames, not from any single frame.
func DecodeTimecode(frame []byte) (Timecode, bool) {
	if len(frame) != FrameSizePAL && len(frame) != FrameSizeNTSC {
		return Timecode{}, false
	}

	date, ok := findSubcodePack(frame, packDate)
	if !ok {
		return Timecode{}, false
	}
	tod, ok := findSubcodePack(frame, packTime)
	if !ok {
		return Timecode{}, false
	}

	tc := Timecode{
		Day:    bcdDay(date[2]),
		Month:  bcdMonth(date[3]),
		Year:   bcdYear(date[4]),
		Second: bcdMinSec(tod[2]),
		Minute: bcdMinSec(tod[3]),
		Hour:   bcdHour(tod[4]),
	}
	if !tc.valid() {
		return Timecode{}, false
	}
	return tc, true
}
