package dvtime

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// ErrNoTimecodes marks a file whose index parsed fine but where no frame
// produced a validated timecode above the occurrence threshold. Reported to
// the user as a skip, not a failure.
var ErrNoTimecodes = errors.New("no timecodes found")

// Options configures one extraction run. The zero value is usable: the
// default occurrence threshold applies and diagnostics are discarded.
type Options struct {
	// MinCount is the histogram occurrence threshold; timecodes seen fewer
	// times are dropped as noise. Zero means DefaultMinCount.
	MinCount int
	// Log receives diagnostics. Debug level enables field-by-field header
	// dumps and per-frame decode traces.
	Log *logrus.Logger
}

func (o Options) logger() *logrus.Logger {
	if o.Log != nil {
		return o.Log
	}
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Result summarizes one processed file.
type Result struct {
	// Timeline holds the retained timecodes in chronological order.
	Timeline []Timecode
	// FramesScanned counts index entries with a DV frame size.
	FramesScanned int
	// FramesDecoded counts frames that yielded a validated timecode.
	FramesDecoded int
	// OutputPath is where the subtitle track was written.
	OutputPath string
}

// ExtractTimecodes reads the AVI index of the given source and decodes the
// recording date/time of every DV-sized chunk, returning the aggregated
// timeline. Per-chunk failures (unreadable chunk, undecodable frame) are
// absorbed here; only file-level conditions surface.
func ExtractTimecodes(src io.ReadSeeker, opts Options) (Result, error) {
	log := opts.logger()
	r := NewReader(src)

	entries, err := ParseIndex(r)
	if err != nil {
		return Result{}, err
	}
	log.WithField("entries", len(entries)).Debug("parsed idx1 index")

	if log.IsLevelEnabled(logrus.DebugLevel) {
		DumpHeaders(r, log)
	}

	result := Result{}
	hist := Histogram{}
	for _, entry := range entries {
		if entry.Size != FrameSizePAL && entry.Size != FrameSizeNTSC {
			continue
		}
		result.FramesScanned++
		frame, err := r.ReadChunk(int64(entry.Offset), int(entry.Size))
		if err != nil {
			// Damaged or truncated chunk; the remaining frames still vote.
			log.WithError(err).WithField("stream", entry.StreamID).Debug("skipping chunk")
			continue
		}
		tc, ok := DecodeTimecode(frame)
		if !ok {
			continue
		}
		log.WithField("timecode", tc.String()).Debug("decoded frame")
		result.FramesDecoded++
		hist.Add(tc)
	}

	result.Timeline = hist.Timeline(opts.MinCount)
	if len(result.Timeline) == 0 {
		return result, ErrNoTimecodes
	}
	return result, nil
}

// ProcessFile extracts the timecode timeline of one AVI file and writes the
// subtitle track next to it, with the extension replaced by .srt.
func ProcessFile(path string, opts Options) (Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	result, err := ExtractTimecodes(file, opts)
	if err != nil {
		return result, err
	}

	result.OutputPath = SubtitlePath(path)
	if err := WriteSRT(result.Timeline, result.OutputPath); err != nil {
		return result, err
	}
	return result, nil
}
