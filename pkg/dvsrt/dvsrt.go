// Package dvsrt is the public facade over the internal extraction core.
package dvsrt

import (
	"io"

	"github.com/dvarchive/dvsrt/internal/dvtime"
)

// Types
type Timecode = dvtime.Timecode
type Histogram = dvtime.Histogram
type IndexEntry = dvtime.IndexEntry
type Options = dvtime.Options
type Result = dvtime.Result

// Constants
const (
	FrameSizePAL    = dvtime.FrameSizePAL
	FrameSizeNTSC   = dvtime.FrameSizeNTSC
	DefaultMinCount = dvtime.DefaultMinCount
)

// Errors
var (
	ErrNotAVI           = dvtime.ErrNotAVI
	ErrNoTimecodes      = dvtime.ErrNoTimecodes
	ErrTruncatedRead    = dvtime.ErrTruncatedRead
	ErrChunkUnavailable = dvtime.ErrChunkUnavailable
)

// Functions

// DecodeTimecode recovers the recording date/time from one raw DV frame.
func DecodeTimecode(frame []byte) (Timecode, bool) {
	return dvtime.DecodeTimecode(frame)
}

// ExtractTimecodes runs the index walk, decode and aggregation over an open
// AVI byte source.
func ExtractTimecodes(src io.ReadSeeker, opts Options) (Result, error) {
	return dvtime.ExtractTimecodes(src, opts)
}

// ProcessFile extracts the timeline of one AVI file and writes the SRT
// track next to it.
func ProcessFile(path string, opts Options) (Result, error) {
	return dvtime.ProcessFile(path, opts)
}

// WriteSRT serializes an ordered timeline as an SRT subtitle file.
func WriteSRT(timecodes []Timecode, path string) error {
	return dvtime.WriteSRT(timecodes, path)
}
