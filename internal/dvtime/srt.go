package dvtime

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// SubtitlePath returns the output path for a given input file, with the
// extension replaced by .srt.
func SubtitlePath(inputPath string) string {
	ext := filepath.Ext(inputPath)
	return strings.TrimSuffix(inputPath, ext) + ".srt"
}

// WriteSRT renders the timecodes as an SRT track with one entry per second
// of track time, in the exact order given. Entry i covers [i-1, i) seconds
// and shows the recorded date on one line and the time of day on the next.
func WriteSRT(timecodes []Timecode, path string) error {
	var b strings.Builder
	for i, tc := range timecodes {
		start := float64(i)
		end := float64(i + 1)
		fmt.Fprintf(&b, "%d\n", i+1)
		fmt.Fprintf(&b, "%s --> %s\n", formatSeconds(start), formatSeconds(end))
		fmt.Fprintf(&b, "%02d/%02d/%04d\n", tc.Day, tc.Month, tc.Year)
		fmt.Fprintf(&b, "%02d:%02d:%02d\n", tc.Hour, tc.Minute, tc.Second)
		b.WriteString("\n")
	}
	if err := os.WriteFile(path, []byte(b.String()), 0644); err != nil {
		return fmt.Errorf("write subtitle file: %w", err)
	}
	return nil
}

// formatSeconds renders a duration in seconds as an SRT timestamp,
// HH:MM:SS,mmm.
func formatSeconds(seconds float64) string {
	whole := int(seconds)
	millis := int((seconds - float64(whole)) * 1000)
	hours := whole / 3600
	minutes := (whole % 3600) / 60
	secs := whole % 60
	return fmt.Sprintf("%02d:%02d:%02d,%03d", hours, minutes, secs, millis)
}
