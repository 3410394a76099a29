package dvtime

import "fmt"

// Timecode is a fully validated recording date/time recovered from DV
// subcode data. It is only ever constructed after all six fields passed
// range validation; there is no partial or zero-default Timecode.
type Timecode struct {
	Day    int
	Month  int
	Year   int
	Hour   int
	Minute int
	Second int
}

// Less orders timecodes chronologically by
// (year, month, day, hour, minute, second).
func (t Timecode) Less(other Timecode) bool {
	if t.Year != other.Year {
		return t.Year < other.Year
	}
	if t.Month != other.Month {
		return t.Month < other.Month
	}
	if t.Day != other.Day {
		return t.Day < other.Day
	}
	if t.Hour != other.Hour {
		return t.Hour < other.Hour
	}
	if t.Minute != other.Minute {
		return t.Minute < other.Minute
	}
	return t.Second < other.Second
}

func (t Timecode) String() string {
	return fmt.Sprintf("%02d/%02d/%04d %02d:%02d:%02d",
		t.Day, t.Month, t.Year, t.Hour, t.Minute, t.Second)
}

func (t Timecode) valid() bool {
	if t.Day < 1 || t.Day > 31 {
		return false
	}
	if t.Month < 1 || t.Month > 12 {
		return false
	}
	if t.Year < 1995 || t.Year > 2100 {
		return false
	}
	if t.Hour < 0 || t.Hour > 23 {
		return false
	}
	if t.Minute < 0 || t.Minute > 59 {
		return false
	}
	return t.Second >= 0 && t.Second <= 59
}
