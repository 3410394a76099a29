package dvtime

import "sort"

// DefaultMinCount is the occurrence threshold below which a timecode is
// treated as noise. DV subcode is replicated across many frames, so a date
// seen only once or twice is almost certainly a corrupted read.
const DefaultMinCount = 3

// Histogram counts occurrences of each distinct Timecode across the frames
// of one file. Timecode is a comparable value type, so it keys the map
// directly.
type Histogram map[Timecode]int

func (h Histogram) Add(tc Timecode) {
	h[tc]++
}

// Timeline returns the distinct timecodes seen at least minCount times,
// sorted chronologically. Duplicates collapse to one entry regardless of
// count. The result depends only on the multiset of added timecodes, not
// on insertion order.
func (h Histogram) Timeline(minCount int) []Timecode {
	if minCount <= 0 {
		minCount = DefaultMinCount
	}
	timeline := make([]Timecode, 0, len(h))
	for tc, count := range h {
		if count >= minCount {
			timeline = append(timeline, tc)
		}
	}
	sort.Slice(timeline, func(i, j int) bool {
		return timeline[i].Less(timeline[j])
	})
	return timeline
}
