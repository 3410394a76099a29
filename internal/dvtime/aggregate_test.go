package dvtime

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimelineThreshold(t *testing.T) {
	twice := Timecode{Day: 1, Month: 1, Year: 2020, Hour: 10}
	thrice := Timecode{Day: 1, Month: 1, Year: 2020, Hour: 11}

	hist := Histogram{}
	for i := 0; i < 2; i++ {
		hist.Add(twice)
	}
	for i := 0; i < 3; i++ {
		hist.Add(thrice)
	}

	timeline := hist.Timeline(DefaultMinCount)
	require.Equal(t, []Timecode{thrice}, timeline, "2 occurrences are noise, 3 are signal")
}

func TestTimelineSortOrder(t *testing.T) {
	a := Timecode{Day: 31, Month: 12, Year: 2022}
	b := Timecode{Day: 1, Month: 1, Year: 2023}
	c := Timecode{Day: 2, Month: 1, Year: 2023}

	hist := Histogram{}
	for _, tc := range []Timecode{c, a, b} {
		for i := 0; i < 3; i++ {
			hist.Add(tc)
		}
	}

	require.Equal(t, []Timecode{a, b, c}, hist.Timeline(3))
}

func TestTimelineOrderIndependence(t *testing.T) {
	inputs := []Timecode{
		{Day: 5, Month: 6, Year: 2001, Hour: 12, Minute: 0, Second: 1},
		{Day: 5, Month: 6, Year: 2001, Hour: 12, Minute: 0, Second: 0},
		{Day: 4, Month: 6, Year: 2001, Hour: 23, Minute: 59, Second: 59},
	}

	forward := Histogram{}
	reverse := Histogram{}
	for i := 0; i < 4; i++ {
		for _, tc := range inputs {
			forward.Add(tc)
		}
		for j := len(inputs) - 1; j >= 0; j-- {
			reverse.Add(inputs[j])
		}
	}

	require.Equal(t, forward.Timeline(3), reverse.Timeline(3))
	require.Len(t, forward.Timeline(3), 3)
}

func TestTimelineCollapsesDuplicates(t *testing.T) {
	tc := Timecode{Day: 1, Month: 2, Year: 2003, Hour: 4, Minute: 5, Second: 6}
	hist := Histogram{}
	for i := 0; i < 100; i++ {
		hist.Add(tc)
	}
	require.Equal(t, []Timecode{tc}, hist.Timeline(3), "one entry per distinct timecode")
}

func TestTimelineZeroMinCountUsesDefault(t *testing.T) {
	tc := Timecode{Day: 1, Month: 1, Year: 2000}
	hist := Histogram{tc: 2}
	require.Empty(t, hist.Timeline(0))
	hist[tc] = 3
	require.Len(t, hist.Timeline(0), 1)
}

func TestTimecodeLess(t *testing.T) {
	earlier := Timecode{Day: 28, Month: 2, Year: 1999, Hour: 23, Minute: 59, Second: 59}
	later := Timecode{Day: 1, Month: 3, Year: 1999}
	require.True(t, earlier.Less(later))
	require.False(t, later.Less(earlier))
	require.False(t, earlier.Less(earlier))
}
