package adevent

import (
	"sort"
	"strings"
)

// Event is a single audio description cue: a time interval with the spoken
// text and the 0-based position the cue held in its source track. Events are
// read-only once the loader has assigned indices.
type Event struct {
	Start float64
	End   float64
	Text  string
	Index int
}

// Duration returns the length of the event in seconds.
func (e Event) Duration() float64 {
	return e.End - e.Start
}

// OverlapDuration returns the length in seconds that two events share.
// Non-overlapping events yield 0.
func OverlapDuration(a, b Event) float64 {
	start := a.Start
	if b.Start > start {
		start = b.Start
	}
	end := a.End
	if b.End < end {
		end = b.End
	}
	if end <= start {
		return 0
	}
	return end - start
}

// Overlaps reports whether two events overlap by at least minOverlap
// seconds. With minOverlap of 0 any touching intervals count, including
// zero-width ones.
func Overlaps(a, b Event, minOverlap float64) bool {
	return OverlapDuration(a, b) >= minOverlap
}

// TemporalIoU returns the intersection-over-union of two event intervals.
// A non-positive union yields 0.
func TemporalIoU(a, b Event) float64 {
	intersection := OverlapDuration(a, b)
	union := (a.End - a.Start) + (b.End - b.Start) - intersection
	if union <= 0 {
		return 0
	}
	return intersection / union
}

// CombineTexts joins the texts of the given events with single spaces,
// ordered by start time. The ordering is applied internally so the result
// does not depend on the order events were supplied.
func CombineTexts(events []Event) string {
	if len(events) == 0 {
		return ""
	}
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	texts := make([]string, len(sorted))
	for i, e := range sorted {
		texts[i] = e.Text
	}
	return strings.Join(texts, " ")
}

// SortByStart returns a copy of events ordered by start time. Events with
// equal start times keep their relative order.
func SortByStart(events []Event) []Event {
	sorted := make([]Event, len(events))
	copy(sorted, events)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })
	return sorted
}

// TimeRange returns the earliest start and latest end across events.
// An empty slice yields (0, 0).
func TimeRange(events []Event) (float64, float64) {
	if len(events) == 0 {
		return 0, 0
	}
	minStart := events[0].Start
	maxEnd := events[0].End
	for _, e := range events[1:] {
		if e.Start < minStart {
			minStart = e.Start
		}
		if e.End > maxEnd {
			maxEnd = e.End
		}
	}
	return minStart, maxEnd
}
