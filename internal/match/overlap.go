package match

import (
	"sort"

	"adeval/internal/adevent"
)

// OverlapMatcher maps each generated event to every reference event that
// overlaps it by at least MinOverlapSec (1:N). A reference event can be
// claimed by several generated events, and one that overlaps nothing is
// absent from the output entirely.
type OverlapMatcher struct {
	MinOverlapSec float64
}

// Name implements Matcher.
func (m *OverlapMatcher) Name() string { return "overlap" }

// Match implements Matcher.
func (m *OverlapMatcher) Match(gen, ref []adevent.Event) []Record {
	var records []Record

	for _, genEvent := range gen {
		type candidate struct {
			event   adevent.Event
			overlap float64
		}
		var overlapping []candidate
		for _, refEvent := range ref {
			if overlap := adevent.OverlapDuration(genEvent, refEvent); overlap >= m.MinOverlapSec {
				overlapping = append(overlapping, candidate{event: refEvent, overlap: overlap})
			}
		}

		if len(overlapping) == 0 {
			records = append(records, genOnlyRecord(genEvent, TypeNoOverlap))
			continue
		}

		// Strongest overlap first; equal overlaps keep scan order.
		sort.SliceStable(overlapping, func(i, j int) bool {
			return overlapping[i].overlap > overlapping[j].overlap
		})

		refEvents := make([]adevent.Event, len(overlapping))
		for i, c := range overlapping {
			refEvents[i] = c.event
		}

		genStart, genEnd := genEvent.Start, genEvent.End
		refStart, refEnd := adevent.TimeRange(refEvents)
		records = append(records, Record{
			GenEvents:       []adevent.Event{genEvent},
			RefEvents:       refEvents,
			GenIndices:      []int{genEvent.Index},
			RefIndices:      indicesOf(refEvents),
			CombinedGenText: genEvent.Text,
			CombinedRefText: adevent.CombineTexts(refEvents),
			GenStart:        &genStart,
			GenEnd:          &genEnd,
			RefStart:        &refStart,
			RefEnd:          &refEnd,
			Matched:         true,
			Type:            TypeOverlap,
		})
	}

	return records
}
