package match

import (
	"testing"

	"adeval/internal/adevent"
)

func TestOverlapMatcherBasic(t *testing.T) {
	gen := indexEvents([]adevent.Event{
		{Start: 0, End: 5, Text: "cat"},
		{Start: 10, End: 15, Text: "dog"},
	})
	ref := indexEvents([]adevent.Event{
		{Start: 1, End: 4, Text: "cat sits"},
	})

	m := &OverlapMatcher{MinOverlapSec: 0.5}
	records := m.Match(gen, ref)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if !records[0].Matched || records[0].Type != TypeOverlap {
		t.Fatalf("record 0 = %+v, want overlap match", records[0])
	}
	if *records[0].RefStart != 1 || *records[0].RefEnd != 4 {
		t.Errorf("ref bounds = (%v, %v), want (1, 4)", *records[0].RefStart, *records[0].RefEnd)
	}
	if records[1].Matched || records[1].Type != TypeNoOverlap {
		t.Fatalf("record 1 = %+v, want no_overlap", records[1])
	}
}

func TestOverlapMatcherRanksByOverlapDuration(t *testing.T) {
	gen := indexEvents([]adevent.Event{{Start: 0, End: 10, Text: "g"}})
	ref := indexEvents([]adevent.Event{
		{Start: 0, End: 2, Text: "short"},  // 2s overlap
		{Start: 3, End: 10, Text: "long"},  // 7s overlap
		{Start: 8, End: 12, Text: "edge"},  // 2s overlap, later in scan
		{Start: 30, End: 40, Text: "none"}, // no overlap
	})

	m := &OverlapMatcher{MinOverlapSec: 0.5}
	records := m.Match(gen, ref)

	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	r := records[0]

	// Strongest overlap first; the two 2s overlaps keep their scan order.
	want := []int{1, 0, 2}
	if len(r.RefIndices) != len(want) {
		t.Fatalf("ref indices = %v, want %v", r.RefIndices, want)
	}
	for i := range want {
		if r.RefIndices[i] != want[i] {
			t.Errorf("ref index %d = %d, want %d", i, r.RefIndices[i], want[i])
		}
	}

	// Combined reference text is ordered by start time, not by overlap.
	if r.CombinedRefText != "short long edge" {
		t.Errorf("combined ref text = %q, want %q", r.CombinedRefText, "short long edge")
	}

	// The non-overlapping reference event vanishes from the output.
	for _, idx := range r.RefIndices {
		if idx == 3 {
			t.Error("reference index 3 should be absent")
		}
	}
}

func TestOverlapMatcherReferenceReuse(t *testing.T) {
	// One reference event may be claimed by multiple generated events.
	gen := indexEvents([]adevent.Event{
		{Start: 0, End: 5, Text: "g0"},
		{Start: 3, End: 8, Text: "g1"},
	})
	ref := indexEvents([]adevent.Event{{Start: 1, End: 7, Text: "r0"}})

	m := &OverlapMatcher{MinOverlapSec: 0.5}
	records := m.Match(gen, ref)

	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	for i, r := range records {
		if !r.Matched || len(r.RefIndices) != 1 || r.RefIndices[0] != 0 {
			t.Errorf("record %d should claim reference 0, got %+v", i, r.RefIndices)
		}
	}
}

func TestOverlapMatcherDegenerateInputs(t *testing.T) {
	m := &OverlapMatcher{MinOverlapSec: 0.5}

	if records := m.Match(nil, nil); len(records) != 0 {
		t.Errorf("empty generated input produced %d records", len(records))
	}

	gen := indexEvents([]adevent.Event{
		{Start: 0, End: 1, Text: "g0"},
		{Start: 2, End: 3, Text: "g1"},
	})
	records := m.Match(gen, nil)
	if len(records) != 2 {
		t.Fatalf("expected one no_overlap record per generated event, got %d", len(records))
	}
	for i, r := range records {
		if r.Matched || r.Type != TypeNoOverlap {
			t.Errorf("record %d = %+v, want no_overlap", i, r)
		}
	}
}
