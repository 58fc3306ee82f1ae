package match

import (
	"math"
	"testing"

	"adeval/internal/adevent"
)

func makeEvents(n int) []adevent.Event {
	events := make([]adevent.Event, n)
	for i := range events {
		events[i] = adevent.Event{
			Start: float64(i * 10),
			End:   float64(i*10 + 5),
			Text:  "e",
			Index: i,
		}
	}
	return events
}

func matchedStub(genIndices, refIndices []int) Record {
	return Record{GenIndices: genIndices, RefIndices: refIndices, Matched: true, Type: TypeCluster}
}

func TestComputeStatsPrecisionRecallF1(t *testing.T) {
	gen := makeEvents(10)
	ref := makeEvents(8)

	// 7 of 10 generated and 4 of 8 reference indices matched.
	records := []Record{
		matchedStub([]int{0, 1, 2}, []int{0}),
		matchedStub([]int{3, 4}, []int{1, 2}),
		matchedStub([]int{5, 6}, []int{3}),
	}

	stats := ComputeStats(gen, ref, records)

	if stats.GenMatched != 7 || stats.GenUnmatched != 3 {
		t.Errorf("gen matched/unmatched = %d/%d, want 7/3", stats.GenMatched, stats.GenUnmatched)
	}
	if stats.RefMatched != 4 || stats.RefUnmatched != 4 {
		t.Errorf("ref matched/unmatched = %d/%d, want 4/4", stats.RefMatched, stats.RefUnmatched)
	}
	if math.Abs(stats.Precision-0.7) > 1e-9 {
		t.Errorf("precision = %v, want 0.7", stats.Precision)
	}
	if math.Abs(stats.Recall-0.5) > 1e-9 {
		t.Errorf("recall = %v, want 0.5", stats.Recall)
	}
	wantF1 := 2 * 0.7 * 0.5 / 1.2
	if math.Abs(stats.F1-wantF1) > 1e-4 {
		t.Errorf("f1 = %v, want %v", stats.F1, wantF1)
	}
}

func TestComputeStatsDuplicateIndicesCountOnce(t *testing.T) {
	gen := makeEvents(4)
	ref := makeEvents(4)

	// Reference index 0 claimed by two records still counts once.
	records := []Record{
		matchedStub([]int{0}, []int{0}),
		matchedStub([]int{1}, []int{0}),
	}

	stats := ComputeStats(gen, ref, records)
	if stats.RefMatched != 1 {
		t.Errorf("ref matched = %d, want 1", stats.RefMatched)
	}
	if stats.GenMatched != 2 {
		t.Errorf("gen matched = %d, want 2", stats.GenMatched)
	}
}

func TestComputeStatsZeroDenominators(t *testing.T) {
	stats := ComputeStats(nil, nil, nil)

	if stats.Precision != 0 || stats.Recall != 0 || stats.F1 != 0 {
		t.Errorf("empty inputs: P=%v R=%v F1=%v, want all 0", stats.Precision, stats.Recall, stats.F1)
	}
	if stats.GenCoveragePct != 0 || stats.RefCoveragePct != 0 {
		t.Errorf("coverage should be 0 on empty inputs")
	}
}

func TestComputeStatsUnmatchedRecordCounts(t *testing.T) {
	gen := makeEvents(2)
	ref := makeEvents(2)

	records := []Record{
		matchedStub([]int{0}, []int{0}),
		{GenIndices: []int{1}, GenEvents: gen[1:2], Type: TypeGeneratedOnly},
		{RefIndices: []int{1}, RefEvents: ref[1:2], Type: TypeReferenceOnly},
	}

	stats := ComputeStats(gen, ref, records)
	if stats.MatchedRecords != 1 {
		t.Errorf("matched records = %d, want 1", stats.MatchedRecords)
	}
	if stats.GenOnlyRecords != 1 || stats.RefOnlyRecords != 1 {
		t.Errorf("unmatched record counts = %d/%d, want 1/1", stats.GenOnlyRecords, stats.RefOnlyRecords)
	}
	if stats.GenTimeStart != 0 || stats.GenTimeEnd != 15 {
		t.Errorf("gen time range = (%v, %v), want (0, 15)", stats.GenTimeStart, stats.GenTimeEnd)
	}
}
