package match

import (
	"strconv"
	"strings"

	"adeval/internal/adevent"
)

// Type classifies how a record relates the two tracks.
type Type string

const (
	// TypeCluster is an N:M match produced by the cluster matcher.
	TypeCluster Type = "cluster"
	// TypeGeneratedOnly is a generated event in a cluster with no reference.
	TypeGeneratedOnly Type = "generated_only"
	// TypeReferenceOnly is a reference event in a cluster with no generated.
	TypeReferenceOnly Type = "reference_only"
	// TypeOverlap is a 1:N match produced by the overlap matcher.
	TypeOverlap Type = "overlap"
	// TypeNoOverlap is a generated event the overlap matcher found no
	// reference for.
	TypeNoOverlap Type = "no_overlap"
	// TypeDPMatch is a 1:1 diagonal step in the DP alignment.
	TypeDPMatch Type = "dp_match"
	// TypeDPGenGap is a generated event skipped by the DP alignment.
	TypeDPGenGap Type = "dp_gen_gap"
	// TypeDPRefGap is a reference event skipped by the DP alignment.
	TypeDPRefGap Type = "dp_ref_gap"
)

// Record describes how zero or more generated events correspond to zero or
// more reference events. Matchers emit records exactly once per Match call;
// records are read-only afterwards.
//
// The time bound pointers are nil exactly when the corresponding event slice
// is empty. Score is set only by the DP matcher.
type Record struct {
	GenEvents []adevent.Event
	RefEvents []adevent.Event

	GenIndices []int
	RefIndices []int

	CombinedGenText string
	CombinedRefText string

	GenStart *float64
	GenEnd   *float64
	RefStart *float64
	RefEnd   *float64

	Matched bool
	Type    Type
	Score   *float64
}

// NumGenItems returns the number of generated events in the record.
func (r Record) NumGenItems() int { return len(r.GenEvents) }

// NumRefItems returns the number of reference events in the record.
func (r Record) NumRefItems() int { return len(r.RefEvents) }

// GenIndexList renders the generated indices as a comma-joined string for
// flat tabular export.
func (r Record) GenIndexList() string { return joinIndices(r.GenIndices) }

// RefIndexList renders the reference indices as a comma-joined string for
// flat tabular export.
func (r Record) RefIndexList() string { return joinIndices(r.RefIndices) }

func joinIndices(indices []int) string {
	if len(indices) == 0 {
		return ""
	}
	parts := make([]string, len(indices))
	for i, idx := range indices {
		parts[i] = strconv.Itoa(idx)
	}
	return strings.Join(parts, ",")
}

func indicesOf(events []adevent.Event) []int {
	indices := make([]int, len(events))
	for i, e := range events {
		indices[i] = e.Index
	}
	return indices
}

func matchedRecord(gen, ref []adevent.Event, matchType Type) Record {
	genSorted := adevent.SortByStart(gen)
	refSorted := adevent.SortByStart(ref)
	genStart, genEnd := adevent.TimeRange(genSorted)
	refStart, refEnd := adevent.TimeRange(refSorted)

	return Record{
		GenEvents:       genSorted,
		RefEvents:       refSorted,
		GenIndices:      indicesOf(genSorted),
		RefIndices:      indicesOf(refSorted),
		CombinedGenText: adevent.CombineTexts(genSorted),
		CombinedRefText: adevent.CombineTexts(refSorted),
		GenStart:        &genStart,
		GenEnd:          &genEnd,
		RefStart:        &refStart,
		RefEnd:          &refEnd,
		Matched:         true,
		Type:            matchType,
	}
}

func genOnlyRecord(event adevent.Event, matchType Type) Record {
	start, end := event.Start, event.End
	return Record{
		GenEvents:       []adevent.Event{event},
		GenIndices:      []int{event.Index},
		CombinedGenText: event.Text,
		GenStart:        &start,
		GenEnd:          &end,
		Matched:         false,
		Type:            matchType,
	}
}

func refOnlyRecord(event adevent.Event, matchType Type) Record {
	start, end := event.Start, event.End
	return Record{
		RefEvents:       []adevent.Event{event},
		RefIndices:      []int{event.Index},
		CombinedRefText: event.Text,
		RefStart:        &start,
		RefEnd:          &end,
		Matched:         false,
		Type:            matchType,
	}
}
