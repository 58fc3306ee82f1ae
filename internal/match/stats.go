package match

import "adeval/internal/adevent"

// Stats summarizes how much of each track a set of correspondence records
// accounts for. The reference slice is expected to be pre-filtered to the
// generated time range by the caller.
type Stats struct {
	GenTimeStart float64 `json:"gen_time_start"`
	GenTimeEnd   float64 `json:"gen_time_end"`

	GenTotal     int `json:"gen_total"`
	GenMatched   int `json:"gen_matched"`
	GenUnmatched int `json:"gen_unmatched"`
	// GenCoveragePct is GenMatched over GenTotal as a percentage.
	GenCoveragePct float64 `json:"gen_coverage_pct"`

	RefInRange     int     `json:"ref_in_range"`
	RefMatched     int     `json:"ref_matched"`
	RefUnmatched   int     `json:"ref_unmatched"`
	RefCoveragePct float64 `json:"ref_coverage_pct"`

	// Record counts: matched records, unmatched records carrying a
	// generated event, unmatched records carrying a reference event.
	MatchedRecords int `json:"matched_records"`
	GenOnlyRecords int `json:"gen_only_records"`
	RefOnlyRecords int `json:"ref_only_records"`

	// Precision is GenMatched/GenTotal, Recall is RefMatched/RefInRange,
	// F1 their harmonic mean. All default to 0 on a zero denominator.
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// ComputeStats aggregates records against the original sequences. Matched
// indices are counted once each regardless of how many records claim them.
func ComputeStats(gen, ref []adevent.Event, records []Record) Stats {
	genStart, genEnd := adevent.TimeRange(gen)

	genMatched := make(map[int]struct{})
	refMatched := make(map[int]struct{})
	var matchedRecords, genOnlyRecords, refOnlyRecords int
	for _, r := range records {
		if r.Matched {
			matchedRecords++
			for _, idx := range r.GenIndices {
				genMatched[idx] = struct{}{}
			}
			for _, idx := range r.RefIndices {
				refMatched[idx] = struct{}{}
			}
			continue
		}
		if len(r.GenEvents) > 0 {
			genOnlyRecords++
		}
		if len(r.RefEvents) > 0 {
			refOnlyRecords++
		}
	}

	stats := Stats{
		GenTimeStart:   genStart,
		GenTimeEnd:     genEnd,
		GenTotal:       len(gen),
		GenMatched:     len(genMatched),
		GenUnmatched:   len(gen) - len(genMatched),
		RefInRange:     len(ref),
		RefMatched:     len(refMatched),
		RefUnmatched:   len(ref) - len(refMatched),
		MatchedRecords: matchedRecords,
		GenOnlyRecords: genOnlyRecords,
		RefOnlyRecords: refOnlyRecords,
	}

	if stats.GenTotal > 0 {
		stats.Precision = float64(stats.GenMatched) / float64(stats.GenTotal)
		stats.GenCoveragePct = stats.Precision * 100
	}
	if stats.RefInRange > 0 {
		stats.Recall = float64(stats.RefMatched) / float64(stats.RefInRange)
		stats.RefCoveragePct = stats.Recall * 100
	}
	if stats.Precision+stats.Recall > 0 {
		stats.F1 = 2 * stats.Precision * stats.Recall / (stats.Precision + stats.Recall)
	}

	return stats
}
