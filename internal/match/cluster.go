package match

import (
	"sort"

	"adeval/internal/adevent"
)

// ClusterMatcher groups events from both tracks into connected components
// under the time-overlap relation, so several generated events can jointly
// match several reference events (N:M). The pairwise overlap scan is
// quadratic in the combined event count.
type ClusterMatcher struct {
	MinOverlapSec float64
}

// Name implements Matcher.
func (m *ClusterMatcher) Name() string { return "cluster" }

type taggedEvent struct {
	event     adevent.Event
	generated bool
}

// Match implements Matcher.
func (m *ClusterMatcher) Match(gen, ref []adevent.Event) []Record {
	combined := make([]taggedEvent, 0, len(gen)+len(ref))
	for _, e := range gen {
		combined = append(combined, taggedEvent{event: e, generated: true})
	}
	for _, e := range ref {
		combined = append(combined, taggedEvent{event: e})
	}

	n := len(combined)
	if n == 0 {
		return nil
	}

	uf := newUnionFind(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adevent.Overlaps(combined[i].event, combined[j].event, m.MinOverlapSec) {
				uf.union(i, j)
			}
		}
	}

	// Group members by component, keeping components in first-seen order so
	// ties in the final sort resolve the same way on every run.
	clusters := make(map[int][]taggedEvent, n)
	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		root := uf.find(i)
		if _, seen := clusters[root]; !seen {
			order = append(order, root)
		}
		clusters[root] = append(clusters[root], combined[i])
	}

	var records []Record
	for _, root := range order {
		var genEvents, refEvents []adevent.Event
		for _, member := range clusters[root] {
			if member.generated {
				genEvents = append(genEvents, member.event)
			} else {
				refEvents = append(refEvents, member.event)
			}
		}

		switch {
		case len(genEvents) > 0 && len(refEvents) > 0:
			records = append(records, matchedRecord(genEvents, refEvents, TypeCluster))
		case len(genEvents) > 0:
			for _, e := range genEvents {
				records = append(records, genOnlyRecord(e, TypeGeneratedOnly))
			}
		default:
			for _, e := range refEvents {
				records = append(records, refOnlyRecord(e, TypeReferenceOnly))
			}
		}
	}

	sort.SliceStable(records, func(i, j int) bool {
		ti, ki := recordSortKey(records[i])
		tj, kj := recordSortKey(records[j])
		if ti != tj {
			return ti < tj
		}
		return ki < kj
	})

	return records
}

// recordSortKey orders records by their earliest defined bound, preferring
// generated time over reference time on equal timestamps.
func recordSortKey(r Record) (float64, int) {
	if r.GenStart != nil {
		return *r.GenStart, 0
	}
	if r.RefStart != nil {
		return *r.RefStart, 1
	}
	return 0, 2
}
