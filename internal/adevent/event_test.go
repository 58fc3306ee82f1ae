package adevent

import (
	"math"
	"testing"
)

func TestOverlapDuration(t *testing.T) {
	tests := []struct {
		name string
		a, b Event
		want float64
	}{
		{"partial overlap", Event{Start: 0, End: 5}, Event{Start: 3, End: 8}, 2},
		{"containment", Event{Start: 0, End: 10}, Event{Start: 2, End: 4}, 2},
		{"no overlap", Event{Start: 0, End: 1}, Event{Start: 2, End: 3}, 0},
		{"touching edges", Event{Start: 0, End: 2}, Event{Start: 2, End: 4}, 0},
		{"identical", Event{Start: 1, End: 4}, Event{Start: 1, End: 4}, 3},
		{"order independent", Event{Start: 3, End: 8}, Event{Start: 0, End: 5}, 2},
	}

	for _, tt := range tests {
		if got := OverlapDuration(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: OverlapDuration = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestOverlaps(t *testing.T) {
	a := Event{Start: 0, End: 5}
	b := Event{Start: 4, End: 9}

	if !Overlaps(a, b, 0.5) {
		t.Error("events overlapping by 1s should satisfy minOverlap 0.5")
	}
	if Overlaps(a, b, 2.0) {
		t.Error("events overlapping by 1s should not satisfy minOverlap 2.0")
	}

	// Zero minOverlap links touching intervals, even zero-width ones.
	touch := Event{Start: 5, End: 5}
	if !Overlaps(a, touch, 0) {
		t.Error("zero-width touching interval should overlap with minOverlap 0")
	}
}

func TestTemporalIoU(t *testing.T) {
	tests := []struct {
		name string
		a, b Event
		want float64
	}{
		{"identical", Event{Start: 0, End: 4}, Event{Start: 0, End: 4}, 1.0},
		{"half", Event{Start: 0, End: 2}, Event{Start: 1, End: 3}, 1.0 / 3.0},
		{"disjoint", Event{Start: 0, End: 1}, Event{Start: 5, End: 6}, 0},
		{"zero union", Event{Start: 2, End: 2}, Event{Start: 2, End: 2}, 0},
	}

	for _, tt := range tests {
		if got := TemporalIoU(tt.a, tt.b); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: TemporalIoU = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCombineTextsSortsByStart(t *testing.T) {
	events := []Event{
		{Start: 10, End: 12, Text: "second"},
		{Start: 0, End: 2, Text: "first"},
		{Start: 20, End: 22, Text: "third"},
	}

	got := CombineTexts(events)
	if got != "first second third" {
		t.Errorf("CombineTexts = %q, want %q", got, "first second third")
	}

	// Supplying the events in a different order must not change the result.
	reordered := []Event{events[2], events[0], events[1]}
	if again := CombineTexts(reordered); again != got {
		t.Errorf("CombineTexts order dependence: %q vs %q", again, got)
	}

	if CombineTexts(nil) != "" {
		t.Error("CombineTexts(nil) should be empty")
	}
}

func TestTimeRange(t *testing.T) {
	events := []Event{
		{Start: 5, End: 9},
		{Start: 1, End: 3},
		{Start: 7, End: 20},
	}
	start, end := TimeRange(events)
	if start != 1 || end != 20 {
		t.Errorf("TimeRange = (%v, %v), want (1, 20)", start, end)
	}

	start, end = TimeRange(nil)
	if start != 0 || end != 0 {
		t.Errorf("TimeRange(nil) = (%v, %v), want (0, 0)", start, end)
	}
}

func TestSortByStartStable(t *testing.T) {
	events := []Event{
		{Start: 2, Text: "b", Index: 1},
		{Start: 2, Text: "a", Index: 0},
		{Start: 1, Text: "c", Index: 2},
	}
	sorted := SortByStart(events)
	if sorted[0].Text != "c" || sorted[1].Text != "b" || sorted[2].Text != "a" {
		t.Errorf("SortByStart order = %q %q %q", sorted[0].Text, sorted[1].Text, sorted[2].Text)
	}
	// Input slice stays untouched.
	if events[0].Text != "b" {
		t.Error("SortByStart mutated its input")
	}
}
