package load

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"adeval/internal/adevent"
)

// TimeRange restricts reference loading to events intersecting [Min, Max].
type TimeRange struct {
	Min float64
	Max float64
}

// ReferenceOptions controls reference track loading.
type ReferenceOptions struct {
	// Range drops rows outside the window when non-nil. A row survives if
	// it starts before the window ends and ends after it begins.
	Range *TimeRange
	// ADRowsOnly keeps only rows whose speech_type column is "ad". Ignored
	// when the file carries no speech_type column.
	ADRowsOnly bool
}

// Reference reads a reference AD track from a CSV file with text, start, and
// end columns (times in seconds) plus an optional speech_type column. Events
// come back sorted by start time with indices assigned after filtering and
// sorting.
func Reference(path string, opts ReferenceOptions) ([]adevent.Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open reference ad: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse reference ad: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("reference ad %s: empty file", path)
	}

	columns := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		columns[name] = i
	}
	for _, required := range []string{"text", "start", "end"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("reference ad %s: missing %q column", path, required)
		}
	}
	speechType, hasSpeechType := columns["speech_type"]

	var events []adevent.Event
	for rowNum, row := range rows[1:] {
		if opts.ADRowsOnly && hasSpeechType {
			if speechType >= len(row) || row[speechType] != "ad" {
				continue
			}
		}

		start, err := strconv.ParseFloat(row[columns["start"]], 64)
		if err != nil {
			return nil, fmt.Errorf("reference ad row %d start: %w", rowNum+2, err)
		}
		end, err := strconv.ParseFloat(row[columns["end"]], 64)
		if err != nil {
			return nil, fmt.Errorf("reference ad row %d end: %w", rowNum+2, err)
		}

		if opts.Range != nil && (start > opts.Range.Max || end < opts.Range.Min) {
			continue
		}

		events = append(events, adevent.Event{Start: start, End: end, Text: row[columns["text"]]})
	}

	events = adevent.SortByStart(events)
	for i := range events {
		events[i].Index = i
	}
	return events, nil
}
