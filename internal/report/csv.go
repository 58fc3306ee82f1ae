package report

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"adeval/internal/match"
)

var recordHeader = []string{
	"matched", "match_type",
	"gen_indices", "ref_indices",
	"gen_start", "gen_end", "ref_start", "ref_end",
	"text_gen", "text_ref",
	"num_gen_items", "num_ref_items",
	"score",
}

// WriteRecordsCSV writes one row per correspondence record. Absent time
// bounds and scores render as empty cells.
func WriteRecordsCSV(path string, records []match.Record) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create records csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(recordHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range records {
		row := []string{
			strconv.FormatBool(r.Matched),
			string(r.Type),
			r.GenIndexList(),
			r.RefIndexList(),
			formatBound(r.GenStart),
			formatBound(r.GenEnd),
			formatBound(r.RefStart),
			formatBound(r.RefEnd),
			r.CombinedGenText,
			r.CombinedRefText,
			strconv.Itoa(r.NumGenItems()),
			strconv.Itoa(r.NumRefItems()),
			formatBound(r.Score),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush csv: %w", err)
	}
	return nil
}

func formatBound(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
