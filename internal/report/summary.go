package report

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"adeval/internal/match"
)

// Summary captures one evaluation run for the JSON report.
type Summary struct {
	Timestamp     time.Time   `json:"timestamp"`
	GeneratedFile string      `json:"generated_file"`
	ReferenceFile string      `json:"reference_file"`
	Matcher       string      `json:"matcher"`
	TotalGen      int         `json:"total_gen_events"`
	TotalRef      int         `json:"total_ref_events"`
	Stats         match.Stats `json:"stats"`
	RecordsCSV    string      `json:"records_csv,omitempty"`
}

// WriteSummaryJSON writes the run summary as indented JSON.
func WriteSummaryJSON(path string, summary Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal summary: %w", err)
	}
	data = append(data, '\n')
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}
