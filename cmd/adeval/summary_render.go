package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"adeval/internal/adevent"
	"adeval/internal/report"
)

// renderSummary prints the run summary as a table on terminals and as plain
// key/value lines otherwise.
func renderSummary(cmd *cobra.Command, summary report.Summary) {
	rows := summaryRows(summary)
	out := cmd.OutOrStdout()

	if stdoutIsTerminal() {
		fmt.Fprintln(out, renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
		return
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s: %s\n", row[0], row[1])
	}
}

func summaryRows(summary report.Summary) [][]string {
	s := summary.Stats
	return [][]string{
		{"Matcher", summary.Matcher},
		{"Generated events", strconv.Itoa(summary.TotalGen)},
		{"Reference events (in range)", strconv.Itoa(summary.TotalRef)},
		{"Generated time range", fmt.Sprintf("%s - %s", adevent.FormatSeconds(s.GenTimeStart), adevent.FormatSeconds(s.GenTimeEnd))},
		{"Matched records", strconv.Itoa(s.MatchedRecords)},
		{"Generated-only records", strconv.Itoa(s.GenOnlyRecords)},
		{"Reference-only records", strconv.Itoa(s.RefOnlyRecords)},
		{"Precision", formatRatio(s.GenMatched, s.GenTotal, s.Precision)},
		{"Recall", formatRatio(s.RefMatched, s.RefInRange, s.Recall)},
		{"F1", strconv.FormatFloat(s.F1, 'f', 4, 64)},
	}
}

func formatRatio(numerator, denominator int, value float64) string {
	return fmt.Sprintf("%d/%d = %s", numerator, denominator, strconv.FormatFloat(value, 'f', 4, 64))
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
