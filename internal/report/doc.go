// Package report writes matching results to disk: a flat per-record CSV for
// downstream scoring and a JSON summary of the run, plus the timestamped
// output filename convention shared by both.
package report
