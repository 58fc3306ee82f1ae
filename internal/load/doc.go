// Package load parses audio description tracks into event slices: generated
// tracks from the pipeline's JSON output, reference tracks from transcript
// CSVs. Loaders sort events by start time and assign indices afterwards, so
// matcher output always refers to chronological positions.
package load
