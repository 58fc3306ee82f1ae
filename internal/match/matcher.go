package match

import (
	"fmt"
	"strings"

	"adeval/internal/adevent"
)

// Matcher aligns a generated event sequence against a reference sequence.
// Both sequences are expected to be sorted by start time with indices
// assigned by the loader. Implementations are pure: they keep no state
// between calls and never modify their inputs.
type Matcher interface {
	Name() string
	Match(gen, ref []adevent.Event) []Record
}

// Options carries the tuning knobs shared by the matching strategies. Zero
// values are not meaningful defaults; start from DefaultOptions.
type Options struct {
	// MinOverlapSec is the minimum overlap in seconds for two events to be
	// linked (cluster and overlap matchers).
	MinOverlapSec float64

	// DP matcher weights and penalties. Gap penalties are expected to be
	// negative; a non-negative penalty can make the alignment prefer
	// all-gaps over any match.
	WTime         float64
	WText         float64
	GapPenaltyGen float64
	GapPenaltyRef float64

	// TimeScale is the decay constant for the soft time similarity.
	TimeScale float64
	// TimeSoft selects exp(-|Δstart|/TimeScale) when true and temporal IoU
	// when false.
	TimeSoft bool

	// TextSimilarity scores two texts in [0, 1]. Nil selects TokenJaccard.
	TextSimilarity TextSimilarityFunc
}

// DefaultOptions returns the standard matcher tuning.
func DefaultOptions() Options {
	return Options{
		MinOverlapSec: 0.5,
		WTime:         0.3,
		WText:         0.7,
		GapPenaltyGen: -0.2,
		GapPenaltyRef: -0.2,
		TimeScale:     10.0,
		TimeSoft:      true,
	}
}

// New returns the matcher registered under method: "cluster", "overlap", or
// "dp".
func New(method string, opts Options) (Matcher, error) {
	switch strings.ToLower(strings.TrimSpace(method)) {
	case "cluster":
		return &ClusterMatcher{MinOverlapSec: opts.MinOverlapSec}, nil
	case "overlap":
		return &OverlapMatcher{MinOverlapSec: opts.MinOverlapSec}, nil
	case "dp":
		return NewDPMatcher(opts), nil
	default:
		return nil, fmt.Errorf("unknown matcher %q (available: cluster, dp, overlap)", method)
	}
}
