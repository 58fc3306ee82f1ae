package config

const (
	defaultMatcherMethod = "cluster"
	defaultMinOverlapSec = 0.5
	defaultWTime         = 0.3
	defaultWText         = 0.7
	defaultGapPenaltyGen = -0.2
	defaultGapPenaltyRef = -0.2
	defaultTimeScale     = 10.0
	defaultTimeSoft      = true
	defaultRunsDir       = "~/.local/share/adeval/runs"
	defaultRunsKeep      = 200
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Matcher: Matcher{
			Method:        defaultMatcherMethod,
			MinOverlapSec: defaultMinOverlapSec,
			WTime:         defaultWTime,
			WText:         defaultWText,
			GapPenaltyGen: defaultGapPenaltyGen,
			GapPenaltyRef: defaultGapPenaltyRef,
			TimeScale:     defaultTimeScale,
			TimeSoft:      defaultTimeSoft,
		},
		Output: Output{
			DetailedCSV: true,
			SummaryJSON: true,
		},
		Runs: Runs{
			Enabled: false,
			Dir:     defaultRunsDir,
			Keep:    defaultRunsKeep,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
