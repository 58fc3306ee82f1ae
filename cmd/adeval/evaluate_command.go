package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"adeval/internal/adevent"
	"adeval/internal/config"
	"adeval/internal/load"
	"adeval/internal/logging"
	"adeval/internal/match"
	"adeval/internal/report"
	"adeval/internal/runstore"
)

type evaluateFlags struct {
	generated string
	reference string
	output    string
	matcher   string

	minOverlap float64
	wTime      float64
	wText      float64
	gapGen     float64
	gapRef     float64
	timeScale  float64
	timeIoU    bool

	jsonOutput bool
}

func newEvaluateCommand(ctx *commandContext) *cobra.Command {
	var flags evaluateFlags

	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Match a generated AD track against a reference and report coverage",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			applyFlagOverrides(cmd, cfg, &flags)
			return runEvaluate(cmd, cfg, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.generated, "generated", "g", "", "Path to the generated AD JSON file")
	cmd.Flags().StringVarP(&flags.reference, "reference", "r", "", "Path to the reference AD CSV file")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file or directory (directories end with a path separator)")
	cmd.Flags().StringVar(&flags.matcher, "matcher", "", "Matching method: cluster, dp, or overlap")
	cmd.Flags().Float64Var(&flags.minOverlap, "min-overlap", 0, "Minimum overlap in seconds (cluster, overlap)")
	cmd.Flags().Float64Var(&flags.wTime, "w-time", 0, "Time similarity weight (dp)")
	cmd.Flags().Float64Var(&flags.wText, "w-text", 0, "Text similarity weight (dp)")
	cmd.Flags().Float64Var(&flags.gapGen, "gap-gen", 0, "Gap penalty for skipping a generated event (dp)")
	cmd.Flags().Float64Var(&flags.gapRef, "gap-ref", 0, "Gap penalty for skipping a reference event (dp)")
	cmd.Flags().Float64Var(&flags.timeScale, "time-scale", 0, "Decay constant for soft time similarity (dp)")
	cmd.Flags().BoolVar(&flags.timeIoU, "time-iou", false, "Use temporal IoU instead of soft time similarity (dp)")
	cmd.Flags().BoolVar(&flags.jsonOutput, "json", false, "Emit the summary as JSON on stdout")

	_ = cmd.MarkFlagRequired("generated")
	_ = cmd.MarkFlagRequired("reference")

	return cmd
}

// applyFlagOverrides folds explicitly set CLI flags over the file config.
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config, flags *evaluateFlags) {
	if cmd.Flags().Changed("matcher") {
		cfg.Matcher.Method = strings.ToLower(strings.TrimSpace(flags.matcher))
	}
	if cmd.Flags().Changed("min-overlap") {
		cfg.Matcher.MinOverlapSec = flags.minOverlap
	}
	if cmd.Flags().Changed("w-time") {
		cfg.Matcher.WTime = flags.wTime
	}
	if cmd.Flags().Changed("w-text") {
		cfg.Matcher.WText = flags.wText
	}
	if cmd.Flags().Changed("gap-gen") {
		cfg.Matcher.GapPenaltyGen = flags.gapGen
	}
	if cmd.Flags().Changed("gap-ref") {
		cfg.Matcher.GapPenaltyRef = flags.gapRef
	}
	if cmd.Flags().Changed("time-scale") {
		cfg.Matcher.TimeScale = flags.timeScale
	}
	if cmd.Flags().Changed("time-iou") {
		cfg.Matcher.TimeSoft = !flags.timeIoU
	}
}

func matcherOptions(mc config.Matcher) match.Options {
	return match.Options{
		MinOverlapSec: mc.MinOverlapSec,
		WTime:         mc.WTime,
		WText:         mc.WText,
		GapPenaltyGen: mc.GapPenaltyGen,
		GapPenaltyRef: mc.GapPenaltyRef,
		TimeScale:     mc.TimeScale,
		TimeSoft:      mc.TimeSoft,
	}
}

func runEvaluate(cmd *cobra.Command, cfg *config.Config, flags evaluateFlags) error {
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	matcher, err := match.New(cfg.Matcher.Method, matcherOptions(cfg.Matcher))
	if err != nil {
		return err
	}

	gen, err := load.Generated(flags.generated)
	if err != nil {
		return err
	}
	logger.Info("loaded generated ad", slog.Int("events", len(gen)), slog.String("path", flags.generated))

	minStart, maxEnd := adevent.TimeRange(gen)
	refOpts := load.ReferenceOptions{ADRowsOnly: true}
	if len(gen) > 0 {
		refOpts.Range = &load.TimeRange{Min: minStart, Max: maxEnd}
	}
	ref, err := load.Reference(flags.reference, refOpts)
	if err != nil {
		return err
	}
	logger.Info("loaded reference ad", slog.Int("events", len(ref)), slog.String("path", flags.reference))

	records := matcher.Match(gen, ref)
	stats := match.ComputeStats(gen, ref, records)
	logger.Info("matching complete",
		slog.String("matcher", matcher.Name()),
		slog.Int("records", len(records)),
		slog.Int("matched", stats.MatchedRecords),
	)

	outputArg := flags.output
	if outputArg == "" && cfg.Output.Dir != "" {
		outputArg = cfg.Output.Dir + "/"
	}

	summary := report.Summary{
		Timestamp:     time.Now(),
		GeneratedFile: flags.generated,
		ReferenceFile: flags.reference,
		Matcher:       matcher.Name(),
		TotalGen:      len(gen),
		TotalRef:      len(ref),
		Stats:         stats,
	}

	if cfg.Output.DetailedCSV {
		csvPath := report.OutputPath(flags.generated, flags.reference, outputArg, "eval", ".csv")
		if err := report.WriteRecordsCSV(csvPath, records); err != nil {
			return err
		}
		summary.RecordsCSV = csvPath
		logger.Info("wrote records csv", slog.String("path", csvPath))
	}

	if cfg.Output.SummaryJSON {
		// The summary never reuses an explicit -o file path; that names
		// the records CSV.
		summaryArg := outputArg
		if summaryArg != "" && !strings.HasSuffix(summaryArg, "/") {
			summaryArg = ""
		}
		summaryPath := report.OutputPath(flags.generated, flags.reference, summaryArg, "summary", ".json")
		if err := report.WriteSummaryJSON(summaryPath, summary); err != nil {
			return err
		}
		logger.Info("wrote summary json", slog.String("path", summaryPath))
	}

	if cfg.Runs.Enabled {
		if err := recordRun(cmd, cfg, summary); err != nil {
			return err
		}
	}

	if flags.jsonOutput {
		return writeJSON(cmd, summary)
	}
	renderSummary(cmd, summary)
	return nil
}

func recordRun(cmd *cobra.Command, cfg *config.Config, summary report.Summary) error {
	store, err := runstore.Open(cfg.Runs.Dir)
	if err != nil {
		return err
	}
	defer store.Close()

	run := runstore.Run{
		GeneratedPath: summary.GeneratedFile,
		ReferencePath: summary.ReferenceFile,
		Matcher:       summary.Matcher,
		GenTotal:      summary.TotalGen,
		RefTotal:      summary.TotalRef,
		MatchedPairs:  summary.Stats.MatchedRecords,
		Precision:     summary.Stats.Precision,
		Recall:        summary.Stats.Recall,
		F1:            summary.Stats.F1,
		RecordsCSV:    summary.RecordsCSV,
	}
	saved, err := store.SaveRun(cmd.Context(), run)
	if err != nil {
		return err
	}
	if _, err := store.Prune(cmd.Context(), cfg.Runs.Keep); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Recorded run %s\n", saved.ID)
	return nil
}
