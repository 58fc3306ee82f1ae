package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"adeval/internal/runstore"
)

func newRunsCommand(ctx *commandContext) *cobra.Command {
	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "Inspect recorded evaluation runs",
	}

	runsCmd.AddCommand(newRunsListCommand(ctx))
	runsCmd.AddCommand(newRunsShowCommand(ctx))

	return runsCmd
}

func newRunsListCommand(ctx *commandContext) *cobra.Command {
	var limit int
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recorded runs, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := runstore.Open(cfg.Runs.Dir)
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.ListRuns(cmd.Context(), limit)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, runs)
			}

			out := cmd.OutOrStdout()
			if len(runs) == 0 {
				fmt.Fprintln(out, "No runs recorded")
				return nil
			}

			headers := []string{"ID", "Created", "Matcher", "Gen", "Ref", "Matched", "Precision", "Recall", "F1"}
			aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight, alignRight}
			rows := make([][]string, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, []string{
					run.ID,
					run.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					run.Matcher,
					strconv.Itoa(run.GenTotal),
					strconv.Itoa(run.RefTotal),
					strconv.Itoa(run.MatchedPairs),
					strconv.FormatFloat(run.Precision, 'f', 4, 64),
					strconv.FormatFloat(run.Recall, 'f', 4, 64),
					strconv.FormatFloat(run.F1, 'f', 4, 64),
				})
			}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of runs to show (0 for all)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run list as JSON")
	return cmd
}

func newRunsShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <run-id>",
		Short: "Show a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			store, err := runstore.Open(cfg.Runs.Dir)
			if err != nil {
				return err
			}
			defer store.Close()

			run, err := store.GetRun(cmd.Context(), strings.TrimSpace(args[0]))
			if errors.Is(err, runstore.ErrNotFound) {
				return fmt.Errorf("run %q not found", args[0])
			}
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd, run)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "ID: %s\n", run.ID)
			fmt.Fprintf(out, "Created: %s\n", run.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "Generated: %s\n", run.GeneratedPath)
			fmt.Fprintf(out, "Reference: %s\n", run.ReferencePath)
			fmt.Fprintf(out, "Matcher: %s\n", run.Matcher)
			fmt.Fprintf(out, "Events: %d generated, %d reference\n", run.GenTotal, run.RefTotal)
			fmt.Fprintf(out, "Matched pairs: %d\n", run.MatchedPairs)
			fmt.Fprintf(out, "Precision: %.4f  Recall: %.4f  F1: %.4f\n", run.Precision, run.Recall, run.F1)
			if run.RecordsCSV != "" {
				fmt.Fprintf(out, "Records CSV: %s\n", run.RecordsCSV)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Emit the run as JSON")
	return cmd
}
