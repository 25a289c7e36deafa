package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/ingest"
	"github.com/gyeh/datenorm/internal/resolve"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Dry-run: validate a Parquet file and report stage distribution (no writes)",
	RunE:  runPlan,
}

func init() {
	f := planCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	f.Int64Var(&cfg.SampleSize, "sample", cfg.SampleSize, "Rows to resolve from the head of the file")
	f.BoolVar(&cfg.Debug, "debug", false, "Log stage diagnostics")
	_ = planCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(planCmd)
}

func runPlan(cmd *cobra.Command, args []string) error {
	log, r := setup()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	rep, err := ingest.Plan(cmd.Context(), log, r, &cfg)
	if err != nil {
		log.Error().Err(err).Msg("plan failed")
		os.Exit(exitcode.ValidationError)
	}

	sum := rep.Summary
	fmt.Println("=== datenorm plan ===")
	fmt.Printf("File:       %s\n", rep.FilePath)
	fmt.Printf("SHA-256:    %s\n", rep.FileSHA256)
	fmt.Printf("Size:       %d bytes\n", rep.FileSize)
	fmt.Printf("Total rows: %d\n", rep.NumRows)
	fmt.Printf("Sampled:    %d rows (%d null)\n", sum.RowsRead, sum.RowsNull)
	fmt.Println()
	fmt.Println("Stage distribution (sampled):")
	stages := append([]resolve.Stage{}, resolve.Stages...)
	for _, stage := range append(stages, resolve.StageNone) {
		if count := sum.ByStage[stage.String()]; count > 0 {
			fmt.Printf("  %-16s %6d sampled → ~%d projected\n", stage, count, rep.Projected(count))
		}
	}

	if len(rep.BySpecifier) > 0 {
		fmt.Println()
		fmt.Println("Format table matches (sampled):")
		names := make([]string, 0, len(rep.BySpecifier))
		for name := range rep.BySpecifier {
			names = append(names, name)
		}
		sort.Slice(names, func(i, j int) bool {
			return rep.BySpecifier[names[i]] > rep.BySpecifier[names[j]] ||
				(rep.BySpecifier[names[i]] == rep.BySpecifier[names[j]] && names[i] < names[j])
		})
		for _, name := range names {
			fmt.Printf("  %-28s %6d\n", name, rep.BySpecifier[name])
		}
	}

	if len(rep.Unresolved) > 0 {
		fmt.Println()
		fmt.Println("Unresolved examples:")
		for _, raw := range rep.Unresolved {
			fmt.Printf("  %q\n", raw)
		}
	}
	fmt.Println()
	fmt.Println("Schema validation: OK")

	return nil
}
