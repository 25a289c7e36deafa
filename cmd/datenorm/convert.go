package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/ingest"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Resolve a Parquet file of raw dates into a new Parquet file",
	RunE:  runConvert,
}

func init() {
	f := convertCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to input Parquet file (required)")
	f.StringVar(&cfg.OutPath, "out", "", "Path to output Parquet file (required)")
	f.BoolVar(&cfg.Debug, "debug", false, "Log stage diagnostics")
	f.BoolVar(&cfg.FailOnUnresolved, "fail-on-unresolved", false, "Exit non-zero when any row does not resolve")
	_ = convertCmd.MarkFlagRequired("file")
	_ = convertCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	log, r := setup()

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := ingest.Convert(cmd.Context(), log, r, &cfg)
	if err != nil {
		exitOnPipelineError(log, "convert", err)
	}

	fmt.Printf("Convert complete: %d rows, %d resolved, %d unresolved, %d null (%.1fs)\n",
		summary.RowsRead, summary.RowsResolved, summary.RowsUnresolved, summary.RowsNull,
		summary.DurationTotal.Seconds())

	if cfg.FailOnUnresolved && summary.RowsUnresolved > 0 {
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}
