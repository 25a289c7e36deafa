package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/datenorm/internal/db"
	"github.com/gyeh/datenorm/internal/exitcode"
	"github.com/gyeh/datenorm/internal/ingest"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Resolve a Parquet file and load the results into Postgres",
	RunE:  runIngest,
}

func init() {
	f := ingestCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to Parquet file (required)")
	f.BoolVar(&cfg.Force, "force", false, "Re-import even if file SHA already exists")
	f.BoolVar(&cfg.Debug, "debug", false, "Log stage diagnostics")
	f.BoolVar(&cfg.FailOnUnresolved, "fail-on-unresolved", false, "Exit non-zero when any row does not resolve")
	_ = ingestCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	log, r := setup()
	ctx := cmd.Context()

	if err := cfg.ValidateWithDSN(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	summary, err := ingest.Run(ctx, pool, log, r, &cfg)
	if err != nil {
		pool.Close()
		exitOnPipelineError(log, "ingest", err)
	}

	if summary.AlreadyLoaded {
		fmt.Printf("Already loaded as batch %s; use --force to re-import\n", summary.BatchID)
		return nil
	}
	fmt.Printf("Ingest complete: %d rows loaded, %d resolved, %d unresolved, %d null (%.1fs)\n",
		summary.RowsLoaded, summary.RowsResolved, summary.RowsUnresolved, summary.RowsNull,
		summary.DurationTotal.Seconds())

	if cfg.FailOnUnresolved && summary.RowsUnresolved > 0 {
		pool.Close()
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}

// exitOnPipelineError logs err and exits with the code for its phase.
func exitOnPipelineError(log zerolog.Logger, op string, err error) {
	var pe *ingest.PipelineError
	if errors.As(err, &pe) {
		log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg(op + " failed")
		switch pe.Phase {
		case ingest.PhasePreflight:
			os.Exit(exitcode.ValidationError)
		case ingest.PhaseStage:
			os.Exit(exitcode.CopyError)
		default:
			os.Exit(exitcode.ResolveError)
		}
	}
	log.Error().Err(err).Msg(op + " failed")
	os.Exit(exitcode.ResolveError)
}
