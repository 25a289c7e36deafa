package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/config"
	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/parquetio"
	"github.com/gyeh/datenorm/internal/resolve"
)

// Convert resolves every row of cfg.FilePath and writes the results to
// cfg.OutPath as Parquet. No database is involved.
func Convert(ctx context.Context, log zerolog.Logger, r *resolve.Resolver, cfg *config.Config) (*model.Summary, error) {
	start := time.Now()

	info, err := Inspect(cfg.FilePath)
	if err != nil {
		return nil, &PipelineError{Phase: PhasePreflight, Err: err}
	}
	if cfg.OutPath == "" {
		return nil, &PipelineError{Phase: PhasePreflight, Err: fmt.Errorf("--out is required")}
	}

	w, err := parquetio.Create(cfg.OutPath)
	if err != nil {
		return nil, &PipelineError{Phase: PhaseStage, Err: err}
	}

	sum := model.Summary{
		FilePath:   info.FilePath,
		FileSHA256: info.FileSHA256,
		BatchID:    uuid.NewString(),
	}
	opts := scanOptions{workers: cfg.Workers, debug: cfg.Debug}
	if err := scan(ctx, cfg.FilePath, r, log, opts, &sum, w.Write); err != nil {
		w.Close()
		return nil, &PipelineError{Phase: PhaseStage, Err: err}
	}
	if err := w.Close(); err != nil {
		return nil, &PipelineError{Phase: PhaseFinalize, Err: err}
	}

	sum.RowsLoaded = w.Rows()
	sum.DurationTotal = time.Since(start)

	log.Info().
		Str("out", cfg.OutPath).
		Int64("rows_read", sum.RowsRead).
		Int64("rows_resolved", sum.RowsResolved).
		Int64("rows_unresolved", sum.RowsUnresolved).
		Str("duration", sum.DurationTotal.String()).
		Msg("convert complete")

	return &sum, nil
}
