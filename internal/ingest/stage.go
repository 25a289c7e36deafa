package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/db"
	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/resolve"
)

// StageResult holds metrics from the staging phase.
type StageResult struct {
	Summary  model.Summary
	Loaded   int64
	Duration time.Duration
}

// Stage streams rows from the Parquet file, resolves them, and COPY-loads
// them into datenorm.resolved_dates via a channel-backed CopyFromSource.
func Stage(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, r *resolve.Resolver, pf *PreflightResult, workers int, debug bool) (*StageResult, error) {
	start := time.Now()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan *model.ResolvedRow, readBatchSize)
	errCh := make(chan error, 1)

	var sum model.Summary

	// Producer goroutine: read Parquet → resolve → push to channel
	go func() {
		defer close(ch)
		opts := scanOptions{batchID: pf.BatchID, workers: workers, debug: debug}
		errCh <- scan(ctx, pf.FilePath, r, log, opts, &sum, func(rows []model.ResolvedRow) error {
			for i := range rows {
				row := rows[i]
				select {
				case ch <- &row:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}()

	// Consumer: COPY from channel into the target table
	source := db.NewChannelSource(ch)
	loaded, err := pool.CopyFrom(ctx,
		pgx.Identifier{"datenorm", "resolved_dates"},
		model.ResolvedColumns(),
		source,
	)
	if err != nil {
		// Unblock the producer before waiting on it.
		cancel()
		for range ch {
		}
	}

	prodErr := <-errCh
	if err != nil {
		return nil, fmt.Errorf("stage copy: %w", db.HandlePgError(err))
	}
	if prodErr != nil {
		return nil, fmt.Errorf("stage producer: %w", prodErr)
	}

	dur := time.Since(start)
	log.Info().
		Int64("rows_read", sum.RowsRead).
		Int64("rows_resolved", sum.RowsResolved).
		Int64("rows_unresolved", sum.RowsUnresolved).
		Int64("rows_loaded", loaded).
		Str("duration", dur.String()).
		Str("read_duration", sum.DurationRead.String()).
		Float64("rows_per_sec", float64(loaded)/dur.Seconds()).
		Msg("staging complete")

	sum.RowsLoaded = loaded
	return &StageResult{Summary: sum, Loaded: loaded, Duration: dur}, nil
}
