package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/config"
	"github.com/gyeh/datenorm/internal/db"
	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/resolve"
)

// Pipeline phases, reported in PipelineError.Phase.
const (
	PhasePreflight = "preflight"
	PhaseStage     = "stage"
	PhaseFinalize  = "finalize"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Run executes the full ingest pipeline: preflight → stage → finalize.
// A failure after preflight removes the batch's partial rows.
func Run(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, r *resolve.Resolver, cfg *config.Config) (*model.Summary, error) {
	totalStart := time.Now()

	// Phase 1: Preflight
	log.Info().Str("file", cfg.FilePath).Msg("starting preflight")
	pf, err := Preflight(ctx, pool, log, cfg.FilePath, cfg.Force)
	if err != nil {
		return nil, &PipelineError{Phase: PhasePreflight, Err: err}
	}

	if pf.AlreadyLoaded {
		log.Info().
			Str("batch_id", pf.BatchID.String()).
			Str("sha256", pf.FileSHA256).
			Msg("file already loaded, skipping (use --force to re-import)")
		return &model.Summary{
			FilePath:      pf.FilePath,
			FileSHA256:    pf.FileSHA256,
			BatchID:       pf.BatchID.String(),
			AlreadyLoaded: true,
			DurationTotal: time.Since(totalStart),
		}, nil
	}

	// Phase 2: Stage
	log.Info().Msg("starting staging")
	if err := db.UpdateBatchStatus(ctx, pool, pf.BatchID, db.StatusStaging); err != nil {
		return nil, &PipelineError{Phase: PhaseStage, Err: err}
	}

	st, err := Stage(ctx, pool, log, r, pf, cfg.Workers, cfg.Debug)
	if err != nil {
		fail(ctx, pool, log, pf)
		return nil, &PipelineError{Phase: PhaseStage, Err: err}
	}

	// Phase 3: Finalize
	log.Info().Msg("finalizing")
	if _, err := Finalize(ctx, pool, log, pf, st); err != nil {
		fail(ctx, pool, log, pf)
		return nil, &PipelineError{Phase: PhaseFinalize, Err: err}
	}

	summary := st.Summary
	summary.FilePath = pf.FilePath
	summary.FileSHA256 = pf.FileSHA256
	summary.BatchID = pf.BatchID.String()
	summary.DurationCopy = st.Duration
	summary.DurationTotal = time.Since(totalStart)

	log.Info().
		Int64("rows_read", summary.RowsRead).
		Int64("rows_resolved", summary.RowsResolved).
		Int64("rows_unresolved", summary.RowsUnresolved).
		Int64("rows_loaded", summary.RowsLoaded).
		Str("total_duration", summary.DurationTotal.String()).
		Msg("ingest pipeline complete")

	return &summary, nil
}

// fail cleans up a batch on a context that outlives a cancelled run.
func fail(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
	defer cancel()
	if err := Cleanup(ctx, pool, log, pf.BatchID); err != nil {
		log.Warn().Err(err).Msg("batch cleanup failed (non-fatal)")
	}
}
