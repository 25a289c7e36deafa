package ingest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/db"
)

// Finalize records the batch counters, marks the batch loaded, and runs
// ANALYZE on the target table.
func Finalize(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, pf *PreflightResult, st *StageResult) (time.Duration, error) {
	start := time.Now()

	err := db.FinalizeBatch(ctx, pool, pf.BatchID, db.BatchCounts{
		RowsRead:       st.Summary.RowsRead,
		RowsResolved:   st.Summary.RowsResolved,
		RowsUnresolved: st.Summary.RowsUnresolved,
		RowsLoaded:     st.Loaded,
	})
	if err != nil {
		return 0, fmt.Errorf("finalize batch: %w", err)
	}
	log.Info().Str("batch_id", pf.BatchID.String()).Msg("batch marked loaded")

	if _, err := pool.Exec(ctx, "ANALYZE datenorm.resolved_dates"); err != nil {
		return 0, fmt.Errorf("analyze resolved_dates: %w", err)
	}
	log.Info().Msg("ANALYZE complete")

	return time.Since(start), nil
}
