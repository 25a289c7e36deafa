package ingest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/db"
)

// Cleanup deletes the rows of a failed batch and marks it failed.
func Cleanup(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, batchID uuid.UUID) error {
	start := time.Now()

	deleted, err := db.DeleteBatchRows(ctx, pool, batchID)
	if err != nil {
		return err
	}
	if err := db.UpdateBatchStatus(ctx, pool, batchID, db.StatusFailed); err != nil {
		return err
	}

	log.Info().
		Int64("rows_deleted", deleted).
		Dur("duration", time.Since(start)).
		Msg("failed batch cleaned up")

	return nil
}
