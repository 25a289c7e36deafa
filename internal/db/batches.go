package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	embedsql "github.com/gyeh/datenorm/internal/sql"
)

// Batch status values stored in datenorm.batches.status.
const (
	StatusPending = "pending"
	StatusStaging = "staging"
	StatusLoaded  = "loaded"
	StatusFailed  = "failed"
)

// BatchRecord is one row of datenorm.batches.
type BatchRecord struct {
	BatchID uuid.UUID
	Status  string
}

// RegisterBatchParams are the columns written when a file is first seen.
type RegisterBatchParams struct {
	BatchID        uuid.UUID
	SourceFileName string
	SourceSHA256   string
	FileSizeBytes  int64
	RowsTotal      int64
}

// BatchCounts are the per-run row counters written at finalize.
type BatchCounts struct {
	RowsRead       int64
	RowsResolved   int64
	RowsUnresolved int64
	RowsLoaded     int64
}

// RegisterBatch inserts a batch row. It returns ErrNotFound when a batch for
// the same file hash already exists.
func RegisterBatch(ctx context.Context, pool *pgxpool.Pool, p RegisterBatchParams) (uuid.UUID, error) {
	var id uuid.UUID
	err := pool.QueryRow(ctx, embedsql.RegisterBatch,
		p.BatchID, p.SourceFileName, p.SourceSHA256, p.FileSizeBytes, p.RowsTotal,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, HandlePgError(err)
	}
	return id, nil
}

// LookupBatch returns the batch registered for a file hash.
func LookupBatch(ctx context.Context, pool *pgxpool.Pool, sha string) (BatchRecord, error) {
	var rec BatchRecord
	err := pool.QueryRow(ctx, embedsql.LookupBatch, sha).Scan(&rec.BatchID, &rec.Status)
	if err != nil {
		return BatchRecord{}, HandlePgError(err)
	}
	return rec, nil
}

// UpdateBatchStatus sets the status of a batch.
func UpdateBatchStatus(ctx context.Context, pool *pgxpool.Pool, batchID uuid.UUID, status string) error {
	tag, err := pool.Exec(ctx, embedsql.UpdateBatchStatus, batchID, status)
	if err != nil {
		return HandlePgError(err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update batch %s: %w", batchID, ErrNotFound)
	}
	return nil
}

// FinalizeBatch records counts and marks the batch loaded.
func FinalizeBatch(ctx context.Context, pool *pgxpool.Pool, batchID uuid.UUID, c BatchCounts) error {
	_, err := pool.Exec(ctx, embedsql.FinalizeBatch,
		batchID, c.RowsRead, c.RowsResolved, c.RowsUnresolved, c.RowsLoaded, StatusLoaded,
	)
	return HandlePgError(err)
}

// DeleteBatchRows removes the resolved rows of a batch, for re-imports and
// failed runs.
func DeleteBatchRows(ctx context.Context, pool *pgxpool.Pool, batchID uuid.UUID) (int64, error) {
	tag, err := pool.Exec(ctx, embedsql.DeleteBatchRows, batchID)
	if err != nil {
		return 0, HandlePgError(err)
	}
	return tag.RowsAffected(), nil
}

// IsNotFound reports whether err means no row matched.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
