package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/db"
	"github.com/gyeh/datenorm/internal/normalize"
	"github.com/gyeh/datenorm/internal/parquetio"
)

// FileInfo is what preflight learns about an input file without a database.
type FileInfo struct {
	// FilePath is the path as given.
	FilePath string
	// FileSHA256 is the hex-encoded SHA-256 of the file.
	FileSHA256 string
	// FileSize is the file size in bytes.
	FileSize int64
	// NumRows is the row count from the Parquet footer.
	NumRows int64
}

// PreflightResult extends FileInfo with the batch registered for the file.
type PreflightResult struct {
	FileInfo
	// BatchID identifies this file's rows in datenorm.resolved_dates. A re-import
	// with --force reuses the existing id.
	BatchID uuid.UUID
	// AlreadyLoaded is true when the file's hash is registered with status
	// "loaded" and force mode is off.
	AlreadyLoaded bool
}

// Inspect hashes the file and validates its schema.
func Inspect(filePath string) (*FileInfo, error) {
	sha, err := normalize.FileHash(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight hash: %w", err)
	}

	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight stat: %w", err)
	}

	reader, err := parquetio.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("preflight open: %w", err)
	}
	defer reader.Close()

	if err := parquetio.ValidateSchema(reader.Schema()); err != nil {
		return nil, fmt.Errorf("preflight validate: %w", err)
	}

	return &FileInfo{
		FilePath:   filePath,
		FileSHA256: sha,
		FileSize:   stat.Size(),
		NumRows:    reader.NumRows(),
	}, nil
}

// Preflight inspects the file and registers its batch.
func Preflight(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, filePath string, force bool) (*PreflightResult, error) {
	start := time.Now()

	info, err := Inspect(filePath)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("file", filepath.Base(filePath)).
		Str("sha256", info.FileSHA256).
		Int64("rows", info.NumRows).
		Dur("duration", time.Since(start)).
		Msg("preflight complete")

	batchID, alreadyLoaded, err := registerBatch(ctx, pool, log, info, force)
	if err != nil {
		return nil, fmt.Errorf("preflight register batch: %w", err)
	}

	return &PreflightResult{
		FileInfo:      *info,
		BatchID:       batchID,
		AlreadyLoaded: alreadyLoaded,
	}, nil
}

func registerBatch(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, info *FileInfo, force bool) (uuid.UUID, bool, error) {
	id, err := db.RegisterBatch(ctx, pool, db.RegisterBatchParams{
		BatchID:        uuid.New(),
		SourceFileName: filepath.Base(info.FilePath),
		SourceSHA256:   info.FileSHA256,
		FileSizeBytes:  info.FileSize,
		RowsTotal:      info.NumRows,
	})
	if err == nil {
		return id, false, nil
	}
	if !db.IsNotFound(err) {
		return uuid.Nil, false, err
	}

	// ON CONFLICT DO NOTHING returned no row: the file was seen before.
	existing, err := db.LookupBatch(ctx, pool, info.FileSHA256)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("lookup existing batch: %w", err)
	}
	if !force && existing.Status == db.StatusLoaded {
		return existing.BatchID, true, nil
	}

	// Re-import: drop whatever a previous run left behind.
	deleted, err := db.DeleteBatchRows(ctx, pool, existing.BatchID)
	if err != nil {
		return uuid.Nil, false, fmt.Errorf("clear previous rows: %w", err)
	}
	if err := db.UpdateBatchStatus(ctx, pool, existing.BatchID, db.StatusPending); err != nil {
		return uuid.Nil, false, fmt.Errorf("reset batch status: %w", err)
	}
	log.Info().
		Str("batch_id", existing.BatchID.String()).
		Int64("rows_deleted", deleted).
		Msg("re-importing previously seen file")
	return existing.BatchID, false, nil
}
