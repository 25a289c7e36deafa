package ingest

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/parquetio"
	"github.com/gyeh/datenorm/internal/resolve"
)

const readBatchSize = 1024

// scanOptions controls one pass over an input file.
type scanOptions struct {
	batchID uuid.UUID
	workers int
	debug   bool
	limit   int64 // stop after this many rows; 0 means all
}

// scan reads the file in batches, resolves each batch in parallel and hands
// the converted rows to emit in source order. emit may retain the rows.
// Counters and read time accumulate in sum.
func scan(ctx context.Context, path string, r *resolve.Resolver, log zerolog.Logger, opts scanOptions, sum *model.Summary, emit func([]model.ResolvedRow) error) error {
	reader, err := parquetio.Open(path)
	if err != nil {
		return err
	}
	defer reader.Close()

	buf := make([]model.RawDateRow, readBatchSize)
	raws := make([]*string, 0, readBatchSize)
	out := make([]model.ResolvedRow, 0, readBatchSize)
	var rowNum int64

	for {
		readStart := time.Now()
		n, readErr := reader.Read(buf)
		sum.DurationRead += time.Since(readStart)
		if opts.limit > 0 && rowNum+int64(n) > opts.limit {
			n = int(opts.limit - rowNum)
		}

		raws = raws[:0]
		for i := 0; i < n; i++ {
			raws = append(raws, buf[i].RawDate)
		}
		outcomes, err := resolve.Batch(ctx, r, raws, opts.workers, opts.debug)
		if err != nil {
			return err
		}

		out = out[:0]
		for i, oc := range outcomes {
			rowNum++
			row := toResolvedRow(opts.batchID, rowNum, &buf[i], oc)
			sum.Tally(row.Stage, oc.Resolved(), errors.Is(oc.Err, resolve.ErrNilInput))
			if !oc.Resolved() && oc.Err != nil && !errors.Is(oc.Err, resolve.ErrNilInput) {
				log.Debug().Int64("row", rowNum).Str("raw", *buf[i].RawDate).Msg("row unresolved")
			}
			out = append(out, row)
		}
		if len(out) > 0 {
			if err := emit(out); err != nil {
				return err
			}
		}

		if opts.limit > 0 && rowNum >= opts.limit {
			return nil
		}
		if readErr == io.EOF {
			return nil
		}
		if readErr != nil {
			return fmt.Errorf("read parquet at row %d: %w", rowNum, readErr)
		}
		if n == 0 {
			return nil
		}
	}
}
