package model

import (
	"time"

	"github.com/google/uuid"
)

// ResolvedRow is one input row after resolution. It is written to Parquet by
// convert and COPY-loaded into datenorm.resolved_dates by ingest.
type ResolvedRow struct {
	BatchID uuid.UUID `parquet:"-"`

	SourceRowNumber int64   `parquet:"source_row_number"`
	SourceRowHash   []byte  `parquet:"source_row_hash"`
	SourceID        *string `parquet:"id,optional"`

	Raw         *string `parquet:"raw_date,optional"`
	Resolved    *string `parquet:"resolved,optional"`     // canonical form, nil when unresolved
	ResolvedUTC *string `parquet:"resolved_utc,optional"` // RFC 3339 in UTC
	Stage       string  `parquet:"stage"`
	Specifier   *string `parquet:"specifier,optional"`
	Zoned       bool    `parquet:"zoned"`

	Instant *time.Time `parquet:"-"`
}

// ResolvedColumns returns the ordered column names for COPY into
// datenorm.resolved_dates.
func ResolvedColumns() []string {
	return []string{
		"batch_id",
		"source_row_number",
		"source_row_hash",
		"source_id",
		"raw_date",
		"resolved",
		"stage",
		"specifier",
		"zoned",
		"instant",
	}
}

// CopyValues returns the row values in the same order as ResolvedColumns(),
// suitable for pgx CopyFromSource.
func (r *ResolvedRow) CopyValues() []any {
	return []any{
		r.BatchID,
		r.SourceRowNumber,
		r.SourceRowHash,
		r.SourceID,
		r.Raw,
		r.Resolved,
		r.Stage,
		r.Specifier,
		r.Zoned,
		r.Instant,
	}
}
