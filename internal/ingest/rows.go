package ingest

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/normalize"
	"github.com/gyeh/datenorm/internal/resolve"
)

// toResolvedRow combines an input row with its outcome. Unresolved and null
// rows keep their raw value and get stage "none". The returned row shares no
// memory with in, whose buffer the reader refills on the next batch.
func toResolvedRow(batchID uuid.UUID, rowNum int64, in *model.RawDateRow, out resolve.Outcome) model.ResolvedRow {
	row := model.ResolvedRow{
		BatchID:         batchID,
		SourceRowNumber: rowNum,
		SourceRowHash:   normalize.RowHash(rowNum, normalize.Deref(in.ID), normalize.Deref(in.RawDate)),
		SourceID:        normalize.NormalizeID(in.ID),
		Raw:             cloneStr(in.RawDate),
		Stage:           resolve.StageNone.String(),
	}
	if !out.Resolved() {
		return row
	}

	res := out.Resolution
	canonical := res.Timestamp.String()
	instant := res.Timestamp.UTC()
	utc := instant.Format(time.RFC3339Nano)

	row.Resolved = &canonical
	row.ResolvedUTC = &utc
	row.Instant = &instant
	row.Stage = res.Stage.String()
	row.Zoned = res.Timestamp.Zoned
	row.Specifier = normalize.OptStr(res.Specifier)
	return row
}

func cloneStr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.Clone(*s)
	return &v
}
