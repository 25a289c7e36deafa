package ingest

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/datenorm/internal/config"
	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/resolve"
)

// PlanReport is a dry run over the head of a file.
type PlanReport struct {
	FileInfo
	Summary     model.Summary
	BySpecifier map[string]int64
	Unresolved  []string // up to maxExamples raw values that did not resolve
}

const maxExamples = 10

// Plan resolves up to cfg.SampleSize rows without writing anything.
func Plan(ctx context.Context, log zerolog.Logger, r *resolve.Resolver, cfg *config.Config) (*PlanReport, error) {
	start := time.Now()

	info, err := Inspect(cfg.FilePath)
	if err != nil {
		return nil, &PipelineError{Phase: PhasePreflight, Err: err}
	}

	rep := &PlanReport{FileInfo: *info, BySpecifier: make(map[string]int64)}
	rep.Summary.FilePath = info.FilePath
	rep.Summary.FileSHA256 = info.FileSHA256

	opts := scanOptions{workers: cfg.Workers, debug: cfg.Debug, limit: cfg.SampleSize}
	err = scan(ctx, cfg.FilePath, r, log, opts, &rep.Summary, func(rows []model.ResolvedRow) error {
		for i := range rows {
			row := &rows[i]
			if row.Specifier != nil {
				rep.BySpecifier[*row.Specifier]++
			}
			if row.Resolved == nil && row.Raw != nil && len(rep.Unresolved) < maxExamples {
				rep.Unresolved = append(rep.Unresolved, *row.Raw)
			}
		}
		return nil
	})
	if err != nil {
		return nil, &PipelineError{Phase: PhaseStage, Err: err}
	}

	rep.Summary.DurationTotal = time.Since(start)
	return rep, nil
}

// Projected scales a sampled count to the whole file.
func (p *PlanReport) Projected(count int64) int64 {
	if p.Summary.RowsRead == 0 {
		return 0
	}
	return count * p.NumRows / p.Summary.RowsRead
}
