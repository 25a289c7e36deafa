package model

import "time"

// Summary captures metrics from a single resolve run over a file.
type Summary struct {
	FilePath       string
	FileSHA256     string
	BatchID        string
	AlreadyLoaded  bool
	RowsRead       int64
	RowsResolved   int64
	RowsUnresolved int64
	RowsNull       int64
	RowsLoaded     int64
	ByStage        map[string]int64
	DurationRead   time.Duration
	DurationCopy   time.Duration
	DurationTotal  time.Duration
}

// Tally records one row outcome under its stage name.
func (s *Summary) Tally(stage string, resolved, null bool) {
	if s.ByStage == nil {
		s.ByStage = make(map[string]int64)
	}
	s.RowsRead++
	switch {
	case null:
		s.RowsNull++
	case resolved:
		s.RowsResolved++
	default:
		s.RowsUnresolved++
	}
	s.ByStage[stage]++
}
