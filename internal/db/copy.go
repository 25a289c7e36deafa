package db

import (
	"github.com/jackc/pgx/v5"

	"github.com/gyeh/datenorm/internal/model"
)

// ChannelSource implements pgx.CopyFromSource by reading ResolvedRows from a
// channel, so the Parquet reader and the COPY writer apply backpressure to
// each other.
type ChannelSource struct {
	ch      <-chan *model.ResolvedRow
	current *model.ResolvedRow
	rows    int64
}

// NewChannelSource creates a CopyFromSource backed by a channel.
func NewChannelSource(ch <-chan *model.ResolvedRow) *ChannelSource {
	return &ChannelSource{ch: ch}
}

// Next advances to the next row. Returns false when the channel is closed.
func (s *ChannelSource) Next() bool {
	row, ok := <-s.ch
	if !ok {
		return false
	}
	s.current = row
	s.rows++
	return true
}

// Values returns the current row's values in COPY column order.
func (s *ChannelSource) Values() ([]any, error) {
	return s.current.CopyValues(), nil
}

// Err always returns nil; producer errors travel on their own channel.
func (s *ChannelSource) Err() error {
	return nil
}

// Rows returns how many rows have been handed to COPY.
func (s *ChannelSource) Rows() int64 { return s.rows }

var _ pgx.CopyFromSource = (*ChannelSource)(nil)
