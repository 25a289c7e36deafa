package parquetio

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/datenorm/internal/model"
)

// Writer streams ResolvedRow records into a new Parquet file.
type Writer struct {
	file   *os.File
	writer *parquet.GenericWriter[model.ResolvedRow]
	rows   int64
}

// Create truncates or creates path and returns a Writer over it.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create parquet file: %w", err)
	}
	return &Writer{file: f, writer: parquet.NewGenericWriter[model.ResolvedRow](f)}, nil
}

// Write appends rows to the current row group.
func (w *Writer) Write(rows []model.ResolvedRow) error {
	n, err := w.writer.Write(rows)
	w.rows += int64(n)
	if err != nil {
		return fmt.Errorf("write parquet rows: %w", err)
	}
	return nil
}

// Rows returns the number of rows written so far.
func (w *Writer) Rows() int64 { return w.rows }

// Close flushes the footer and closes the file.
func (w *Writer) Close() error {
	if err := w.writer.Close(); err != nil {
		w.file.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return w.file.Close()
}

// WriteRaw writes an input dataset in the layout Open expects.
func WriteRaw(path string, rows []model.RawDateRow) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create parquet file: %w", err)
	}
	w := parquet.NewGenericWriter[model.RawDateRow](f)
	if _, err := w.Write(rows); err != nil {
		f.Close()
		return fmt.Errorf("write parquet rows: %w", err)
	}
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("close parquet writer: %w", err)
	}
	return f.Close()
}
