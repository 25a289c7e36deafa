package parquetio

import (
	"fmt"
	"io"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/datenorm/internal/model"
)

// Reader streams RawDateRow records from a scraped-dates file. The id and
// raw_date columns are both optional, so every value arrives as *string.
type Reader struct {
	file   *os.File
	reader *parquet.GenericReader[model.RawDateRow]
}

// Open opens path for streaming. It does not check the schema; callers that
// need the raw_date column run ValidateSchema first.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open raw dates %s: %w", path, err)
	}

	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat raw dates %s: %w", path, err)
	}

	pf, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("open raw dates %s as parquet: %w", path, err)
	}

	r := parquet.NewGenericReader[model.RawDateRow](pf)
	return &Reader{file: f, reader: r}, nil
}

// NumRows is the row count from the file footer.
func (r *Reader) NumRows() int64 {
	return r.reader.NumRows()
}

// Read fills up to len(rows) records and returns io.EOF after the last one.
// parquet-go reuses the *string targets already present in rows, so the
// pointers are detached first: values from an earlier Read stay intact.
func (r *Reader) Read(rows []model.RawDateRow) (int, error) {
	for i := range rows {
		rows[i] = model.RawDateRow{}
	}
	n, err := r.reader.Read(rows)
	if err != nil && err != io.EOF {
		return n, fmt.Errorf("read raw dates: %w", err)
	}
	return n, err
}

// Schema exposes the file schema for ValidateSchema.
func (r *Reader) Schema() *parquet.Schema {
	return r.reader.Schema()
}

// Close closes the reader and the underlying file.
func (r *Reader) Close() error {
	if err := r.reader.Close(); err != nil {
		r.file.Close()
		return err
	}
	return r.file.Close()
}
