// mkfixture writes a Parquet fixture of representative raw date strings, or
// prints what an existing raw-date file contains.
// Usage: go run ./cmd/mkfixture --out testdata/samples.parquet --repeat 100
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gyeh/datenorm/internal/model"
	"github.com/gyeh/datenorm/internal/parquetio"
	"github.com/gyeh/datenorm/internal/resolve"
)

func main() {
	out := flag.String("out", "testdata/samples.parquet", "output parquet")
	repeat := flag.Int("repeat", 1, "times to repeat the sample list")
	nulls := flag.Bool("nulls", true, "add one null raw_date row per repetition")
	check := flag.String("check", "", "only print stats for this parquet file, don't write")
	flag.Parse()

	if *check != "" {
		if err := printStats(*check); err != nil {
			fmt.Fprintf(os.Stderr, "check: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if *repeat < 1 {
		fmt.Fprintln(os.Stderr, "--repeat must be at least 1")
		os.Exit(1)
	}

	var rows []model.RawDateRow
	for rep := 0; rep < *repeat; rep++ {
		for _, s := range resolve.Samples {
			id := fmt.Sprintf("sample-%03d", len(rows)+1)
			raw := s
			rows = append(rows, model.RawDateRow{ID: &id, RawDate: &raw})
		}
		if *nulls {
			id := fmt.Sprintf("sample-%03d", len(rows)+1)
			rows = append(rows, model.RawDateRow{ID: &id})
		}
	}

	if err := parquetio.WriteRaw(*out, rows); err != nil {
		fmt.Fprintf(os.Stderr, "write: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows to %s\n", len(rows), *out)
}

func printStats(path string) error {
	r, err := parquetio.Open(path)
	if err != nil {
		return err
	}
	defer r.Close()

	if err := parquetio.ValidateSchema(r.Schema()); err != nil {
		return err
	}

	buf := make([]model.RawDateRow, 1024)
	var total, null, withID int
	var first []string
	for {
		n, readErr := r.Read(buf)
		for i := 0; i < n; i++ {
			total++
			if buf[i].ID != nil {
				withID++
			}
			if buf[i].RawDate == nil {
				null++
				continue
			}
			if len(first) < 5 {
				first = append(first, *buf[i].RawDate)
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return readErr
		}
	}

	fmt.Printf("Total: %d, Null raw_date: %d, With id: %d\n", total, null, withID)
	for _, s := range first {
		fmt.Printf("  %q\n", s)
	}
	return nil
}
