package model

// RawDateRow mirrors the Parquet schema of an input dataset: one scraped
// date string per row, with an optional caller-supplied identifier.
type RawDateRow struct {
	ID      *string `parquet:"id,optional"`
	RawDate *string `parquet:"raw_date,optional"`
}

// RawDateColumn is the column every input file must carry.
const RawDateColumn = "raw_date"
