package parquetio

import (
	"fmt"
	"strings"

	"github.com/parquet-go/parquet-go"

	"github.com/gyeh/datenorm/internal/model"
)

// ValidateSchema checks that the schema carries the raw date column as a
// string (BYTE_ARRAY) leaf.
func ValidateSchema(schema *parquet.Schema) error {
	for _, field := range schema.Fields() {
		if !strings.EqualFold(field.Name(), model.RawDateColumn) {
			continue
		}
		if !field.Leaf() {
			return fmt.Errorf("column %s is not a leaf column", model.RawDateColumn)
		}
		if field.Type().Kind() != parquet.ByteArray {
			return fmt.Errorf("column %s has type %s, want a string column",
				model.RawDateColumn, field.Type())
		}
		return nil
	}
	return fmt.Errorf("missing required column: %s", model.RawDateColumn)
}
