// Package catalog loads the flagged-product snapshot from CSV at startup.
// The loaded slice is never mutated afterwards; every service reads it.
package catalog

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/consumesafe/backend/internal/domain"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"
)

// Load reads the catalog CSV at path. Columns are resolved by header name;
// missing columns default every record's field to "" so downstream code
// never needs nil checks. Record order is preserved: several ranking rules
// use catalog order as their tie-break.
func Load(path string) ([]domain.ProductRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: open csv")
	}
	defer f.Close()

	records, err := parse(f)
	if err != nil {
		return nil, err
	}

	zap.L().Info("catalog loaded",
		zap.String("component", "catalog"),
		zap.String("path", path),
		zap.Int("products", len(records)))
	return records, nil
}

func parse(r io.Reader) ([]domain.ProductRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // tolerate ragged rows, missing cells become ""

	header, err := reader.Read()
	if err != nil {
		return nil, eris.Wrap(err, "catalog: read header")
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[name] = i
	}

	field := func(row []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	var records []domain.ProductRecord
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, eris.Wrap(err, "catalog: read row")
		}

		records = append(records, domain.ProductRecord{
			ID:               field(row, "id"),
			FlaggedName:      field(row, "boycott_product"),
			Brand:            field(row, "brand"),
			Category:         field(row, "category"),
			Reason:           field(row, "reason"),
			Intensity:        field(row, "intensity"),
			AlternativeName:  field(row, "tunisian_alternative"),
			AlternativeBrand: field(row, "alternative_brand"),
		})
	}

	return records, nil
}
