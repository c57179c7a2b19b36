package reader

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

const utf8BOM = "\ufeff"

// ReadCSV splits CSV text into cells. Row 0 is the header; rows whose cells
// are all blank are dropped. Rows may have differing lengths.
func ReadCSV(r io.Reader) (Rows, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return Rows{}, fmt.Errorf("%w: reading CSV: %w", ErrParse, err)
	}
	return toRows(records), nil
}

func toRows(records [][]string) Rows {
	var rows Rows
	for i, rec := range records {
		if i == 0 && len(rec) > 0 {
			rec[0] = strings.TrimPrefix(rec[0], utf8BOM)
		}
		if blank(rec) {
			continue
		}
		if rows.Header == nil {
			rows.Header = rec
			continue
		}
		rows.Data = append(rows.Data, rec)
	}
	return rows
}

func blank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
