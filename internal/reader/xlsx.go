package reader

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX reads the first sheet of a workbook into Rows, same shape as CSV.
func ReadXLSX(r io.Reader) (Rows, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Rows{}, fmt.Errorf("%w: opening workbook: %w", ErrParse, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Rows{}, fmt.Errorf("%w: workbook has no sheets", ErrParse)
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return Rows{}, fmt.Errorf("%w: reading sheet %q: %w", ErrParse, sheets[0], err)
	}
	return toRows(records), nil
}
