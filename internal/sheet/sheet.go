// Package sheet reads raw rows from an XLSX workbook.
package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/dgerard42/diarium/internal/model"
)

// ReadRows returns the rows of the workbook page at the given 1-based
// index, in sheet order. The first row holds the field names; empty
// cells are absent fields. Cells are read raw so date serials and
// fractional times reach the coercer unformatted.
func ReadRows(path string, page int) ([]model.RawRow, error) {
	book, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer func() {
		_ = book.Close()
	}()

	sheets := book.GetSheetList()
	if page < 1 || page > len(sheets) {
		return nil, fmt.Errorf("workbook has no sheet %d (found %d)", page, len(sheets))
	}
	rows, err := book.GetRows(sheets[page-1], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[page], err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	headers := rows[0]
	out := make([]model.RawRow, 0, len(rows)-1)
	for _, cells := range rows[1:] {
		row := model.RawRow{}
		for i, cell := range cells {
			if i >= len(headers) || headers[i] == "" || cell == "" {
				continue
			}
			row[headers[i]] = cell
		}
		if len(row) == 0 {
			continue
		}
		out = append(out, row)
	}
	return out, nil
}
