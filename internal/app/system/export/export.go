// Package export renders tabular record sets as CSV text or XLSX workbooks.
//
// Both formats share one Table so a record exported either way carries the
// same column order and the same cell values.
package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// ErrExport wraps any formatter failure.
var ErrExport = errors.New("export failed")

// Content types and dispositions used by download handlers.
const (
	CSVContentType  = "text/csv"
	XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

// Table is a header row plus data rows. Row cells are string, int64,
// float64 or nil (rendered as an empty cell).
type Table struct {
	Header []string
	Rows   [][]any
}

// Cell renders a single value the way both formats print it.
func Cell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int64:
		return strconv.FormatInt(x, 10)
	case int:
		return strconv.Itoa(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// WriteCSV streams t to w. Fields are quoted only when they contain the
// delimiter, a quote or a line break.
func WriteCSV(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return fmt.Errorf("%w: csv header: %v", ErrExport, err)
	}
	rec := make([]string, len(t.Header))
	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return fmt.Errorf("%w: row %d has %d cells, header has %d", ErrExport, i, len(row), len(t.Header))
		}
		for j, v := range row {
			rec[j] = Cell(v)
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("%w: csv row %d: %v", ErrExport, i, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%w: csv flush: %v", ErrExport, err)
	}
	return nil
}

// CSV renders t as CSV text.
func CSV(t Table) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// XLSX renders t as a workbook with a single worksheet named sheet.
// Row 1 holds the header; numbers are stored as numeric cells.
func XLSX(sheet string, t Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("%w: rename sheet: %v", ErrExport, err)
	}

	header := make([]any, len(t.Header))
	for i, h := range t.Header {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("%w: xlsx header: %v", ErrExport, err)
	}

	for i, row := range t.Rows {
		if len(row) != len(t.Header) {
			return nil, fmt.Errorf("%w: row %d has %d cells, header has %d", ErrExport, i, len(row), len(t.Header))
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExport, err)
		}
		r := row
		if err := f.SetSheetRow(sheet, cell, &r); err != nil {
			return nil, fmt.Errorf("%w: xlsx row %d: %v", ErrExport, i, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("%w: write workbook: %v", ErrExport, err)
	}
	return buf.Bytes(), nil
}
