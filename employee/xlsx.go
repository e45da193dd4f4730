package employee

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/orayew2002/employee-fixtures/excel"
	"github.com/xuri/excelize/v2"
)

const sheetName = "Employees"

const minColumnWidth = 12

// columnWidths overrides the header-derived width for columns holding long values.
var columnWidths = map[string]float64{
	"givenName":   16,
	"familyName":  16,
	"displayName": 28,
	"mail":        30,
	"title":       24,
	"department":  18,
}

func columnWidth(header string) float64 {
	if w, ok := columnWidths[header]; ok {
		return w
	}
	return max(minColumnWidth, float64(len(header)+2))
}

type xlsxWriter struct {
	file   *os.File
	book   *excelize.File
	stream *excelize.StreamWriter
	styles *excel.StyleManager
	row    int
}

func newXLSXWriter(file *os.File) (*xlsxWriter, error) {
	book := excelize.NewFile()

	if err := book.SetSheetName("Sheet1", sheetName); err != nil {
		_ = book.Close()
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	stream, err := book.NewStreamWriter(sheetName)
	if err != nil {
		_ = book.Close()
		return nil, fmt.Errorf("new stream writer: %w", err)
	}

	return &xlsxWriter{
		file:   file,
		book:   book,
		stream: stream,
		styles: excel.NewStyleManager(book),
	}, nil
}

func (w *xlsxWriter) WriteHeader(header []string) error {
	// column widths must be set before the first row is streamed
	for i, h := range header {
		if err := w.stream.SetColWidth(i+1, i+1, columnWidth(h)); err != nil {
			return fmt.Errorf("set width of column %s: %w", excel.ColumnName(i), err)
		}
	}

	style, err := w.styles.Header()
	if err != nil {
		return fmt.Errorf("header style: %w", err)
	}

	cells := make([]any, len(header))
	for i, h := range header {
		cells[i] = excelize.Cell{StyleID: style, Value: h}
	}

	return w.setRow(cells)
}

func (w *xlsxWriter) WriteRow(row []string) error {
	style, err := w.styles.Body()
	if err != nil {
		return fmt.Errorf("body style: %w", err)
	}

	cells := make([]any, len(row))
	for i, v := range row {
		cells[i] = excelize.Cell{StyleID: style, Value: v}
	}

	// employeeNumber is stored as a number so the sheet sorts numerically
	if len(row) > 0 {
		if n, err := strconv.Atoi(row[0]); err == nil {
			cells[0] = excelize.Cell{StyleID: style, Value: n}
		}
	}

	return w.setRow(cells)
}

func (w *xlsxWriter) setRow(cells []any) error {
	cell := excel.CellName(w.row, 0)
	if err := w.stream.SetRow(cell, cells); err != nil {
		return fmt.Errorf("row %s: %w", cell, err)
	}
	w.row++
	return nil
}

// Close finishes the stream, writes the workbook into the file and closes both.
func (w *xlsxWriter) Close() error {
	var errs []error

	if err := w.stream.Flush(); err != nil {
		errs = append(errs, fmt.Errorf("flush stream: %w", err))
	} else if err := w.book.Write(w.file); err != nil {
		errs = append(errs, fmt.Errorf("write workbook: %w", err))
	}

	if err := w.book.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close workbook: %w", err))
	}
	if err := w.file.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close %s: %w", w.file.Name(), err))
	}

	return errors.Join(errs...)
}
