package employee

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
)

type csvWriter struct {
	file *os.File
	csv  *csv.Writer
}

func newCSVWriter(file *os.File) *csvWriter {
	return &csvWriter{file: file, csv: csv.NewWriter(file)}
}

func (w *csvWriter) WriteHeader(header []string) error {
	return w.csv.Write(header)
}

func (w *csvWriter) WriteRow(row []string) error {
	return w.csv.Write(row)
}

// Close flushes buffered rows and closes the file. The file is closed even if the flush fails.
func (w *csvWriter) Close() error {
	w.csv.Flush()
	flushErr := w.csv.Error()
	if flushErr != nil {
		flushErr = fmt.Errorf("flush: %w", flushErr)
	}

	closeErr := w.file.Close()
	if closeErr != nil {
		closeErr = fmt.Errorf("close %s: %w", w.file.Name(), closeErr)
	}

	return errors.Join(flushErr, closeErr)
}
