package employee

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/orayew2002/employee-fixtures/generator"
)

// Format selects the output file type.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

var ErrUnknownFormat = errors.New("unknown output format")

// Writer is a row sink backed by a file. Close must be called to complete the file.
type Writer interface {
	generator.RowWriter
	Close() error
}

// ParseFormat accepts "csv" or "xlsx" in any case.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath picks XLSX for .xlsx paths and CSV for everything else.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return FormatXLSX
	}
	return FormatCSV
}

// Open creates or truncates path and returns a writer for format.
// The parent directory is created when missing.
func Open(path string, format Format) (Writer, error) {
	if format != FormatCSV && format != FormatXLSX {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}

	if format == FormatXLSX {
		w, err := newXLSXWriter(file)
		if err != nil {
			_ = file.Close()
			return nil, fmt.Errorf("open xlsx stream: %w", err)
		}
		return w, nil
	}

	return newCSVWriter(file), nil
}
