package generator

import (
	"errors"
	"fmt"

	"github.com/orayew2002/employee-fixtures/domain"
)

var ErrInvalidCount = errors.New("employee count must not be negative")

// RowWriter receives the header and then each data row.
type RowWriter interface {
	WriteHeader(header []string) error
	WriteRow(row []string) error
}

// Generator produces employee rows from a name source and a picker.
type Generator struct {
	names  domain.NameSource
	picker domain.Picker
}

// New creates a Generator. Both collaborators are used for the whole run.
func New(names domain.NameSource, picker domain.Picker) *Generator {
	return &Generator{names: names, picker: picker}
}

// Record builds the employee with the given number.
func (g *Generator) Record(number int) domain.Employee {
	given := g.names.FirstName()
	family := g.names.LastName()
	status := g.picker.Pick(domain.Statuses)
	title := g.picker.Pick(domain.Titles)
	country := g.picker.Pick(domain.Countries)
	department := g.picker.Pick(domain.Departments)

	return domain.NewEmployee(number, given, family, status, title, country, department)
}

// ValidateCount rejects counts Generate would refuse, so callers can check
// before creating any output.
func ValidateCount(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidCount, n)
	}
	return nil
}

// Generate writes the header and n rows numbered 1..n to w.
// It returns the number of data rows written before any error.
func (g *Generator) Generate(n int, w RowWriter) (int, error) {
	if err := ValidateCount(n); err != nil {
		return 0, err
	}

	if err := w.WriteHeader(Header()); err != nil {
		return 0, fmt.Errorf("write header: %w", err)
	}

	for number := 1; number <= n; number++ {
		if err := w.WriteRow(Row(g.Record(number))); err != nil {
			return number - 1, fmt.Errorf("employee %d: %w", number, err)
		}
	}

	return n, nil
}
