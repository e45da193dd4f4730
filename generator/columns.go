package generator

import (
	"strconv"

	"github.com/orayew2002/employee-fixtures/domain"
)

// column pairs a header with the field it renders.
type column struct {
	header string
	value  func(e domain.Employee) string
}

// columns defines the output columns in order.
var columns = []column{
	{header: "employeeNumber", value: func(e domain.Employee) string { return strconv.Itoa(e.Number) }},
	{header: "username", value: func(e domain.Employee) string { return e.Username }},
	{header: "givenName", value: func(e domain.Employee) string { return e.GivenName }},
	{header: "familyName", value: func(e domain.Employee) string { return e.FamilyName }},
	{header: "displayName", value: func(e domain.Employee) string { return e.DisplayName }},
	{header: "mail", value: func(e domain.Employee) string { return e.Mail }},
	{header: "status", value: func(e domain.Employee) string { return e.Status }},
	{header: "title", value: func(e domain.Employee) string { return e.Title }},
	{header: "country", value: func(e domain.Employee) string { return e.Country }},
	{header: "department", value: func(e domain.Employee) string { return e.Department }},
	{header: "region", value: func(e domain.Employee) string { return e.Region }},
}

// Header returns the column names in output order.
func Header() []string {
	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = c.header
	}
	return header
}

// Row renders e in column order.
func Row(e domain.Employee) []string {
	row := make([]string, len(columns))
	for i, c := range columns {
		row[i] = c.value(e)
	}
	return row
}
