package domain

import (
	"strings"
	"unicode/utf8"
)

// Employee is one synthetic employee row.
type Employee struct {
	Number      int
	Username    string
	GivenName   string
	FamilyName  string
	DisplayName string
	Mail        string
	Status      string
	Title       string
	Country     string
	Department  string
	Region      string
}

const (
	mailDomain = "example.com"

	RegionNorthAmerica = "North America"
	RegionEurope       = "Europe"
)

var Countries = []string{"USA", "Canada", "UK", "Germany", "France"}

var Departments = []string{
	"Engineering",
	"Product",
	"Data Science",
	"Human Resources",
	"Sales",
}

var Titles = []string{
	"Software Engineer",
	"Product Manager",
	"Data Analyst",
	"HR Specialist",
	"Sales Representative",
}

var Statuses = []string{"active", "inactive"}

// NewEmployee builds a record from the sampled values and fills in the derived fields.
func NewEmployee(number int, given, family, status, title, country, department string) Employee {
	username := Username(given, family)

	return Employee{
		Number:      number,
		Username:    username,
		GivenName:   given,
		FamilyName:  family,
		DisplayName: given + " " + family,
		Mail:        Mail(username),
		Status:      status,
		Title:       title,
		Country:     country,
		Department:  department,
		Region:      Region(country),
	}
}

// Username joins the lowercased initial of given with the lowercased family name
// ("Ann", "Lee" → "alee").
func Username(given, family string) string {
	initial := ""
	if r, size := utf8.DecodeRuneInString(given); size > 0 {
		initial = string(r)
	}
	return strings.ToLower(initial) + strings.ToLower(family)
}

func Mail(username string) string {
	return username + "@" + mailDomain
}

// Region maps a country to its sales region. Only USA and Canada are North America.
func Region(country string) string {
	switch country {
	case "USA", "Canada":
		return RegionNorthAmerica
	default:
		return RegionEurope
	}
}
