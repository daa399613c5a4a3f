// Package models defines data types for the person registry.
package models

import (
	"fmt"
	"strings"
	"time"
)

// dateLayout is the wire format for calendar dates (ISO-8601, date only).
const dateLayout = "2006-01-02"

// Date is a calendar date without a time component. It marshals to and from
// JSON as "YYYY-MM-DD".
type Date struct {
	time.Time
}

// NewDate builds a Date from a time.Time, truncating the time component.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a "YYYY-MM-DD" string into a Date.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parsing date %q: %w", s, err)
	}

	return Date{Time: t}, nil
}

// String returns the date in "YYYY-MM-DD" form.
func (d Date) String() string {
	return d.Format(dateLayout)
}

// MarshalJSON implements json.Marshaler.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		return nil
	}

	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}

	*d = parsed

	return nil
}

// Person represents a registered individual.
type Person struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Birthdate   *Date     `json:"birthdate"`
	Gender      string    `json:"gender"`
	Nationality string    `json:"nationality"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Field length limits for person records (mirrors the table DDL).
const (
	maxNameLen        = 255
	maxGenderLen      = 20
	maxNationalityLen = 50
)

// CreatePersonRequest is the payload for creating a new person.
//
// CreatedAt and UpdatedAt are never bound from JSON: only the CSV import path
// sets them, to support historical data reload. When nil, the store assigns
// the current time to both.
type CreatePersonRequest struct {
	Name        string `json:"name"`
	Birthdate   *Date  `json:"birthdate"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`

	CreatedAt *time.Time `json:"-"`
	UpdatedAt *time.Time `json:"-"`
}

// Validate checks that required fields are present and within limits.
func (r *CreatePersonRequest) Validate() error {
	if r.Birthdate == nil {
		return ErrMissingBirthdate
	}

	return validatePersonFields(r.Name, r.Gender, r.Nationality)
}

// ValidateForImport checks required fields on the CSV import path, where a
// missing or unparseable birthdate is tolerated and stored as null.
func (r *CreatePersonRequest) ValidateForImport() error {
	return validatePersonFields(r.Name, r.Gender, r.Nationality)
}

// UpdatePersonRequest is the payload for updating an existing person.
// Every field overwrites the stored value (full replace semantics);
// id and created_at are never touched.
type UpdatePersonRequest struct {
	Name        string `json:"name"`
	Birthdate   *Date  `json:"birthdate"`
	Gender      string `json:"gender"`
	Nationality string `json:"nationality"`
}

// Validate checks that required fields are present and within limits.
func (r *UpdatePersonRequest) Validate() error {
	if r.Birthdate == nil {
		return ErrMissingBirthdate
	}

	return validatePersonFields(r.Name, r.Gender, r.Nationality)
}

func validatePersonFields(name, gender, nationality string) error {
	if name == "" {
		return ErrMissingName
	}

	if len(name) > maxNameLen {
		return ErrFieldTooLong("name", maxNameLen)
	}

	if gender == "" {
		return ErrMissingGender
	}

	if len(gender) > maxGenderLen {
		return ErrFieldTooLong("gender", maxGenderLen)
	}

	if nationality == "" {
		return ErrMissingNationality
	}

	if len(nationality) > maxNationalityLen {
		return ErrFieldTooLong("nationality", maxNationalityLen)
	}

	return nil
}

// Columns that ListPeopleOpts.FilterColumn matches by case-insensitive
// substring. Any other non-empty column (except "id") is a deliberate no-op.
var substringFilterColumns = map[string]bool{
	"name":        true,
	"gender":      true,
	"nationality": true,
}

// ListPeopleOpts holds pagination and filtering options for listing people.
type ListPeopleOpts struct {
	Skip  int
	Limit int

	// FilterColumn/FilterValue filter on a single column: "id" matches
	// exactly, text columns by case-insensitive substring, anything else is
	// silently ignored (preserved behavior of the original service).
	FilterColumn string
	FilterValue  string

	// Keyword matches people whose name, gender or nationality contains it,
	// case-insensitively. Combinable with the column filter.
	Keyword string
}

// Validate rejects a non-integer filter value when filtering on id.
func (o *ListPeopleOpts) Validate() error {
	if o.FilterColumn == "id" && o.FilterValue != "" {
		if _, err := parseID(o.FilterValue); err != nil {
			return fmt.Errorf("filter_value must be an integer when filter_column is id")
		}
	}

	return nil
}

// IsSubstringFilter reports whether the filter column uses substring matching.
func (o *ListPeopleOpts) IsSubstringFilter() bool {
	return substringFilterColumns[o.FilterColumn]
}
