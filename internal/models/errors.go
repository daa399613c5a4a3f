package models

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors for validation.
var (
	ErrMissingName        = errors.New("name is required")
	ErrMissingBirthdate   = errors.New("birthdate is required")
	ErrMissingGender      = errors.New("gender is required")
	ErrMissingNationality = errors.New("nationality is required")
)

// ErrPersonNotFound indicates a person lookup by id matched no row.
var ErrPersonNotFound = errors.New("person not found")

// ErrNoExportRows indicates a CSV export id set matched zero rows.
var ErrNoExportRows = errors.New("no records found")

// ErrBadCSV indicates a CSV file that cannot be parsed at all (bad header or
// malformed rows), as opposed to a row failing person validation.
var ErrBadCSV = errors.New("malformed csv file")

// ErrFieldTooLong returns an error indicating a field exceeds its maximum length.
func ErrFieldTooLong(field string, maxLen int) error {
	return fmt.Errorf("%s exceeds maximum length of %d", field, maxLen)
}

// parseID parses a decimal person id.
func parseID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

// ParseID parses a decimal person id, rejecting non-positive values.
func ParseID(s string) (int64, error) {
	id, err := parseID(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid person id %q", s)
	}

	return id, nil
}
