package models

import (
	"regexp"
	"strings"

	"cloud.google.com/go/civil"

	"naturalize/pkg/dates"
	dErrors "naturalize/pkg/domain-errors"
)

var aNumberPattern = regexp.MustCompile(`^A?(\d{7,9})$`)

// Applicant links a user to their master record.
type Applicant struct {
	UserID         string     `json:"user_id"`
	ANumber        string     `json:"a_number"`
	DateOfBirth    civil.Date `json:"date_of_birth"`
	MasterRecordID string     `json:"master_record_id"`
	// Created is true when registration created the master record.
	Created bool `json:"created"`
}

// NormalizeANumber accepts "A012345678", "a-012-345-678" or "12345678" and
// returns the canonical "A" plus nine digits form.
func NormalizeANumber(raw string) (string, error) {
	cleaned := strings.ToUpper(strings.TrimSpace(raw))
	cleaned = strings.NewReplacer("-", "", " ", "").Replace(cleaned)
	m := aNumberPattern.FindStringSubmatch(cleaned)
	if m == nil {
		return "", dErrors.New(dErrors.CodeValidation, "a_number must be 7 to 9 digits, optionally prefixed with A")
	}
	digits := m[1]
	return "A" + strings.Repeat("0", 9-len(digits)) + digits, nil
}

// ParseDateOfBirth accepts ISO or month/day/year and rejects dates after today.
func ParseDateOfBirth(raw string, today civil.Date) (civil.Date, error) {
	d, ok := dates.Parse(raw, dates.ISOThenUS...)
	if !ok {
		return civil.Date{}, dErrors.Wrap(
			&dates.ParseError{Text: raw, Layouts: dates.ISOThenUS},
			dErrors.CodeValidation, "date_of_birth is not a recognized date",
		)
	}
	if d.After(today) {
		return civil.Date{}, dErrors.New(dErrors.CodeValidation, "date_of_birth is in the future")
	}
	return d, nil
}
