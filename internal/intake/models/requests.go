// Package models holds the intake API request and response bodies.
package models

import (
	"strings"

	"cloud.google.com/go/civil"

	lockoutmodels "naturalize/internal/lockout/models"
	dErrors "naturalize/pkg/domain-errors"
)

// SetLockoutRequest places an applicant in the waiting room.
type SetLockoutRequest struct {
	UnlockDate             string `json:"unlock_date"`
	Message                string `json:"message"`
	ControllingDescription string `json:"controlling_description,omitempty"`
}

func (r SetLockoutRequest) Validate() error {
	if strings.TrimSpace(r.UnlockDate) == "" {
		return dErrors.New(dErrors.CodeValidation, "unlock_date is required")
	}
	return nil
}

// AssessmentRequest submits a preliminary eligibility outcome.
type AssessmentRequest struct {
	Status                 string `json:"status"`
	ControllingDescription string `json:"controlling_description"`
	ApplicationDate        string `json:"application_date"`
	Message                string `json:"message,omitempty"`
}

func (r AssessmentRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" && strings.TrimSpace(r.ControllingDescription) == "" {
		return dErrors.New(dErrors.CodeValidation, "status or controlling_description is required")
	}
	return nil
}

// RegisterApplicantRequest links a user to a master record.
type RegisterApplicantRequest struct {
	UserID      string `json:"user_id"`
	ANumber     string `json:"a_number"`
	DateOfBirth string `json:"date_of_birth"`
}

func (r RegisterApplicantRequest) Validate() error {
	switch {
	case strings.TrimSpace(r.UserID) == "":
		return dErrors.New(dErrors.CodeValidation, "user_id is required")
	case strings.TrimSpace(r.ANumber) == "":
		return dErrors.New(dErrors.CodeValidation, "a_number is required")
	case strings.TrimSpace(r.DateOfBirth) == "":
		return dErrors.New(dErrors.CodeValidation, "date_of_birth is required")
	}
	return nil
}

// LockoutResponse is the stored lockout as raw profile values.
type LockoutResponse struct {
	UserID                 string `json:"user_id"`
	UnlockDate             string `json:"unlock_date,omitempty"`
	Message                string `json:"message,omitempty"`
	ControllingDescription string `json:"controlling_description,omitempty"`
}

// NewLockoutResponse maps a stored record.
func NewLockoutResponse(userID string, rec *lockoutmodels.Record) LockoutResponse {
	return LockoutResponse{
		UserID:                 userID,
		UnlockDate:             rec.UnlockDate,
		Message:                rec.Message,
		ControllingDescription: rec.ControllingDescription,
	}
}

// UnlockDateResponse is the result of the unlock-date calculator.
type UnlockDateResponse struct {
	ApplicationDate string     `json:"application_date"`
	UnlockDate      civil.Date `json:"unlock_date"`
}
