package models

import (
	"cloud.google.com/go/civil"

	"naturalize/internal/eligibility/factor"
	"naturalize/pkg/platform/diagnostic"
)

// Assessment is the preliminary eligibility outcome submitted for an applicant.
type Assessment struct {
	UserID                 string `json:"user_id"`
	Status                 string `json:"status"`
	ControllingDescription string `json:"controlling_description"`
	ApplicationDate        string `json:"application_date"`
	// Message is shown in the waiting room. A default is used when empty.
	Message string `json:"message,omitempty"`
}

// Result reports what an assessment did.
type Result struct {
	// Assessed is false when neither the status nor the description marks an
	// eligibility assessment; nothing else is set then.
	Assessed          bool                    `json:"assessed"`
	UnlockDate        *civil.Date             `json:"unlock_date,omitempty"`
	ControllingFactor factor.Code             `json:"controlling_factor,omitempty"`
	MasterRecordID    string                  `json:"master_record_id,omitempty"`
	WroteBack         bool                    `json:"wrote_back"`
	Diagnostics       []diagnostic.Diagnostic `json:"diagnostics,omitempty"`
}

// ClassifierInput is what a controlling-factor classifier may inspect.
type ClassifierInput struct {
	UserID                 string
	MasterRecordID         string
	ControllingDescription string
	ApplicationDate        civil.Date
}
