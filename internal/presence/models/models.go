// Package models holds the presence calculation inputs and results.
//
// Interval dates are kept as the raw stored text; the analyzer parses them
// and reports anything it cannot use instead of guessing.
package models

import (
	"cloud.google.com/go/civil"

	"naturalize/internal/eligibility/factor"
	"naturalize/pkg/platform/diagnostic"
)

// DefaultLongTripDays is the trip length at or above which a trip is long.
const DefaultLongTripDays = 183

// ResidenceInterval is one US residence. End is empty for the current residence.
type ResidenceInterval struct {
	ID           string `json:"id"`
	Start        string `json:"start"`
	End          string `json:"end,omitempty"`
	DurationDays int    `json:"duration_days"`
	State        string `json:"state,omitempty"`
}

// TravelInterval is one trip outside the US.
type TravelInterval struct {
	ID           string   `json:"id"`
	Departure    string   `json:"departure"`
	Return       string   `json:"return"`
	DurationDays int      `json:"duration_days"`
	Countries    []string `json:"countries,omitempty"`
}

// Gap is a positive number of days between one residence's end and the next
// residence's start.
type Gap struct {
	AfterID  string     `json:"after_id"`
	BeforeID string     `json:"before_id"`
	From     civil.Date `json:"from"`
	To       civil.Date `json:"to"`
	Days     int        `json:"days"`
}

// GapResult is the output of residence gap detection.
type GapResult struct {
	Gaps        []Gap                   `json:"gaps"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics,omitempty"`
}

// TripLength is a trip with its elapsed days (return - departure).
type TripLength struct {
	Trip TravelInterval `json:"trip"`
	Days int            `json:"days"`
}

// LongTripResult partitions trips by the threshold. Trips whose dates cannot
// be used are neither long nor short.
type LongTripResult struct {
	Threshold   int                     `json:"threshold"`
	Long        []TripLength            `json:"long"`
	Short       []TripLength            `json:"short"`
	Unparseable []TravelInterval        `json:"unparseable,omitempty"`
	Diagnostics []diagnostic.Diagnostic `json:"diagnostics,omitempty"`
}

// Window is the lookback period ending at the reference date.
type Window struct {
	Start civil.Date `json:"start"`
	End   civil.Date `json:"end"`
	Years int        `json:"years"`
}

// PresenceStatus compares days present in the window with the requirement.
type PresenceStatus struct {
	ElapsedDays  int  `json:"elapsed_days"`
	DaysAbroad   int  `json:"days_abroad"`
	DaysPresent  int  `json:"days_present"`
	DaysRequired int  `json:"days_required"`
	Met          bool `json:"met"`
	// Shortfall is zero when Met.
	Shortfall int `json:"shortfall"`
}

// ReferenceSource says where a report's reference date came from.
type ReferenceSource string

const (
	ReferenceExplicit        ReferenceSource = "explicit"
	ReferenceApplicationDate ReferenceSource = "application_date"
	ReferenceToday           ReferenceSource = "today"
)

// Report is the full presence calculation for one applicant.
type Report struct {
	UserID            string                  `json:"user_id"`
	MasterRecordID    string                  `json:"master_record_id"`
	ControllingFactor factor.Code             `json:"controlling_factor"`
	Reference         civil.Date              `json:"reference"`
	ReferenceSource   ReferenceSource         `json:"reference_source"`
	Window            Window                  `json:"window"`
	TotalDaysAbroad   int                     `json:"total_days_abroad"`
	TotalDaysResident int                     `json:"total_days_resident"`
	Status            PresenceStatus          `json:"status"`
	LongTrips         LongTripResult          `json:"long_trips"`
	Gaps              []Gap                   `json:"gaps"`
	Diagnostics       []diagnostic.Diagnostic `json:"diagnostics,omitempty"`
}
