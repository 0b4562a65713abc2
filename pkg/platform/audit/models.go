package audit

import (
	"context"
	"errors"
	"time"
)

// EventCategory classifies audit events by their primary purpose.
// This enables different retention policies and routing per category.
type EventCategory string

const (
	// CategoryCompliance covers events with legal/regulatory significance:
	// eligibility assessments and staff edits to an applicant's lockout.
	CategoryCompliance EventCategory = "compliance"

	// CategorySecurity covers access-control decisions.
	CategorySecurity EventCategory = "security"

	// CategoryOperations covers routine, self-healing activity.
	CategoryOperations EventCategory = "operations"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Category  EventCategory `json:"category"`
	Timestamp time.Time     `json:"timestamp"`
	UserID    string        `json:"user_id"`
	Action    string        `json:"action"`
	Decision  string        `json:"decision,omitempty"`
	Reason    string        `json:"reason,omitempty"`
	RequestID string        `json:"request_id,omitempty"`
	// ActorID is the staff member acting on the applicant's behalf, if any.
	ActorID string `json:"actor_id,omitempty"`
}

type AuditEvent string

const (
	// Lockout events
	EventLockoutSet          AuditEvent = "lockout_set"
	EventLockoutCleared      AuditEvent = "lockout_cleared"
	EventLockoutExpired      AuditEvent = "lockout_expired"
	EventLockoutCorruptClear AuditEvent = "lockout_corrupt_cleared"

	EventAccessRedirected AuditEvent = "access_redirected"

	// Eligibility and registration events
	EventAssessmentRecorded  AuditEvent = "assessment_recorded"
	EventApplicantRegistered AuditEvent = "applicant_registered"
	EventMasterRecordMissing AuditEvent = "master_record_missing"
)

// eventCategories maps each audit event to its category.
var eventCategories = map[AuditEvent]EventCategory{
	EventLockoutSet:          CategoryCompliance,
	EventLockoutCleared:      CategoryCompliance,
	EventAssessmentRecorded:  CategoryCompliance,
	EventApplicantRegistered: CategoryCompliance,

	EventAccessRedirected: CategorySecurity,

	EventLockoutExpired:      CategoryOperations,
	EventLockoutCorruptClear: CategoryOperations,
	EventMasterRecordMissing: CategoryOperations,
}

// Category returns the EventCategory for this audit event.
// Unknown events default to CategoryOperations.
func (e AuditEvent) Category() EventCategory {
	if cat, ok := eventCategories[e]; ok {
		return cat
	}
	return CategoryOperations
}

// Publisher receives audit events.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// Fanout delivers each event to every publisher and joins their errors.
type Fanout []Publisher

func (f Fanout) Emit(ctx context.Context, event Event) error {
	var errs []error
	for _, p := range f {
		if p == nil {
			continue
		}
		if err := p.Emit(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
