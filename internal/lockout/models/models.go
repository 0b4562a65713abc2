// Package models holds the purgatory lockout state machine.
//
// A user is either Unlocked (no unlock date stored) or Locked(d). The
// functions here are pure: they take the stored fields and today's date and
// return the resolved state together with the profile writes the caller must
// apply. Nothing here performs I/O.
package models

import (
	"fmt"

	"cloud.google.com/go/civil"

	profilemodels "naturalize/internal/profile/models"
	"naturalize/pkg/dates"
	dErrors "naturalize/pkg/domain-errors"
	"naturalize/pkg/platform/sentinel"
)

// unlockOffsetMonths is how far before the filing date the applicant may
// return to the application.
const unlockOffsetMonths = 6

// Layout orders for the different inputs.
var (
	applicationDateLayouts = dates.ISOThenUSThenDM
	unlockDateLayouts      = dates.ISOThenUS
)

// State is the lockout state of one applicant.
type State string

const (
	StateUnlocked State = "unlocked"
	StateLocked   State = "locked"
)

// Outcome explains how a check resolved.
type Outcome string

const (
	OutcomeNone    Outcome = "none"    // nothing stored
	OutcomeActive  Outcome = "active"  // stored date still in the future
	OutcomeExpired Outcome = "expired" // stored date reached; cleared
	OutcomeCorrupt Outcome = "corrupt" // stored date unparseable or missing beside other fields; cleared
)

// Record is the raw lockout triple as stored in the user profile.
type Record struct {
	UnlockDate             string
	Message                string
	ControllingDescription string
}

// IsEmpty reports whether none of the three fields is stored.
func (r Record) IsEmpty() bool {
	return r.UnlockDate == "" && r.Message == "" && r.ControllingDescription == ""
}

// Invalid returns an error wrapping sentinel.ErrInvalidState when the stored
// fields cannot describe a lock: an unlock date that does not parse, or a
// message or description with no unlock date. An empty record is valid.
func (r Record) Invalid() error {
	if r.IsEmpty() {
		return nil
	}
	if r.UnlockDate == "" {
		return fmt.Errorf("lockout fields stored without an unlock date: %w", sentinel.ErrInvalidState)
	}
	if _, ok := dates.Parse(r.UnlockDate, unlockDateLayouts...); !ok {
		return fmt.Errorf("unparseable unlock date %q: %w", r.UnlockDate, sentinel.ErrInvalidState)
	}
	return nil
}

// Lockout is a validated, normalized lockout ready to persist.
type Lockout struct {
	UnlockDate             civil.Date `json:"unlock_date"`
	Message                string     `json:"message"`
	ControllingDescription string     `json:"controlling_description,omitempty"`
}

// Status is the resolved state a caller may act on.
type Status struct {
	State                  State       `json:"state"`
	Outcome                Outcome     `json:"outcome"`
	UnlockDate             *civil.Date `json:"unlock_date,omitempty"`
	Message                string      `json:"message,omitempty"`
	ControllingDescription string      `json:"controlling_description,omitempty"`
}

// Locked is shorthand for State == StateLocked.
func (s Status) Locked() bool {
	return s.State == StateLocked
}

// Resolution pairs the resolved status with the writes that make storage
// agree with it. Writes is empty unless a stale or corrupt lock was found.
type Resolution struct {
	Status Status
	Writes []profilemodels.Mutation
}

// ComputeUnlockDate parses an application (filing) date - ISO, then
// month/day/year, then day/month/year - and returns the date six calendar
// months earlier.
func ComputeUnlockDate(applicationDate string) (civil.Date, error) {
	filed, ok := dates.Parse(applicationDate, applicationDateLayouts...)
	if !ok {
		return civil.Date{}, dErrors.Wrap(
			&dates.ParseError{Text: applicationDate, Layouts: applicationDateLayouts},
			dErrors.CodeValidation, "application date is not a recognized date",
		)
	}
	return dates.AddMonths(filed, -unlockOffsetMonths), nil
}

// NewLockout validates an unlock date (ISO, then month/day/year) and builds
// the lockout. The whole operation is rejected when the date is invalid.
func NewLockout(unlockDateText, message, controllingDesc string) (*Lockout, error) {
	d, ok := dates.Parse(unlockDateText, unlockDateLayouts...)
	if !ok {
		return nil, dErrors.Wrap(
			&dates.ParseError{Text: unlockDateText, Layouts: unlockDateLayouts},
			dErrors.CodeValidation, "unlock date is not a recognized date",
		)
	}
	return &Lockout{
		UnlockDate:             d,
		Message:                message,
		ControllingDescription: controllingDesc,
	}, nil
}

// Mutations returns the atomic write for this lockout. The unlock date is
// always stored in canonical ISO form. A missing description is deleted so a
// previous lock's description never lingers.
func (l *Lockout) Mutations() []profilemodels.Mutation {
	desc := profilemodels.DeleteOp(profilemodels.KeyControllingDescription)
	if l.ControllingDescription != "" {
		desc = profilemodels.SetOp(profilemodels.KeyControllingDescription, l.ControllingDescription)
	}
	return []profilemodels.Mutation{
		profilemodels.SetOp(profilemodels.KeyUnlockDate, dates.Canonical(l.UnlockDate)),
		profilemodels.SetOp(profilemodels.KeyLockoutMessage, l.Message),
		desc,
	}
}

// ClearMutations deletes all three lockout fields together.
func ClearMutations() []profilemodels.Mutation {
	return profilemodels.DeleteAll(profilemodels.LockoutKeys...)
}

// IsLocked reports whether today is strictly before the stored unlock date.
// valid is false when unlockDate is present but unparseable.
func IsLocked(today civil.Date, unlockDate string) (locked bool, valid bool) {
	if unlockDate == "" {
		return false, true
	}
	d, ok := dates.Parse(unlockDate, unlockDateLayouts...)
	if !ok {
		return false, false
	}
	return today.Before(d), true
}

// Resolve applies the implicit-expiry rule to a stored record. An unlock date
// on or before today, one that cannot be parsed, or a message or description
// left without a date resolves to Unlocked and yields a three-field clear.
func Resolve(today civil.Date, rec Record) Resolution {
	if rec.IsEmpty() {
		return Resolution{Status: Status{State: StateUnlocked, Outcome: OutcomeNone}}
	}

	locked, _ := IsLocked(today, rec.UnlockDate)
	switch {
	case rec.Invalid() != nil:
		return Resolution{
			Status: Status{State: StateUnlocked, Outcome: OutcomeCorrupt},
			Writes: ClearMutations(),
		}
	case !locked:
		return Resolution{
			Status: Status{State: StateUnlocked, Outcome: OutcomeExpired},
			Writes: ClearMutations(),
		}
	}

	d, _ := dates.Parse(rec.UnlockDate, unlockDateLayouts...)
	return Resolution{Status: Status{
		State:                  StateLocked,
		Outcome:                OutcomeActive,
		UnlockDate:             &d,
		Message:                rec.Message,
		ControllingDescription: rec.ControllingDescription,
	}}
}
