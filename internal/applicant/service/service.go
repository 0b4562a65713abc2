// Package service registers applicants and resolves their master record.
package service

import (
	"context"
	"errors"
	"log/slog"

	"naturalize/internal/applicant/models"
	profilemodels "naturalize/internal/profile/models"
	"naturalize/internal/records/forms"
	"naturalize/pkg/dates"
	dErrors "naturalize/pkg/domain-errors"
	"naturalize/pkg/platform/audit"
	"naturalize/pkg/platform/sentinel"
	"naturalize/pkg/requestcontext"
)

// ProfileStore is the subset of the profile store used for registration.
type ProfileStore interface {
	Get(ctx context.Context, userID, key string) (string, bool, error)
	Apply(ctx context.Context, userID string, mutations []profilemodels.Mutation) error
}

// RecordStore is the subset of the record store used for registration.
type RecordStore interface {
	FindRecordsByField(ctx context.Context, formID, fieldID, value string) ([]string, error)
	CreateRecord(ctx context.Context, formID string, fields map[string]string) (string, error)
	Exists(ctx context.Context, recordID string) (bool, error)
}

// Counter counts completed registrations.
type Counter interface {
	IncrementApplicantsRegistered()
}

type Service struct {
	profiles       ProfileStore
	records        RecordStore
	auditPublisher audit.Publisher
	logger         *slog.Logger
	counter        Counter
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher audit.Publisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithCounter(c Counter) Option {
	return func(s *Service) {
		s.counter = c
	}
}

func New(profiles ProfileStore, records RecordStore, opts ...Option) (*Service, error) {
	if profiles == nil {
		return nil, errors.New("profile store is required")
	}
	if records == nil {
		return nil, errors.New("record store is required")
	}
	svc := &Service{profiles: profiles, records: records}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc, nil
}

// Register links userID to the master record for aNumber, creating the
// record on first registration. The A-number, master record id and date of
// birth are written to the profile as one unit.
func (s *Service) Register(ctx context.Context, userID, aNumber, dateOfBirth string) (*models.Applicant, error) {
	if userID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user id is required")
	}
	canonical, err := models.NormalizeANumber(aNumber)
	if err != nil {
		return nil, err
	}
	dob, err := models.ParseDateOfBirth(dateOfBirth, requestcontext.Today(ctx))
	if err != nil {
		return nil, err
	}

	existing, ok, err := s.profiles.Get(ctx, userID, profilemodels.KeyANumber)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read applicant profile")
	}
	if ok && existing != canonical {
		return nil, dErrors.Wrap(sentinel.ErrConflict, dErrors.CodeConflict, "user is already registered with a different a_number")
	}

	ids, err := s.records.FindRecordsByField(ctx, forms.Master, forms.FieldANumber, canonical)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to look up master record")
	}

	applicant := &models.Applicant{UserID: userID, ANumber: canonical, DateOfBirth: dob}
	if len(ids) > 0 {
		applicant.MasterRecordID = ids[0]
		if len(ids) > 1 {
			s.logger.WarnContext(ctx, "multiple master records for a_number; using the oldest",
				"a_number", canonical,
				"count", len(ids),
			)
		}
	} else {
		id, err := s.records.CreateRecord(ctx, forms.Master, map[string]string{
			forms.FieldANumber:     canonical,
			forms.FieldDateOfBirth: dates.Canonical(dob),
		})
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to create master record")
		}
		applicant.MasterRecordID = id
		applicant.Created = true
	}

	err = s.profiles.Apply(ctx, userID, []profilemodels.Mutation{
		profilemodels.SetOp(profilemodels.KeyANumber, canonical),
		profilemodels.SetOp(profilemodels.KeyMasterRecordID, applicant.MasterRecordID),
		profilemodels.SetOp(profilemodels.KeyDateOfBirth, dates.Canonical(dob)),
	})
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save applicant profile")
	}

	if s.counter != nil && applicant.Created {
		s.counter.IncrementApplicantsRegistered()
	}
	audit.Log(ctx, s.logger, s.auditPublisher, audit.EventApplicantRegistered,
		"user_id", userID,
		"master_record_id", applicant.MasterRecordID,
		"created", applicant.Created,
	)
	return applicant, nil
}

// MasterRecordID returns the user's master record id. A missing profile
// entry, or one pointing at a record that no longer exists, is CodeNotFound.
func (s *Service) MasterRecordID(ctx context.Context, userID string) (string, error) {
	id, ok, err := s.profiles.Get(ctx, userID, profilemodels.KeyMasterRecordID)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to read applicant profile")
	}
	if !ok || id == "" {
		return "", dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "applicant has no master record")
	}
	exists, err := s.records.Exists(ctx, id)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to check master record")
	}
	if !exists {
		return "", dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "master record "+id+" does not exist")
	}
	return id, nil
}
