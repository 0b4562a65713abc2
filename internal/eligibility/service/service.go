// Package service orchestrates eligibility assessments: it computes the
// unlock date, places the lockout and writes the result back to the master
// record.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"cloud.google.com/go/civil"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"naturalize/internal/eligibility/factor"
	"naturalize/internal/eligibility/models"
	lockoutmodels "naturalize/internal/lockout/models"
	"naturalize/internal/records/forms"
	"naturalize/pkg/dates"
	dErrors "naturalize/pkg/domain-errors"
	"naturalize/pkg/platform/audit"
	"naturalize/pkg/platform/diagnostic"
)

var tracer = otel.Tracer("naturalize/internal/eligibility")

// Lockouts places a lockout on an applicant.
type Lockouts interface {
	Set(ctx context.Context, userID, unlockDate, message, controllingDesc string) (*lockoutmodels.Lockout, error)
}

// MasterRecords resolves a user's master record id.
type MasterRecords interface {
	MasterRecordID(ctx context.Context, userID string) (string, error)
}

// RecordWriter writes computed fields back to the master record.
type RecordWriter interface {
	WriteField(ctx context.Context, recordID, fieldID, value string) error
}

type Service struct {
	lockouts       Lockouts
	masters        MasterRecords
	records        RecordWriter
	classifier     Classifier
	auditPublisher audit.Publisher
	logger         *slog.Logger
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

func WithClassifier(c Classifier) Option {
	return func(s *Service) {
		if c != nil {
			s.classifier = c
		}
	}
}

func New(lockouts Lockouts, masters MasterRecords, records RecordWriter, opts ...Option) (*Service, error) {
	if lockouts == nil || masters == nil || records == nil {
		return nil, errors.New("lockouts, master records and record writer are required")
	}
	svc := &Service{
		lockouts:   lockouts,
		masters:    masters,
		records:    records,
		classifier: DefaultClassifier{},
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc, nil
}

// UnlockDate returns the date six calendar months before the application date.
func (s *Service) UnlockDate(applicationDate string) (civil.Date, error) {
	return lockoutmodels.ComputeUnlockDate(applicationDate)
}

// Assess places an applicant in the waiting room when the assessment calls
// for it. The master record and controlling factor are resolved before the
// lockout is placed, so a lookup failure leaves the profile untouched. The
// unlock date and controlling factor are then written back to the master
// record; a missing master record skips the write-back and is reported as a
// diagnostic. Both writes are idempotent, so a failed write-back can be
// retried by assessing again.
func (s *Service) Assess(ctx context.Context, a models.Assessment) (*models.Result, error) {
	ctx, span := tracer.Start(ctx, "eligibility.Assess")
	defer span.End()

	if a.UserID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user id is required")
	}
	if !factor.IsAssessment(a.Status, a.ControllingDescription) {
		span.SetAttributes(attribute.Bool("eligibility.assessed", false))
		return &models.Result{Assessed: false}, nil
	}

	unlock, err := lockoutmodels.ComputeUnlockDate(a.ApplicationDate)
	if err != nil {
		span.SetStatus(codes.Error, "invalid application date")
		return nil, err
	}
	filed, _ := dates.Parse(a.ApplicationDate, dates.ISOThenUSThenDM...)

	result := &models.Result{Assessed: true, UnlockDate: &unlock}
	var diags diagnostic.List

	masterID, err := s.masters.MasterRecordID(ctx, a.UserID)
	switch {
	case dErrors.HasCode(err, dErrors.CodeNotFound):
		diags.Add(diagnostic.MissingReference(a.UserID, "no master record; unlock date not written back"))
	case err != nil:
		span.RecordError(err)
		span.SetStatus(codes.Error, "resolve master record")
		return nil, err
	default:
		result.MasterRecordID = masterID
	}

	code, err := s.classifier.DetermineControllingFactor(ctx, models.ClassifierInput{
		UserID:                 a.UserID,
		MasterRecordID:         masterID,
		ControllingDescription: a.ControllingDescription,
		ApplicationDate:        filed,
	})
	if err != nil {
		span.RecordError(err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to determine controlling factor")
	}
	result.ControllingFactor = code

	message := a.Message
	if message == "" {
		message = DefaultMessage(unlock)
	}
	if _, err := s.lockouts.Set(ctx, a.UserID, dates.Canonical(unlock), message, a.ControllingDescription); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "set lockout")
		return nil, err
	}

	if result.MasterRecordID == "" {
		audit.Log(ctx, s.logger, s.auditPublisher, audit.EventMasterRecordMissing, "user_id", a.UserID)
	} else {
		if err := s.writeBack(ctx, result.MasterRecordID, unlock, code); err != nil {
			span.RecordError(err)
			return nil, err
		}
		result.WroteBack = true
	}

	result.Diagnostics = diags
	span.SetAttributes(
		attribute.Bool("eligibility.assessed", true),
		attribute.String("eligibility.controlling_factor", string(code)),
		attribute.Bool("eligibility.wrote_back", result.WroteBack),
	)
	audit.Log(ctx, s.logger, s.auditPublisher, audit.EventAssessmentRecorded,
		"user_id", a.UserID,
		"controlling_factor", string(code),
		"unlock_date", dates.Canonical(unlock),
	)
	return result, nil
}

func (s *Service) writeBack(ctx context.Context, masterID string, unlock civil.Date, code factor.Code) error {
	writes := []struct{ field, value string }{
		{forms.FieldUnlockDate, dates.Canonical(unlock)},
		{forms.FieldControllingFactor, string(code)},
	}
	for _, w := range writes {
		if err := s.records.WriteField(ctx, masterID, w.field, w.value); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, fmt.Sprintf("failed to write %s to master record", w.field))
		}
	}
	return nil
}

// DefaultMessage is the waiting-room message used when an assessment has none.
func DefaultMessage(unlock civil.Date) string {
	return fmt.Sprintf(
		"Based on your answers you are not yet eligible to apply. You may continue your application on %s.",
		unlock.In(time.UTC).Format("January 2, 2006"),
	)
}
