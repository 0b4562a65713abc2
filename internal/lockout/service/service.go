// Package service persists and enforces applicant lockouts against the user
// profile store.
package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"log/slog"

	"naturalize/internal/lockout/metrics"
	"naturalize/internal/lockout/models"
	profilemodels "naturalize/internal/profile/models"
	"naturalize/pkg/dates"
	dErrors "naturalize/pkg/domain-errors"
	"naturalize/pkg/platform/audit"
	"naturalize/pkg/requestcontext"
)

// Store is the subset of the profile store the lockout service needs.
type Store interface {
	Get(ctx context.Context, userID, key string) (string, bool, error)
	Apply(ctx context.Context, userID string, mutations []profilemodels.Mutation) error
}

type Service struct {
	store          Store
	auditPublisher audit.Publisher
	logger         *slog.Logger
	metrics        *metrics.Metrics
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

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, errors.New("lockout profile store is required")
	}
	svc := &Service{store: store}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc, nil
}

// Set validates the unlock date (ISO, then month/day/year) and writes the
// unlock date, message and description as one unit. Nothing is written when
// the date is invalid.
func (s *Service) Set(ctx context.Context, userID, unlockDate, message, controllingDesc string) (*models.Lockout, error) {
	if userID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user id is required")
	}
	lockout, err := models.NewLockout(unlockDate, message, controllingDesc)
	if err != nil {
		return nil, err
	}
	if err := s.store.Apply(ctx, userID, lockout.Mutations()); err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to save lockout")
	}

	s.metrics.IncrementSet()
	audit.Log(ctx, s.logger, s.auditPublisher, audit.EventLockoutSet,
		"user_id", userID,
		"unlock_date", dates.Canonical(lockout.UnlockDate),
		"controlling_description", controllingDesc,
	)
	return lockout, nil
}

// Check resolves the user's lock against the request's today. An expired or
// unparseable lock is cleared in the same call; once expiry is observed the
// caller sees Unlocked even if the clear fails to persist.
func (s *Service) Check(ctx context.Context, userID string) (*models.Status, error) {
	if userID == "" {
		return &models.Status{State: models.StateUnlocked, Outcome: models.OutcomeNone}, nil
	}
	rec, err := s.read(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := requestcontext.Today(ctx)
	res := models.Resolve(today, *rec)
	s.metrics.IncrementChecks(string(res.Status.Outcome))

	if len(res.Writes) == 0 {
		return &res.Status, nil
	}

	event, reason := audit.EventLockoutExpired, metrics.ReasonExpired
	if res.Status.Outcome == models.OutcomeCorrupt {
		event, reason = audit.EventLockoutCorruptClear, metrics.ReasonCorrupt
		s.logger.WarnContext(ctx, "invalid lockout in profile; clearing",
			"user_id", userID,
			"error", rec.Invalid(),
		)
	}

	if err := s.store.Apply(ctx, userID, res.Writes); err != nil {
		s.metrics.IncrementClearFailures()
		s.logger.ErrorContext(ctx, "failed to clear lockout",
			"user_id", userID,
			"outcome", string(res.Status.Outcome),
			"error", err,
		)
		return &res.Status, nil
	}

	s.metrics.IncrementCleared(reason)
	audit.Log(ctx, s.logger, s.auditPublisher, event,
		"user_id", userID,
		"reason", reason,
		"unlock_date", rec.UnlockDate,
		"today", dates.Canonical(today),
	)
	return &res.Status, nil
}

// Get returns the stored lockout fields without resolving or clearing them.
func (s *Service) Get(ctx context.Context, userID string) (*models.Record, error) {
	if userID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user id is required")
	}
	return s.read(ctx, userID)
}

// Clear removes all three lockout fields.
func (s *Service) Clear(ctx context.Context, userID string) error {
	if userID == "" {
		return dErrors.New(dErrors.CodeBadRequest, "user id is required")
	}
	if err := s.store.Apply(ctx, userID, models.ClearMutations()); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear lockout")
	}
	s.metrics.IncrementCleared(metrics.ReasonAdmin)
	audit.Log(ctx, s.logger, s.auditPublisher, audit.EventLockoutCleared, "user_id", userID, "reason", metrics.ReasonAdmin)
	return nil
}

func (s *Service) read(ctx context.Context, userID string) (*models.Record, error) {
	var rec models.Record
	fields := []struct {
		key string
		dst *string
	}{
		{profilemodels.KeyUnlockDate, &rec.UnlockDate},
		{profilemodels.KeyLockoutMessage, &rec.Message},
		{profilemodels.KeyControllingDescription, &rec.ControllingDescription},
	}
	for _, f := range fields {
		v, _, err := s.store.Get(ctx, userID, f.key)
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read lockout")
		}
		*f.dst = v
	}
	return &rec, nil
}
