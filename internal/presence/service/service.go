// Package service loads an applicant's master, residence and travel records
// and runs the presence analyzer over them.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"naturalize/internal/eligibility/factor"
	"naturalize/internal/presence"
	"naturalize/internal/presence/metrics"
	"naturalize/internal/presence/models"
	"naturalize/internal/records/forms"
	"naturalize/pkg/dates"
	dErrors "naturalize/pkg/domain-errors"
	"naturalize/pkg/platform/diagnostic"
	"naturalize/pkg/platform/strutil"
	"naturalize/pkg/requestcontext"
)

var tracer = otel.Tracer("naturalize/internal/presence")

// MasterRecords resolves a user's master record id.
type MasterRecords interface {
	MasterRecordID(ctx context.Context, userID string) (string, error)
}

// RecordReader is the read side of the record store.
type RecordReader interface {
	ReadFields(ctx context.Context, recordID string, fieldIDs []string) (map[string]string, error)
	FindRecordsByField(ctx context.Context, formID, fieldID, value string) ([]string, error)
}

type Service struct {
	masters      MasterRecords
	records      RecordReader
	logger       *slog.Logger
	metrics      *metrics.Metrics
	longTripDays int
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLongTripDays overrides the long-trip threshold.
func WithLongTripDays(days int) Option {
	return func(s *Service) {
		if days > 0 {
			s.longTripDays = days
		}
	}
}

func New(masters MasterRecords, records RecordReader, opts ...Option) (*Service, error) {
	if masters == nil || records == nil {
		return nil, errors.New("master records and record reader are required")
	}
	svc := &Service{
		masters:      masters,
		records:      records,
		longTripDays: models.DefaultLongTripDays,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc, nil
}

// Report computes the presence report for userID. The reference date is the
// explicit one when given, else the application date on the master record,
// else the request's today. The controlling factor is read from the master
// record on every call.
func (s *Service) Report(ctx context.Context, userID string, reference *civil.Date) (*models.Report, error) {
	ctx, span := tracer.Start(ctx, "presence.Report")
	defer span.End()
	started := time.Now()

	if userID == "" {
		return nil, dErrors.New(dErrors.CodeBadRequest, "user id is required")
	}
	masterID, err := s.masters.MasterRecordID(ctx, userID)
	if err != nil {
		span.SetStatus(codes.Error, "master record")
		return nil, err
	}

	master, err := s.records.ReadFields(ctx, masterID, forms.MasterFields)
	if err != nil {
		span.RecordError(err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to read master record")
	}

	var diags diagnostic.List
	code := s.controllingFactor(master[forms.FieldControllingFactor], masterID, &diags)
	ref, source := s.reference(ctx, reference, master[forms.FieldApplicationDate], masterID, &diags)
	window := presence.NewWindow(ref, factor.LookbackYears(code))

	var (
		residences []models.ResidenceInterval
		trips      []models.TravelInterval
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		residences, err = s.loadResidences(gctx, masterID)
		return err
	})
	g.Go(func() error {
		var err error
		trips, err = s.loadTrips(gctx, masterID)
		return err
	})
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load presence records")
	}

	trips = s.fillDurations(trips, &diags)
	trips = presence.InWindow(trips, window)
	presence.SortTrips(trips)

	abroad, clipDiags := presence.DaysAbroadInWindow(trips, window)
	diags = append(diags, clipDiags...)
	longTrips := presence.FindLongTrips(trips, s.longTripDays)
	gaps := presence.FindResidenceGaps(residences)
	diags = append(diags, longTrips.Diagnostics...)
	diags = append(diags, gaps.Diagnostics...)

	report := &models.Report{
		UserID:            userID,
		MasterRecordID:    masterID,
		ControllingFactor: code,
		Reference:         ref,
		ReferenceSource:   source,
		Window:            window,
		TotalDaysAbroad:   abroad,
		TotalDaysResident: presence.TotalDaysResident(residences, window),
		Status:            presence.PhysicalPresenceStatus(abroad, factor.DaysRequired(code), window),
		LongTrips:         longTrips,
		Gaps:              gaps.Gaps,
		Diagnostics:       diags,
	}

	for _, d := range diags {
		s.metrics.IncrementDiagnostic(string(d.Kind))
	}
	s.metrics.ObserveReport(report.Status.Met, len(longTrips.Long), time.Since(started).Seconds())
	if len(diags) > 0 {
		s.logger.WarnContext(ctx, "presence report has data-quality diagnostics",
			"user_id", userID,
			"master_record_id", masterID,
			"count", len(diags),
		)
	}
	span.SetAttributes(
		attribute.String("presence.controlling_factor", string(code)),
		attribute.Bool("presence.met", report.Status.Met),
		attribute.Int("presence.long_trips", len(longTrips.Long)),
		attribute.Int("presence.gaps", len(gaps.Gaps)),
	)
	return report, nil
}

func (s *Service) controllingFactor(raw, masterID string, diags *diagnostic.List) factor.Code {
	if strings.TrimSpace(raw) == "" {
		return factor.Default
	}
	code, ok := factor.ParseCode(raw)
	if !ok {
		diags.Add(diagnostic.InconsistentState(masterID, "unknown controlling factor %q; using %s", raw, factor.Default))
		return factor.Default
	}
	return code
}

func (s *Service) reference(ctx context.Context, explicit *civil.Date, applicationDate, masterID string, diags *diagnostic.List) (civil.Date, models.ReferenceSource) {
	if explicit != nil {
		return *explicit, models.ReferenceExplicit
	}
	if applicationDate != "" {
		if d, ok := dates.Parse(applicationDate, dates.ISOThenUSThenDM...); ok {
			return d, models.ReferenceApplicationDate
		}
		diags.Add(diagnostic.ParseError(masterID, "application date %q is not a recognized date; using today", applicationDate))
	}
	return requestcontext.Today(ctx), models.ReferenceToday
}

func (s *Service) loadResidences(ctx context.Context, masterID string) ([]models.ResidenceInterval, error) {
	ids, err := s.records.FindRecordsByField(ctx, forms.Residence, forms.FieldParent, masterID)
	if err != nil {
		return nil, err
	}
	out := make([]models.ResidenceInterval, 0, len(ids))
	for _, id := range ids {
		f, err := s.records.ReadFields(ctx, id, forms.ResidenceFields)
		if err != nil {
			return nil, err
		}
		days, _ := strconv.Atoi(strings.TrimSpace(f[forms.FieldDuration]))
		out = append(out, models.ResidenceInterval{
			ID:           id,
			Start:        f[forms.FieldResidenceStart],
			End:          f[forms.FieldResidenceEnd],
			DurationDays: days,
			State:        f[forms.FieldResidenceState],
		})
	}
	return out, nil
}

func (s *Service) loadTrips(ctx context.Context, masterID string) ([]models.TravelInterval, error) {
	ids, err := s.records.FindRecordsByField(ctx, forms.Travel, forms.FieldParent, masterID)
	if err != nil {
		return nil, err
	}
	out := make([]models.TravelInterval, 0, len(ids))
	for _, id := range ids {
		f, err := s.records.ReadFields(ctx, id, forms.TravelFields)
		if err != nil {
			return nil, err
		}
		trip := models.TravelInterval{
			ID:        id,
			Departure: f[forms.FieldDeparture],
			Return:    f[forms.FieldReturn],
			Countries: strutil.SplitList(f[forms.FieldCountries]),
		}
		// -1 marks a duration that still has to be derived.
		trip.DurationDays = -1
		if raw := strings.TrimSpace(f[forms.FieldDuration]); raw != "" {
			if n, err := strconv.Atoi(raw); err == nil && n >= 0 {
				trip.DurationDays = n
			}
		}
		out = append(out, trip)
	}
	return out, nil
}

// fillDurations derives a missing stored duration from the trip dates.
func (s *Service) fillDurations(trips []models.TravelInterval, diags *diagnostic.List) []models.TravelInterval {
	for i := range trips {
		t := &trips[i]
		if t.DurationDays >= 0 {
			continue
		}
		dep, depOK := dates.Parse(t.Departure, dates.ISOThenUS...)
		ret, retOK := dates.Parse(t.Return, dates.ISOThenUS...)
		if depOK && retOK && !ret.Before(dep) {
			t.DurationDays = dates.DaysBetween(dep, ret)
			diags.Add(diagnostic.InconsistentState(t.ID, "stored duration missing; derived %d days from trip dates", t.DurationDays))
			continue
		}
		t.DurationDays = 0
		diags.Add(diagnostic.ParseError(t.ID, "stored duration missing and trip dates unusable; counted as 0 days"))
	}
	return trips
}
