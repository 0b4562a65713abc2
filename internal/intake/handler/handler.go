// Package handler exposes the intake staff API and the applicant waiting-room
// status over chi.
package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks LockoutService,AssessmentService,PresenceService,ApplicantService

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/go-chi/chi/v5"

	applicantmodels "naturalize/internal/applicant/models"
	eligibilitymodels "naturalize/internal/eligibility/models"
	intakemodels "naturalize/internal/intake/models"
	lockoutmodels "naturalize/internal/lockout/models"
	presencemodels "naturalize/internal/presence/models"
	"naturalize/pkg/dates"
	dErrors "naturalize/pkg/domain-errors"
	"naturalize/pkg/platform/httputil"
	"naturalize/pkg/platform/middleware/admin"
	"naturalize/pkg/requestcontext"
)

// LockoutService manages the waiting-room lock on an applicant.
type LockoutService interface {
	Set(ctx context.Context, userID, unlockDate, message, controllingDesc string) (*lockoutmodels.Lockout, error)
	Check(ctx context.Context, userID string) (*lockoutmodels.Status, error)
	Get(ctx context.Context, userID string) (*lockoutmodels.Record, error)
	Clear(ctx context.Context, userID string) error
}

// AssessmentService records eligibility assessments.
type AssessmentService interface {
	Assess(ctx context.Context, a eligibilitymodels.Assessment) (*eligibilitymodels.Result, error)
	UnlockDate(applicationDate string) (civil.Date, error)
}

// PresenceService builds physical presence reports.
type PresenceService interface {
	Report(ctx context.Context, userID string, reference *civil.Date) (*presencemodels.Report, error)
}

// ApplicantService registers applicants against master records.
type ApplicantService interface {
	Register(ctx context.Context, userID, aNumber, dateOfBirth string) (*applicantmodels.Applicant, error)
}

// Handler serves the intake routes.
type Handler struct {
	logger     *slog.Logger
	lockouts   LockoutService
	assessor   AssessmentService
	presence   PresenceService
	applicants ApplicantService
	adminToken string
}

// New creates a Handler. adminToken guards the /admin routes; an empty token
// disables them.
func New(
	lockouts LockoutService,
	assessor AssessmentService,
	presence PresenceService,
	applicants ApplicantService,
	adminToken string,
	logger *slog.Logger,
) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:     logger,
		lockouts:   lockouts,
		assessor:   assessor,
		presence:   presence,
		applicants: applicants,
		adminToken: adminToken,
	}
}

// Register mounts the staff and applicant routes.
func (h *Handler) Register(r chi.Router) {
	r.Route("/admin", func(ar chi.Router) {
		ar.Use(admin.RequireAdminToken(h.adminToken, h.logger))
		ar.Post("/applicants", h.handleRegisterApplicant)
		ar.Get("/applicants/{userID}/lockout", h.handleGetLockout)
		ar.Put("/applicants/{userID}/lockout", h.handleSetLockout)
		ar.Delete("/applicants/{userID}/lockout", h.handleClearLockout)
		ar.Post("/applicants/{userID}/assessment", h.handleAssess)
		ar.Get("/applicants/{userID}/presence", h.handleAdminPresence)
		ar.Get("/unlock-date", h.handleUnlockDate)
	})

	r.Get("/purgatory/status", h.handleWaitingRoomStatus)
	r.Get("/application/eligibility/presence", h.handleOwnPresence)
}

func (h *Handler) handleRegisterApplicant(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndValidate[intakemodels.RegisterApplicantRequest](w, r, h.logger)
	if !ok {
		return
	}
	applicant, err := h.applicants.Register(r.Context(), strings.TrimSpace(req.UserID), req.ANumber, req.DateOfBirth)
	if err != nil {
		h.writeError(w, r, "failed to register applicant", err)
		return
	}
	status := http.StatusOK
	if applicant.Created {
		status = http.StatusCreated
	}
	httputil.WriteJSON(w, status, applicant)
}

func (h *Handler) handleGetLockout(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "userID")
	rec, err := h.lockouts.Get(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, "failed to read lockout", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, intakemodels.NewLockoutResponse(userID, rec))
}

func (h *Handler) handleSetLockout(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndValidate[intakemodels.SetLockoutRequest](w, r, h.logger)
	if !ok {
		return
	}
	lockout, err := h.lockouts.Set(r.Context(), chi.URLParam(r, "userID"), req.UnlockDate, req.Message, req.ControllingDescription)
	if err != nil {
		h.writeError(w, r, "failed to set lockout", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, lockout)
}

func (h *Handler) handleClearLockout(w http.ResponseWriter, r *http.Request) {
	if err := h.lockouts.Clear(r.Context(), chi.URLParam(r, "userID")); err != nil {
		h.writeError(w, r, "failed to clear lockout", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAssess(w http.ResponseWriter, r *http.Request) {
	req, ok := httputil.DecodeAndValidate[intakemodels.AssessmentRequest](w, r, h.logger)
	if !ok {
		return
	}
	result, err := h.assessor.Assess(r.Context(), eligibilitymodels.Assessment{
		UserID:                 chi.URLParam(r, "userID"),
		Status:                 req.Status,
		ControllingDescription: req.ControllingDescription,
		ApplicationDate:        req.ApplicationDate,
		Message:                req.Message,
	})
	if err != nil {
		h.writeError(w, r, "failed to record assessment", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, result)
}

func (h *Handler) handleAdminPresence(w http.ResponseWriter, r *http.Request) {
	h.writePresence(w, r, chi.URLParam(r, "userID"))
}

// handleOwnPresence lets a signed-in applicant see their own report. The
// path sits under the always-allowed eligibility prefix so it stays reachable
// while locked.
func (h *Handler) handleOwnPresence(w http.ResponseWriter, r *http.Request) {
	userID := requestcontext.UserID(r.Context())
	if userID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "applicant identity required"))
		return
	}
	h.writePresence(w, r, userID)
}

func (h *Handler) writePresence(w http.ResponseWriter, r *http.Request, userID string) {
	var reference *civil.Date
	if raw := strings.TrimSpace(r.URL.Query().Get("reference")); raw != "" {
		d, ok := dates.Parse(raw, dates.ISOThenUS...)
		if !ok {
			httputil.WriteError(w, dErrors.Wrap(
				&dates.ParseError{Text: raw, Layouts: dates.ISOThenUS},
				dErrors.CodeValidation, "reference is not a recognized date",
			))
			return
		}
		reference = &d
	}
	report, err := h.presence.Report(r.Context(), userID, reference)
	if err != nil {
		h.writeError(w, r, "failed to build presence report", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, report)
}

func (h *Handler) handleUnlockDate(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("application_date")
	if strings.TrimSpace(raw) == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeValidation, "application_date is required"))
		return
	}
	unlock, err := h.assessor.UnlockDate(raw)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, intakemodels.UnlockDateResponse{
		ApplicationDate: raw,
		UnlockDate:      unlock,
	})
}

// handleWaitingRoomStatus is what the waiting-room page polls. Checking also
// clears an expired lock, so the applicant is released on their next visit.
func (h *Handler) handleWaitingRoomStatus(w http.ResponseWriter, r *http.Request) {
	userID := requestcontext.UserID(r.Context())
	if userID == "" {
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "applicant identity required"))
		return
	}
	status, err := h.lockouts.Check(r.Context(), userID)
	if err != nil {
		h.writeError(w, r, "failed to check lockout", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, status)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	ctx := r.Context()
	if dErrors.CodeOf(err) == dErrors.CodeInternal {
		h.logger.ErrorContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	} else {
		h.logger.WarnContext(ctx, msg,
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
	}
	httputil.WriteError(w, err)
}
