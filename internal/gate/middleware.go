package gate

import (
	"context"
	"log/slog"
	"net/http"

	"naturalize/internal/gate/metrics"
	lockoutmodels "naturalize/internal/lockout/models"
	"naturalize/pkg/platform/audit"
	"naturalize/pkg/requestcontext"
)

// LockChecker resolves an applicant's lockout, clearing expired locks.
type LockChecker interface {
	Check(ctx context.Context, userID string) (*lockoutmodels.Status, error)
}

// Middleware enforces a Policy on every request.
type Middleware struct {
	policy         Policy
	checker        LockChecker
	logger         *slog.Logger
	metrics        *metrics.Metrics
	auditPublisher audit.Publisher
}

type Option func(*Middleware)

func WithLogger(logger *slog.Logger) Option {
	return func(m *Middleware) {
		m.logger = logger
	}
}

func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Middleware) {
		m.metrics = mt
	}
}

func WithAuditPublisher(publisher audit.Publisher) Option {
	return func(m *Middleware) {
		m.auditPublisher = publisher
	}
}

func NewMiddleware(policy Policy, checker LockChecker, opts ...Option) *Middleware {
	m := &Middleware{policy: policy, checker: checker}
	for _, opt := range opts {
		opt(m)
	}
	if m.logger == nil {
		m.logger = slog.Default()
	}
	return m
}

// Handler wraps next. Only restricted paths cost a lockout lookup. Requests
// without an applicant, or whose lockout cannot be read, are let through.
func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.policy.Classify(r.URL.Path) != ClassRestricted {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		userID := requestcontext.UserID(ctx)
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}

		status, err := m.checker.Check(ctx, userID)
		if err != nil {
			m.metrics.IncrementFailOpen()
			m.logger.ErrorContext(ctx, "lockout check failed; allowing request",
				"user_id", userID,
				"path", r.URL.Path,
				"error", err,
			)
			next.ServeHTTP(w, r)
			return
		}

		decision := m.policy.Decide(r.URL.Path, status.Locked())
		m.metrics.IncrementDecision(string(decision.Action))
		if decision.Action != ActionRedirect {
			next.ServeHTTP(w, r)
			return
		}

		audit.Log(ctx, m.logger, m.auditPublisher, audit.EventAccessRedirected,
			"user_id", userID,
			"path", r.URL.Path,
			"decision", string(decision.Action),
		)
		http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
	})
}
