package testutil

import (
	"context"
	"net/http"
	"time"

	"naturalize/pkg/platform/middleware/identity"
	"naturalize/pkg/requestcontext"
)

// WithApplicant adds an applicant ID to the request context and header.
// This simulates what the identity middleware does for forwarded requests.
func WithApplicant(req *http.Request, userID string) *http.Request {
	req.Header.Set(identity.HeaderApplicantID, userID)
	ctx := requestcontext.WithUserID(req.Context(), userID)
	return req.WithContext(ctx)
}

// WithRequestTime pins the request-scoped clock.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}

// ContextAt returns a background context whose request time is t.
func ContextAt(t time.Time) context.Context {
	return requestcontext.WithTime(context.Background(), t)
}

// Day returns midday UTC on the given date, a safe clock for date-level tests.
func Day(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}
