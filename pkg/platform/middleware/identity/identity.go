// Package identity lifts the applicant and request identifiers into the
// request context. Authentication happens upstream; the proxy in front of
// this service forwards the authenticated applicant in HeaderApplicantID.
package identity

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"naturalize/pkg/requestcontext"
)

const (
	HeaderApplicantID = "X-Applicant-ID"
	HeaderRequestID   = "X-Request-ID"
)

// RequestID reuses an inbound request ID or mints one, and echoes it back.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := strings.TrimSpace(r.Header.Get(HeaderRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, requestID)
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Applicant copies the forwarded applicant ID into the context.
// Requests without one proceed anonymously.
func Applicant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(HeaderApplicantID))
		if userID == "" {
			next.ServeHTTP(w, r)
			return
		}
		ctx := requestcontext.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
