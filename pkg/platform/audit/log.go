package audit

import (
	"context"
	"log/slog"

	"naturalize/pkg/requestcontext"
)

// Log records an audit event on both the structured logger and the publisher.
// Event fields are lifted from the key/value attrs: user_id (falling back to
// the request's user), actor_id, decision and reason.
func Log(ctx context.Context, logger *slog.Logger, publisher Publisher, event AuditEvent, attrList ...any) {
	requestID := requestcontext.RequestID(ctx)
	if requestID != "" {
		attrList = append(attrList, "request_id", requestID)
	}

	args := append(attrList, "event", string(event), "log_type", "audit")
	if logger != nil {
		logger.InfoContext(ctx, string(event), args...)
	}

	if publisher == nil {
		return
	}

	userID := extractString(attrList, "user_id")
	if userID == "" {
		userID = requestcontext.UserID(ctx)
	}
	err := publisher.Emit(ctx, Event{
		Category:  event.Category(),
		UserID:    userID,
		Action:    string(event),
		Decision:  extractString(attrList, "decision"),
		Reason:    extractString(attrList, "reason"),
		RequestID: requestID,
		ActorID:   extractString(attrList, "actor_id"),
	})
	if err != nil && logger != nil {
		logger.WarnContext(ctx, "failed to emit audit event", "event", string(event), "error", err)
	}
}

// extractString finds a string value in a [key1, value1, key2, value2, ...] slice.
func extractString(attrList []any, key string) string {
	for i := 0; i < len(attrList)-1; i += 2 {
		k, ok := attrList[i].(string)
		if !ok || k != key {
			continue
		}
		if v, ok := attrList[i+1].(string); ok {
			return v
		}
	}
	return ""
}
