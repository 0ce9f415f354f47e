package middleware

import (
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"orders-backend/pkg/auth"
	"orders-backend/pkg/masking"
)

// Span attribute keys carrying the masked caller identity.
const (
	AttrUserID   = "user_id"
	AttrUserName = "user_name"
)

// TraceTagging annotates the active server span with the masked identity of
// the authenticated caller. It must run after Authenticate, so the principal
// is already in the context, and after the tracing middleware, so a server
// span is recording.
//
// Anonymous requests and requests without a recording span pass through
// untouched. Raw identifiers never reach the span; both attributes go
// through the masking transform first.
func TraceTagging() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			span := trace.SpanFromContext(ctx)
			if !span.IsRecording() || !span.SpanContext().IsValid() {
				next.ServeHTTP(w, r)
				return
			}

			principal, ok := auth.PrincipalFromContext(ctx)
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			attrs := make([]attribute.KeyValue, 0, 2)
			if principal.Subject != "" {
				attrs = append(attrs, attribute.String(AttrUserID, masking.UserID(principal.Subject)))
			}
			if principal.Name != "" {
				attrs = append(attrs, attribute.String(AttrUserName, masking.UserName(principal.Name)))
			}
			if len(attrs) > 0 {
				span.SetAttributes(attrs...)
			}

			next.ServeHTTP(w, r)
		})
	}
}
