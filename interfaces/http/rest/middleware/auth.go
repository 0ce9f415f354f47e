package middleware

import (
	"net/http"

	"go.uber.org/zap"

	"orders-backend/pkg/api"
	"orders-backend/pkg/auth"
)

// Authenticate extracts the caller's identity from the Authorization header
// and stores it in the request context. Requests without a valid token pass
// through anonymously; route-level guards decide whether to reject them.
func Authenticate(validator *auth.JWTValidator, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := validator.ValidateToken(header)
			if err != nil {
				logger.Debug("token validation failed", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			ctx := auth.WithPrincipal(r.Context(), auth.Principal{
				Subject: claims.UserID,
				Name:    claims.Name,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects requests that carry no authenticated principal.
func RequireAuth() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := auth.PrincipalFromContext(r.Context()); !ok {
				api.Error(w, http.StatusUnauthorized, "authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
