package middleware

import (
	"net/http"

	"github.com/sparcom/backend/internal/domain"
)

// Require gates a route on a role predicate, e.g. domain.CanCreateEvents.
// Assumes Auth has already put the account into context.
func Require(allowed func(role string) bool, required string, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			acc, ok := AccountFromContext(r.Context())
			if !ok {
				// Auth middleware missing or ordering bug.
				writeErr(w, r, domain.ErrSessionInvalid())
				return
			}

			if !allowed(acc.Profile.Role) {
				writeErr(w, r, domain.ErrInsufficientRole(required))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
