package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/sparcom/backend/internal/domain"
	"github.com/sparcom/backend/internal/infrastructure/security"
)

// SessionResolver turns a bearer token into the account behind it.
type SessionResolver interface {
	ResolveSession(ctx context.Context, token string) (domain.Account, error)
}

type WriteErrFunc func(http.ResponseWriter, *http.Request, error)

// BearerToken extracts the session token from the request, in order:
// X-Authorization header, Authorization header, then the session cookie.
// A "Bearer " prefix is stripped case-insensitively.
func BearerToken(r *http.Request) string {
	for _, h := range []string{"X-Authorization", "Authorization"} {
		if v := strings.TrimSpace(r.Header.Get(h)); v != "" {
			return stripBearer(v)
		}
	}
	if v, err := security.ReadSessionCookie(r); err == nil {
		return strings.TrimSpace(v)
	}
	return ""
}

func stripBearer(v string) string {
	parts := strings.SplitN(v, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return v
}

// Auth resolves the session token and injects the account into the
// request context. Requests without a live session are rejected.
func Auth(sessions SessionResolver, writeErr WriteErrFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r)
			if token == "" {
				writeErr(w, r, domain.ErrTokenMissing())
				return
			}

			acc, err := sessions.ResolveSession(r.Context(), token)
			if err != nil {
				writeErr(w, r, err)
				return
			}

			ctx := WithAccount(r.Context(), acc, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
