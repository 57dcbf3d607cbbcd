package http_handlers

import "github.com/sparcom/backend/internal/domain"

// errNoAccount signals a routing bug: a protected handler ran without the
// auth middleware having stored an account.
func errNoAccount() error {
	return domain.ErrSessionInvalid()
}
