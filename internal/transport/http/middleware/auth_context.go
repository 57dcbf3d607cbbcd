package middleware

import (
	"context"

	"github.com/sparcom/backend/internal/domain"
)

type ctxKey string

const (
	ctxAccount ctxKey = "account"
	ctxToken   ctxKey = "session_token"
)

func WithAccount(ctx context.Context, a domain.Account, token string) context.Context {
	ctx = context.WithValue(ctx, ctxAccount, a)
	ctx = context.WithValue(ctx, ctxToken, token)
	return ctx
}

func AccountFromContext(ctx context.Context) (domain.Account, bool) {
	a, ok := ctx.Value(ctxAccount).(domain.Account)
	return a, ok && a.User.ID != ""
}

func TokenFromContext(ctx context.Context) (string, bool) {
	t, ok := ctx.Value(ctxToken).(string)
	return t, ok && t != ""
}
