// Package logger wires zerolog for the whole service. Init is called once
// from main; everything else receives a *zerolog.Logger or pulls a
// request-scoped one via WithCtx.
package logger

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	appctx "github.com/sparcom/backend/internal/pkg/context"
)

// Init builds the root logger. format is "console" for local development
// and "json" for anything that ships logs.
func Init(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}

	var lg zerolog.Logger
	if strings.EqualFold(format, "console") {
		out := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
		lg = zerolog.New(out)
	} else {
		lg = zerolog.New(os.Stdout)
	}

	return lg.Level(lvl).With().Timestamp().Str("service", "sparcom-backend").Logger()
}

// WithCtx returns lg enriched with the request id carried by ctx, if any.
func WithCtx(ctx context.Context, lg zerolog.Logger) zerolog.Logger {
	if rid := appctx.RequestID(ctx); rid != "" {
		return lg.With().Str("request_id", rid).Logger()
	}
	return lg
}
