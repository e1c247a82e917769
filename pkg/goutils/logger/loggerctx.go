/*
 * Copyright (c) 2025-present unTill Software Development Group B.V.
 */

package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
)

// Replaces writers of context-aware logging functions. Use in tests only
func SetCtxWriters(out, err io.Writer) {
	slogOut = slog.New(slog.NewTextHandler(out, ctxHandlerOpts))
	slogErr = slog.New(slog.NewTextHandler(err, ctxHandlerOpts))
}

// Returns new context with attribute added to attributes stored in ctx.
// Attribute with the same name is replaced. Stored attributes are never modified
func WithContextAttrs(ctx context.Context, name string, value any) context.Context {
	prev := attrsFromCtx(ctx)
	attrs := make([]slog.Attr, 0, len(prev)+1)
	for _, a := range prev {
		if a.Key != name {
			attrs = append(attrs, a)
		}
	}
	attrs = append(attrs, slog.Any(name, value))
	return context.WithValue(ctx, ctxKey{}, attrs)
}

func VerboseCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelVerbose, slog.LevelDebug, args...)
}

func ErrorCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelError, slog.LevelError, args...)
}

func InfoCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelInfo, slog.LevelInfo, args...)
}

func WarningCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelWarning, slog.LevelWarn, args...)
}

func TraceCtx(ctx context.Context, args ...interface{}) {
	logCtx(ctx, LogLevelTrace, slog.LevelDebug-4, args...)
}

func logCtx(ctx context.Context, level TLogLevel, slogLevel slog.Level, args ...interface{}) {
	if !isEnabled(level) {
		return
	}
	log := slogOut
	if level == LogLevelError {
		log = slogErr
	}
	fn, line := globalLogPrinter.getFuncName(logCtxSkipFrames)
	attrs := []any{slog.String("src", fmt.Sprintf("%s:%d", fn, line))}
	for _, a := range attrsFromCtx(ctx) {
		attrs = append(attrs, a)
	}
	log.Log(ctx, slogLevel, fmt.Sprint(args...), attrs...)
}

func attrsFromCtx(ctx context.Context) []slog.Attr {
	attrs, _ := ctx.Value(ctxKey{}).([]slog.Attr)
	return slices.Clip(attrs)
}
