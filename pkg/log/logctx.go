// log переносит request-scoped *slog.Logger через context.Context.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into кладёт логгер в контекст.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From достаёт логгер из контекста (или возвращает slog.Default()).
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}

// KeyRequestID — имя атрибута с идентификатором запроса.
const KeyRequestID = "request_id"

// ForRequest кладёт в контекст логгер l с атрибутом request_id.
// Пустой requestID атрибут не добавляет.
func ForRequest(ctx context.Context, l *slog.Logger, requestID string) context.Context {
	if l == nil {
		l = slog.Default()
	}
	if requestID != "" {
		l = l.With(slog.String(KeyRequestID, requestID))
	}

	return Into(ctx, l)
}
