package middleware

import (
	"log/slog"
	"net/http"
	"time"

	logctx "github.com/pribylovaa/go-news-api/pkg/log"
	"github.com/pribylovaa/go-news-api/pkg/redact"
)

// Logging кладёт в контекст логгер с request_id и по завершении запроса
// пишет запись "http". Значение auth_key в query маскируется.
// Ответы 5xx логируются уровнем Error.
func Logging(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := logctx.ForRequest(r.Context(), l, RequestIDFrom(r.Context()))
			lg := logctx.From(ctx)

			rec := record(w)
			started := time.Now()
			next.ServeHTTP(rec, r.WithContext(ctx))

			level := slog.LevelInfo
			if rec.Status() >= http.StatusInternalServerError {
				level = slog.LevelError
			}

			lg.LogAttrs(ctx, level, "http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("query", redact.Query(r.URL.RawQuery)),
				slog.Int("status", rec.Status()),
				slog.Int("bytes", rec.bytes),
				slog.Duration("dur", time.Since(started)),
			)
		})
	}
}
