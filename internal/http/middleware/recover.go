package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"

	apierrors "github.com/pribylovaa/go-news-api/internal/http/errors"
	logctx "github.com/pribylovaa/go-news-api/pkg/log"
)

var errPanic = errors.New("panic")

// Recover перехватывает panic и отвечает 500/internal, если ответ ещё не начат.
// Причина и стек пишутся только в лог.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := record(w)

			defer func() {
				reason := recover()
				if reason == nil {
					return
				}
				if reason == http.ErrAbortHandler {
					panic(reason)
				}

				logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "http_panic_recovered",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.Any("reason", reason),
					slog.String("stack", string(debug.Stack())),
				)

				if rec.Written() {
					return
				}
				apierrors.WriteError(rec, r, errPanic)
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
