package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-news-api/internal/metrics"
)

// Metrics учитывает запрос в news_http_requests_total и
// news_http_request_duration_seconds. Метка route — шаблон маршрута chi.
func Metrics() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rec := record(w)
			start := time.Now()
			next.ServeHTTP(rec, r)

			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil {
				if p := rc.RoutePattern(); p != "" {
					route = p
				}
			}

			metrics.RecordHTTP(r.Method, route, rec.Status(), time.Since(start).Seconds())
		})
	}
}
