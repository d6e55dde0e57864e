// metrics — Prometheus-метрики news-api (регистрируются в default registry,
// отдаются через /metrics).
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "news"

var (
	// RequestsTotal — обработанные запросы ленты по исходу (denied, no_tags, found).
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total number of news feed requests by outcome",
		},
		[]string{"outcome"},
	)

	// QueryFailuresTotal — ошибки хранилища при выборке id контента
	// (запрос при этом отвечает пустым результатом).
	QueryFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "query_failures_total",
			Help:      "Total number of content queries that failed and degraded to an empty result",
		},
	)

	// IntegrityFailuresTotal — битые ссылки при проекции (тег/файл не найден).
	IntegrityFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "integrity_failures_total",
			Help:      "Total number of dangling references found while projecting content",
		},
		[]string{"reference"},
	)

	// HTTPRequestsTotal — HTTP-запросы по методу, маршруту и коду ответа.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration — длительность HTTP-запросов.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordOutcome учитывает исход запроса ленты.
func RecordOutcome(outcome string) {
	RequestsTotal.WithLabelValues(outcome).Inc()
}

// RecordQueryFailure учитывает деградацию выборки до пустого результата.
func RecordQueryFailure() {
	QueryFailuresTotal.Inc()
}

// RecordIntegrityFailure учитывает битую ссылку ("tag" или "image").
func RecordIntegrityFailure(reference string) {
	IntegrityFailuresTotal.WithLabelValues(reference).Inc()
}

// RecordHTTP учитывает завершённый HTTP-запрос.
func RecordHTTP(method, route string, status int, seconds float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}
