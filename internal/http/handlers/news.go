package handlers

import (
	"log/slog"
	"net/http"
	"net/url"

	apierrors "github.com/pribylovaa/go-news-api/internal/http/errors"
	"github.com/pribylovaa/go-news-api/internal/models"
	logctx "github.com/pribylovaa/go-news-api/pkg/log"
)

// Фиксированные тела ответов ленты (JSON-строки).
const (
	MessageAccessDenied = "Access denied"
	MessageNoNews       = "No news for the tag was found"
)

// News — GET /news?auth_key=<secret>&tags=<имена через пробел>.
//
//   - отказ в доступе: 404 + "Access denied";
//   - нет tags: 200 + "No news for the tag was found";
//   - иначе: 200 + упорядоченный объект {"<id>": {...}} (возможно {}).
func (h *Handlers) News(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := models.NewsRequest{AuthKey: lastValue(query, "auth_key")}
	if _, ok := query["tags"]; ok {
		tags := lastValue(query, "tags")
		req.Tags = &tags
	}

	res, err := h.news.Handle(r.Context(), req)
	if err != nil {
		logctx.From(r.Context()).Error("news_request_failed",
			slog.String("op", "handlers.News"),
			slog.String("err", err.Error()),
		)
		apierrors.WriteError(w, r, err)
		return
	}

	switch res.Outcome {
	case models.OutcomeDenied:
		writeJSON(w, http.StatusNotFound, MessageAccessDenied)
	case models.OutcomeNoTags:
		writeJSON(w, http.StatusOK, MessageNoNews)
	case models.OutcomeFound:
		items := res.Items
		if items == nil {
			items = models.NewsList{}
		}
		writeJSON(w, http.StatusOK, items)
	default:
		apierrors.WriteError(w, r, nil)
	}
}

// lastValue: при повторе параметра побеждает последнее значение.
func lastValue(q url.Values, key string) string {
	vs := q[key]
	if len(vs) == 0 {
		return ""
	}
	return vs[len(vs)-1]
}
