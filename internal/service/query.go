package service

import (
	"context"
	"log/slog"

	"github.com/pribylovaa/go-news-api/internal/metrics"
	"github.com/pribylovaa/go-news-api/internal/models"
	"github.com/pribylovaa/go-news-api/internal/storage"
	"github.com/pribylovaa/go-news-api/pkg/log"
)

// ContentQuery выбирает id видимого контента заданного типа.
type ContentQuery struct {
	storage storage.ContentStorage
	kind    string
}

// NewContentQuery создаёт выборку для контента типа kind.
func NewContentQuery(st storage.ContentStorage, kind string) *ContentQuery {
	return &ContentQuery{storage: st, kind: kind}
}

// FindIDs возвращает id контента типа kind, удовлетворяющего conds (AND).
//
// Особенности:
//   - условие на kind всегда идёт первым;
//   - ошибка хранилища не выходит наружу: Warn, метрика, пустой результат;
//   - повторы id отбрасываются, порядок хранилища сохраняется.
func (q *ContentQuery) FindIDs(ctx context.Context, conds []models.FilterCondition) []int64 {
	const op = "service.query.FindIDs"

	all := make([]models.FilterCondition, 0, len(conds)+1)
	all = append(all, models.Equals(models.FieldKind, q.kind))
	all = append(all, conds...)

	ids, err := q.storage.ContentIDs(ctx, all)
	if err != nil {
		log.From(ctx).Warn("news_query_failed",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		metrics.RecordQueryFailure()

		return []int64{}
	}

	out := make([]int64, 0, len(ids))
	seen := make(map[int64]struct{}, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
