package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/pribylovaa/go-news-api/internal/config"
	"github.com/pribylovaa/go-news-api/internal/metrics"
	"github.com/pribylovaa/go-news-api/internal/models"
	"github.com/pribylovaa/go-news-api/internal/storage"
	"github.com/pribylovaa/go-news-api/pkg/log"
)

// News — обработчик запроса ленты: доступ → теги → выборка → загрузка → проекция.
type News struct {
	settings  storage.SettingsStorage
	content   storage.ContentStorage
	tags      *TagResolver
	query     *ContentQuery
	projector *Projector
	cfg       config.NewsConfig
}

// Handle обрабатывает запрос ленты.
//
// Исходы:
//   - ключ не совпал с секретом (или секрет не настроен) — OutcomeDenied;
//   - tags отсутствует или пуст — OutcomeNoTags;
//   - иначе — OutcomeFound с упорядоченным списком (возможно пустым).
//
// Ошибка возвращается только при сбое разрешения тегов, загрузки записей
// или нарушении целостности ссылок (ErrDataIntegrity).
func (n *News) Handle(ctx context.Context, req models.NewsRequest) (*models.NewsResult, error) {
	const op = "service.news.Handle"

	lg := log.From(ctx)

	if !n.authorize(ctx, req.AuthKey) {
		lg.Info("news_access_denied", slog.String("op", op))
		return n.result(models.OutcomeDenied, nil), nil
	}

	if req.Tags == nil || *req.Tags == "" {
		return n.result(models.OutcomeNoTags, nil), nil
	}

	names := SplitNames(*req.Tags)

	cond, err := n.tags.ResolveNames(ctx, names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var conds []models.FilterCondition
	switch {
	case cond != nil:
		conds = append(conds, *cond)
	case n.cfg.UnknownTags == config.UnknownTagsNone:
		lg.Debug("news_tags_unresolved",
			slog.String("op", op),
			slog.Int("names", len(names)),
		)
		return n.result(models.OutcomeFound, models.NewsList{}), nil
	}

	ids := n.query.FindIDs(ctx, conds)
	if len(ids) == 0 {
		return n.result(models.OutcomeFound, models.NewsList{}), nil
	}

	items, err := n.content.ContentByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	list, err := n.projector.Project(ctx, items)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	lg.Debug("news_served",
		slog.String("op", op),
		slog.Int("tags", len(names)),
		slog.Int("items", len(list)),
	)

	return n.result(models.OutcomeFound, list), nil
}

// authorize сравнивает ключ с секретом за постоянное время.
// Пустой или недоступный секрет не совпадает ни с чем.
func (n *News) authorize(ctx context.Context, key string) bool {
	const op = "service.news.authorize"

	secret, err := n.settings.Setting(ctx, n.cfg.AuthSetting)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			err = ErrNotConfigured
		}
		log.From(ctx).Warn("news_auth_secret_unavailable",
			slog.String("op", op),
			slog.String("err", err.Error()),
		)
		return false
	}

	if strings.TrimSpace(secret) == "" {
		log.From(ctx).Warn("news_auth_secret_unavailable",
			slog.String("op", op),
			slog.String("err", ErrNotConfigured.Error()),
		)
		return false
	}

	if key == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(key), []byte(secret)) == 1
}

func (n *News) result(outcome models.Outcome, items models.NewsList) *models.NewsResult {
	metrics.RecordOutcome(outcome.String())
	return &models.NewsResult{Outcome: outcome, Items: items}
}
