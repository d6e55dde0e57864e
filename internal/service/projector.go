package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/pribylovaa/go-news-api/internal/metrics"
	"github.com/pribylovaa/go-news-api/internal/models"
	"github.com/pribylovaa/go-news-api/internal/storage"
	"github.com/pribylovaa/go-news-api/pkg/log"
)

// Projector превращает сырые записи контента в публичные проекции.
type Projector struct {
	tags  *TagResolver
	files storage.FileStorage
}

// NewProjector создаёт проектор.
func NewProjector(tags *TagResolver, files storage.FileStorage) *Projector {
	return &Projector{tags: tags, files: files}
}

// Project строит упорядоченный список проекций, по одной на запись.
//
// Особенности:
//   - словарь тегов загружается один раз на вызов и перечитывается
//     в обход кэша не более одного раза, если id тега в нём не нашёлся;
//   - порядок тегов и изображений совпадает с порядком ссылок;
//   - пустые tags/image — [], не null;
//   - любая неразрешённая ссылка прерывает проекцию целиком (ErrDataIntegrity).
func (p *Projector) Project(ctx context.Context, items []models.ContentItem) (models.NewsList, error) {
	const op = "service.projector.Project"

	list := make(models.NewsList, 0, len(items))
	if len(items) == 0 {
		return list, nil
	}

	tags, err := p.tags.newLookup(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	for _, item := range items {
		names, err := tags.Names(ctx, item.TagRefs)
		if err != nil {
			if errors.Is(err, ErrDataIntegrity) {
				p.integrityFailure(ctx, op, "tag", item.ID, err)
			}
			return nil, fmt.Errorf("%s: content %d: %w", op, item.ID, err)
		}

		images, err := p.imageURIs(ctx, item.ImageRefs)
		if err != nil {
			if errors.Is(err, ErrDataIntegrity) {
				p.integrityFailure(ctx, op, "image", item.ID, err)
			}
			return nil, fmt.Errorf("%s: content %d: %w", op, item.ID, err)
		}

		list = append(list, models.NewsEntry{
			ID: item.ID,
			News: models.NewsProjection{
				Title:       item.Title,
				Body:        item.Body,
				Summary:     item.BodySummary,
				Tags:        names,
				Image:       images,
				ViewCount:   item.ViewCount,
				PublishDate: item.PublishDate,
			},
		})
	}

	return list, nil
}

// imageURIs: отсутствующий файл — ErrDataIntegrity, прочие ошибки как есть.
func (p *Projector) imageURIs(ctx context.Context, refs []int64) ([]string, error) {
	uris := make([]string, 0, len(refs))
	for _, ref := range refs {
		uri, err := p.files.URIFor(ctx, ref)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return nil, fmt.Errorf("%w: unresolved image %d: %v", ErrDataIntegrity, ref, err)
			}
			return nil, err
		}
		uris = append(uris, uri)
	}

	return uris, nil
}

func (p *Projector) integrityFailure(ctx context.Context, op, reference string, contentID int64, err error) {
	metrics.RecordIntegrityFailure(reference)
	log.From(ctx).Error("news_projection_integrity_failed",
		slog.String("op", op),
		slog.String("reference", reference),
		slog.Int64("content_id", contentID),
		slog.String("err", err.Error()),
	)
}
