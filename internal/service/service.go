// service содержит бизнес-логику news-api: проверку доступа по общему секрету,
// разрешение тегов, выборку и денормализацию контента.
package service

import (
	"errors"

	"github.com/pribylovaa/go-news-api/internal/config"
	"github.com/pribylovaa/go-news-api/internal/storage"
)

var (
	// ErrDataIntegrity — ссылка на тег или файл не разрешилась при проекции.
	// Транспорт: 500 с общим телом ошибки.
	ErrDataIntegrity = errors.New("data integrity violation")
	// ErrNotConfigured — секрет доступа не задан в хранилище настроек.
	// Наружу не выходит: запрос получает отказ в доступе.
	ErrNotConfigured = errors.New("auth secret is not configured")
)

// Deps — хранилища, с которыми работает сервис.
type Deps struct {
	Settings storage.SettingsStorage
	Taxonomy storage.TaxonomyStorage
	Content  storage.ContentStorage
	Files    storage.FileStorage
}

// New собирает конвейер обработки запроса ленты из хранилищ и конфига.
func New(deps Deps, cfg config.Config) *News {
	tags := NewTagResolver(deps.Taxonomy, cfg.News.Vocabulary)

	return &News{
		settings:  deps.Settings,
		content:   deps.Content,
		tags:      tags,
		query:     NewContentQuery(deps.Content, cfg.News.Kind),
		projector: NewProjector(tags, deps.Files),
		cfg:       cfg.News,
	}
}
