// storage определяет контракты доступа к внешним хранилищам news-api:
// настройки, таксономия, контент и файлы.
package storage

import (
	"context"
	"errors"

	"github.com/pribylovaa/go-news-api/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidCondition — условие фильтра не поддерживается построителем запроса.
	ErrInvalidCondition = errors.New("invalid condition")
)

// SettingsStorage — хранилище строковых настроек (в т.ч. секрета auth_key).
type SettingsStorage interface {
	// Setting возвращает значение настройки. Если ключ не задан — ErrNotFound.
	Setting(ctx context.Context, key string) (string, error)
	// SetSetting создаёт или перезаписывает значение настройки.
	SetSetting(ctx context.Context, key, value string) error
}

// TaxonomyStorage — чтение терминов таксономии.
type TaxonomyStorage interface {
	// TermsByNames возвращает термины словаря, имя которых точно (с учётом регистра)
	// совпадает с одним из names. Отсутствие совпадений — пустой срез без ошибки.
	TermsByNames(ctx context.Context, vocabulary string, names []string) ([]models.Tag, error)
	// Terms возвращает все термины словаря.
	Terms(ctx context.Context, vocabulary string) ([]models.Tag, error)
}

// TaxonomyReloader — кэширующее хранилище таксономии, которое умеет
// перечитать словарь из источника в обход кэша.
type TaxonomyReloader interface {
	// ReloadTerms загружает словарь из источника и обновляет кэш.
	ReloadTerms(ctx context.Context, vocabulary string) ([]models.Tag, error)
}

// ContentStorage — выборка контента.
type ContentStorage interface {
	// ContentIDs возвращает id контента, удовлетворяющего всем условиям (AND).
	// Контроль доступа применяется всегда: неопубликованный контент не виден.
	// Неподдерживаемое условие — ErrInvalidCondition.
	ContentIDs(ctx context.Context, conds []models.FilterCondition) ([]int64, error)
	// ContentByIDs загружает записи в порядке ids; отсутствующие id пропускаются.
	ContentByIDs(ctx context.Context, ids []int64) ([]models.ContentItem, error)
}

// FileStorage — разрешение id файла в URI.
type FileStorage interface {
	// URIFor возвращает URI файла. Неизвестный id или отсутствующий объект — ErrNotFound.
	URIFor(ctx context.Context, id int64) (string, error)
}

// Storage — полный контракт реляционного хранилища news-api.
type Storage interface {
	SettingsStorage
	TaxonomyStorage
	ContentStorage
	FileStorage
	Close()
}
