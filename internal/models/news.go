// models содержит доменные сущности news-api.
// Эти типы используются слоями бизнес-логики, хранилища и транспорта.
package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"
)

// Tag — термин таксономии (тег новости).
type Tag struct {
	// ID — идентификатор термина.
	ID int64
	// Name — отображаемое имя термина (уникальность не гарантируется).
	Name string
}

// ContentItem — «сырая» запись контента в том виде, как её отдаёт хранилище.
//
// Особенности:
//   - TagRefs/ImageRefs хранят порядок ссылок (delta);
//   - PublishDate может отсутствовать (nil).
type ContentItem struct {
	ID          int64
	Kind        string
	Title       string
	Body        string
	BodySummary string
	TagRefs     []int64
	ImageRefs   []int64
	ViewCount   int64
	PublishDate *time.Time
}

// NewsProjection — публичное денормализованное представление новости.
// Tags и Image никогда не сериализуются как null — только как массив.
type NewsProjection struct {
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	Summary     string     `json:"summary"`
	Tags        []string   `json:"tags"`
	Image       []string   `json:"image"`
	ViewCount   int64      `json:"view_count"`
	PublishDate *time.Time `json:"publish_date"`
}

// NewsEntry — элемент упорядоченного ответа: id контента и его проекция.
type NewsEntry struct {
	ID   int64
	News NewsProjection
}

// NewsList — упорядоченное отображение id -> проекция.
// Порядок ключей в JSON совпадает с порядком загрузки записей.
type NewsList []NewsEntry

// MarshalJSON сериализует список в JSON-объект с ключами-строками id.
// Пустой список кодируется как {}.
func (l NewsList) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, entry := range l {
		if i > 0 {
			buf.WriteByte(',')
		}

		buf.WriteByte('"')
		buf.WriteString(strconv.FormatInt(entry.ID, 10))
		buf.WriteString(`":`)

		body, err := json.Marshal(entry.News)
		if err != nil {
			return nil, err
		}
		buf.Write(body)
	}

	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// IDs возвращает идентификаторы в порядке следования.
func (l NewsList) IDs() []int64 {
	ids := make([]int64, 0, len(l))
	for _, entry := range l {
		ids = append(ids, entry.ID)
	}

	return ids
}

// NewsRequest — входные параметры эндпоинта новостей.
// Tags == nil означает, что параметр tags в запросе отсутствует.
type NewsRequest struct {
	AuthKey string
	Tags    *string
}

// Outcome — итог обработки запроса новостей.
type Outcome int

const (
	// OutcomeDenied — ключ не совпал (или секрет не настроен).
	OutcomeDenied Outcome = iota + 1
	// OutcomeNoTags — доступ разрешён, но параметр tags не передан.
	OutcomeNoTags
	// OutcomeFound — доступ разрешён, Items содержит результат (возможно пустой).
	OutcomeFound
)

// String возвращает метку исхода для логов и метрик.
func (o Outcome) String() string {
	switch o {
	case OutcomeDenied:
		return "denied"
	case OutcomeNoTags:
		return "no_tags"
	case OutcomeFound:
		return "found"
	default:
		return "unknown"
	}
}

// NewsResult — результат работы оркестратора.
type NewsResult struct {
	Outcome Outcome
	Items   NewsList
}
