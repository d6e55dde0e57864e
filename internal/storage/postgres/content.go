package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pribylovaa/go-news-api/internal/models"
	"github.com/pribylovaa/go-news-api/internal/storage"
)

// ContentIDs возвращает id опубликованного контента, удовлетворяющего всем условиям.
//
// Особенности:
//   - контроль доступа (published = TRUE) применяется всегда и не отключается;
//   - условия объединяются через AND в порядке передачи;
//   - неподдерживаемое поле/оператор/тип значения — storage.ErrInvalidCondition;
//   - порядок результата — c.id ASC.
func (s *Storage) ContentIDs(ctx context.Context, conds []models.FilterCondition) ([]int64, error) {
	const op = "storage.postgres.ContentIDs"

	query, args, err := buildContentQuery(conds)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%s: scan row: %w", op, err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: rows: %w", op, classify(err))
	}

	return ids, nil
}

// buildContentQuery транслирует условия в SQL с позиционными параметрами.
func buildContentQuery(conds []models.FilterCondition) (string, []any, error) {
	var b strings.Builder
	b.WriteString("SELECT c.id FROM content c WHERE c.published = TRUE")

	args := make([]any, 0, len(conds))
	next := func(v any) string {
		args = append(args, v)
		return "$" + strconv.Itoa(len(args))
	}

	for i, cond := range conds {
		if err := cond.Validate(); err != nil {
			return "", nil, fmt.Errorf("%w: condition %d: %v", storage.ErrInvalidCondition, i, err)
		}

		switch cond.Field {
		case models.FieldKind:
			switch cond.Operator {
			case models.OpEquals:
				kind, ok := cond.Scalar.(string)
				if !ok {
					return "", nil, fmt.Errorf("%w: condition %d: kind must be a string", storage.ErrInvalidCondition, i)
				}
				b.WriteString(" AND c.kind = " + next(kind))
			case models.OpIn:
				kinds, err := toStrings(cond.Set)
				if err != nil {
					return "", nil, fmt.Errorf("%w: condition %d: %v", storage.ErrInvalidCondition, i, err)
				}
				b.WriteString(" AND c.kind = ANY(" + next(kinds) + ")")
			}
		case models.FieldTags:
			switch cond.Operator {
			case models.OpEquals:
				id, err := toInt64(cond.Scalar)
				if err != nil {
					return "", nil, fmt.Errorf("%w: condition %d: %v", storage.ErrInvalidCondition, i, err)
				}
				b.WriteString(" AND EXISTS (SELECT 1 FROM content_tags ct WHERE ct.content_id = c.id AND ct.term_id = " + next(id) + ")")
			case models.OpIn:
				ids, err := toInt64s(cond.Set)
				if err != nil {
					return "", nil, fmt.Errorf("%w: condition %d: %v", storage.ErrInvalidCondition, i, err)
				}
				b.WriteString(" AND EXISTS (SELECT 1 FROM content_tags ct WHERE ct.content_id = c.id AND ct.term_id = ANY(" + next(ids) + "))")
			}
		default:
			return "", nil, fmt.Errorf("%w: condition %d: unknown field %q", storage.ErrInvalidCondition, i, cond.Field)
		}
	}

	b.WriteString(" ORDER BY c.id")

	return b.String(), args, nil
}

func toInt64(v any) (int64, error) {
	switch n := v.(type) {
	case int64:
		return n, nil
	case int:
		return int64(n), nil
	case int32:
		return int64(n), nil
	default:
		return 0, fmt.Errorf("expected integer id, got %T", v)
	}
}

func toInt64s(set []any) ([]int64, error) {
	out := make([]int64, 0, len(set))
	for _, v := range set {
		n, err := toInt64(v)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}

	return out, nil
}

func toStrings(set []any) ([]string, error) {
	out := make([]string, 0, len(set))
	for _, v := range set {
		s, ok := v.(string)
		if !ok {
			return nil, fmt.Errorf("expected string, got %T", v)
		}
		out = append(out, s)
	}

	return out, nil
}

// ContentByIDs загружает записи контента вместе с упорядоченными ссылками
// на теги и изображения. Результат следует порядку ids; повторы и
// отсутствующие записи отбрасываются.
func (s *Storage) ContentByIDs(ctx context.Context, ids []int64) ([]models.ContentItem, error) {
	const op = "storage.postgres.ContentByIDs"

	if len(ids) == 0 {
		return nil, nil
	}

	byID, err := s.loadContentRows(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(byID) == 0 {
		return nil, nil
	}

	if err := s.loadRefs(ctx, `
	SELECT content_id, term_id
	FROM content_tags
	WHERE content_id = ANY($1)
	ORDER BY content_id, delta
	`, ids, func(item *models.ContentItem, ref int64) {
		item.TagRefs = append(item.TagRefs, ref)
	}, byID); err != nil {
		return nil, fmt.Errorf("%s: tags: %w", op, err)
	}

	if err := s.loadRefs(ctx, `
	SELECT content_id, file_id
	FROM content_images
	WHERE content_id = ANY($1)
	ORDER BY content_id, delta
	`, ids, func(item *models.ContentItem, ref int64) {
		item.ImageRefs = append(item.ImageRefs, ref)
	}, byID); err != nil {
		return nil, fmt.Errorf("%s: images: %w", op, err)
	}

	items := make([]models.ContentItem, 0, len(byID))
	seen := make(map[int64]struct{}, len(byID))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		items = append(items, *item)
	}

	return items, nil
}

func (s *Storage) loadContentRows(ctx context.Context, ids []int64) (map[int64]*models.ContentItem, error) {
	rows, err := s.db.Query(ctx, `
	SELECT id, kind, title, body, body_summary, view_count, publish_date
	FROM content
	WHERE id = ANY($1)
	`, ids)
	if err != nil {
		return nil, classify(err)
	}
	defer rows.Close()

	byID := make(map[int64]*models.ContentItem, len(ids))
	for rows.Next() {
		var item models.ContentItem
		var published *time.Time
		if err := rows.Scan(
			&item.ID,
			&item.Kind,
			&item.Title,
			&item.Body,
			&item.BodySummary,
			&item.ViewCount,
			&published,
		); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}

		if published != nil {
			utc := published.UTC()
			item.PublishDate = &utc
		}

		byID[item.ID] = &item
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", classify(err))
	}

	return byID, nil
}

// loadRefs читает пары (content_id, ref) и раскладывает их по записям.
// Ссылки на записи, которых нет в byID, игнорируются.
func (s *Storage) loadRefs(
	ctx context.Context,
	query string,
	ids []int64,
	add func(item *models.ContentItem, ref int64),
	byID map[int64]*models.ContentItem,
) error {
	rows, err := s.db.Query(ctx, query, ids)
	if err != nil {
		return classify(err)
	}
	defer rows.Close()

	for rows.Next() {
		var contentID, ref int64
		if err := rows.Scan(&contentID, &ref); err != nil {
			return fmt.Errorf("scan row: %w", err)
		}

		if item, ok := byID[contentID]; ok {
			add(item, ref)
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("rows: %w", classify(err))
	}

	return nil
}
