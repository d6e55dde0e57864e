package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-news-api/internal/models"
)

// TermsByNames возвращает термины словаря с точным совпадением имени.
// Пустой names не обращается к БД.
func (s *Storage) TermsByNames(ctx context.Context, vocabulary string, names []string) ([]models.Tag, error) {
	const op = "storage.postgres.TermsByNames"

	if len(names) == 0 {
		return nil, nil
	}

	rows, err := s.db.Query(ctx, `
	SELECT id, name
	FROM taxonomy_terms
	WHERE vocabulary = $1 AND name = ANY($2)
	ORDER BY id
	`, vocabulary, names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}

	tags, err := scanTags(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tags, nil
}

// Terms возвращает все термины словаря, упорядоченные по id.
func (s *Storage) Terms(ctx context.Context, vocabulary string) ([]models.Tag, error) {
	const op = "storage.postgres.Terms"

	rows, err := s.db.Query(ctx, `
	SELECT id, name
	FROM taxonomy_terms
	WHERE vocabulary = $1
	ORDER BY id
	`, vocabulary)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, classify(err))
	}

	tags, err := scanTags(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tags, nil
}

func scanTags(rows pgx.Rows) ([]models.Tag, error) {
	defer rows.Close()

	var tags []models.Tag
	for rows.Next() {
		var tag models.Tag
		if err := rows.Scan(&tag.ID, &tag.Name); err != nil {
			return nil, fmt.Errorf("scan row: %w", err)
		}
		tags = append(tags, tag)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", classify(err))
	}

	return tags, nil
}
