package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-news-api/internal/storage"
)

// URIFor возвращает URI файла по id.
// Неизвестный id или пустой uri — storage.ErrNotFound.
func (s *Storage) URIFor(ctx context.Context, id int64) (string, error) {
	const op = "storage.postgres.URIFor"

	var uri string
	err := s.db.QueryRow(ctx, `
	SELECT uri
	FROM files
	WHERE id = $1
	`, id).Scan(&uri)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", fmt.Errorf("%s: file %d: %w", op, id, storage.ErrNotFound)
		}

		return "", fmt.Errorf("%s: %w", op, classify(err))
	}

	if strings.TrimSpace(uri) == "" {
		return "", fmt.Errorf("%s: file %d has empty uri: %w", op, id, storage.ErrNotFound)
	}

	return uri, nil
}
