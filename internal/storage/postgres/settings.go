package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-news-api/internal/storage"
)

// Setting возвращает значение настройки по ключу.
// Отсутствие ключа (и ещё не созданная таблица настроек) — storage.ErrNotFound.
func (s *Storage) Setting(ctx context.Context, key string) (string, error) {
	const op = "storage.postgres.Setting"

	var value string
	err := s.db.QueryRow(ctx, `
	SELECT value
	FROM settings
	WHERE key = $1
	`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || pgCode(err) == pgerrcode.UndefinedTable {
			return "", fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return "", fmt.Errorf("%s: %w", op, classify(err))
	}

	return value, nil
}

// SetSetting сохраняет значение настройки (upsert по ключу).
func (s *Storage) SetSetting(ctx context.Context, key, value string) error {
	const op = "storage.postgres.SetSetting"

	if _, err := s.db.Exec(ctx, `
	INSERT INTO settings (key, value)
	VALUES ($1, $2)
	ON CONFLICT (key) DO UPDATE
	SET value = EXCLUDED.value
	`, key, value); err != nil {
		return fmt.Errorf("%s: %w", op, classify(err))
	}

	return nil
}
