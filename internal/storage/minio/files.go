package minio

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	mclient "github.com/minio/minio-go/v7"

	"github.com/pribylovaa/go-news-api/internal/storage"
)

// URIFor разрешает id файла в публичный URL объекта.
//
// Правила:
//   - абсолютный http(s) URI отдаётся как есть, бакет не проверяется;
//   - для "scheme://path" ключом объекта служит path, для прочих — URI без ведущего '/';
//   - отсутствующий объект (NoSuchKey/404) — storage.ErrNotFound.
func (f *FileStorage) URIFor(ctx context.Context, id int64) (string, error) {
	const op = "storage.minio.URIFor"

	uri, err := f.base.URIFor(ctx, id)
	if err != nil {
		return "", err
	}

	if isHTTPURL(uri) {
		return uri, nil
	}

	key := objectKey(uri)
	if key == "" {
		return "", fmt.Errorf("%s: file %d: empty object key: %w", op, id, storage.ErrNotFound)
	}

	if _, err := f.client.StatObject(ctx, f.bucket, key, mclient.StatObjectOptions{}); err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == http.StatusNotFound {
			return "", fmt.Errorf("%s: file %d: object %q: %w", op, id, key, storage.ErrNotFound)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return f.baseURL + "/" + key, nil
}

func isHTTPURL(uri string) bool {
	lower := strings.ToLower(uri)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// objectKey: "public://news/a.jpg" -> "news/a.jpg", "/news/a.jpg" -> "news/a.jpg".
func objectKey(uri string) string {
	if _, rest, ok := strings.Cut(uri, "://"); ok {
		uri = rest
	}

	return strings.TrimLeft(strings.TrimSpace(uri), "/")
}
