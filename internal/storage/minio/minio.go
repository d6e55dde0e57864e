// minio предоставляет декоратор storage.FileStorage поверх MinIO/S3.
// minio.go — конструктор клиента MinIO: нормализует endpoint,
// настраивает Secure/creds и проверяет наличие целевого бакета.
// files.go — разрешение URI файла в публичный URL с проверкой объекта.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pribylovaa/go-news-api/internal/config"
	"github.com/pribylovaa/go-news-api/internal/storage"
)

// objectStater — подмножество *mclient.Client, нужное декоратору.
type objectStater interface {
	StatObject(ctx context.Context, bucket, object string, opts mclient.StatObjectOptions) (mclient.ObjectInfo, error)
}

// FileStorage — декоратор: id файла разрешается базовым хранилищем в URI,
// URI превращается в ключ объекта, наличие объекта проверяется в бакете,
// наружу отдаётся публичный URL.
type FileStorage struct {
	base    storage.FileStorage
	client  objectStater
	bucket  string
	baseURL string
}

// New создает клиент MinIO и оборачивает base.
// Выполняет fail-fast-проверку доступности бакета.
func New(ctx context.Context, cfg config.S3Config, base storage.FileStorage) (*FileStorage, error) {
	const op = "storage.minio.New"

	endpoint := cfg.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.RootUser, cfg.RootPassword, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, cfg.Bucket)
	}

	return newFileStorage(base, client, cfg.Bucket, cfg.PublicBaseURL), nil
}

func newFileStorage(base storage.FileStorage, client objectStater, bucket, publicBaseURL string) *FileStorage {
	return &FileStorage{
		base:    base,
		client:  client,
		bucket:  bucket,
		baseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.FileStorage = (*FileStorage)(nil)
