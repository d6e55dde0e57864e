package minio

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/pribylovaa/go-news-api/internal/config"
	"github.com/pribylovaa/go-news-api/internal/storage"
	"github.com/pribylovaa/go-news-api/mocks"
)

// Тесты пакета minio.
//
// Unit (фейковый StatObject + мок базового хранилища):
//   - разбор ключа объекта из URI;
//   - http(s) URI отдаётся как есть;
//   - NoSuchKey → storage.ErrNotFound, прочие ошибки прокидываются;
//   - ошибки базового хранилища прокидываются без изменений.
//
// Интеграционные (реальный MinIO через testcontainers-go):
//   - New: ошибка при отсутствии бакета;
//   - URIFor: существующий и отсутствующий объект.
//
// Запуск интеграционных:
//   GO_TEST_INTEGRATION=1 go test ./internal/storage/minio -v -race -count=1

type fakeStater struct {
	objects map[string]bool
	err     error
	calls   []string
}

func (f *fakeStater) StatObject(_ context.Context, bucket, object string, _ mclient.StatObjectOptions) (mclient.ObjectInfo, error) {
	f.calls = append(f.calls, bucket+"/"+object)
	if f.err != nil {
		return mclient.ObjectInfo{}, f.err
	}

	if !f.objects[object] {
		return mclient.ObjectInfo{}, mclient.ErrorResponse{Code: "NoSuchKey", StatusCode: 404}
	}

	return mclient.ObjectInfo{Key: object, Size: 1}, nil
}

func TestObjectKey(t *testing.T) {
	t.Parallel()

	require.Equal(t, "news/a.jpg", objectKey("public://news/a.jpg"))
	require.Equal(t, "news/a.jpg", objectKey("/news/a.jpg"))
	require.Equal(t, "news/a.jpg", objectKey("news/a.jpg"))
	require.Equal(t, "", objectKey("public://"))
}

func TestURIFor_ExistingObject(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := mocks.NewMockFileStorage(ctrl)
	base.EXPECT().URIFor(gomock.Any(), int64(100)).Return("public://news/a.jpg", nil)

	stater := &fakeStater{objects: map[string]bool{"news/a.jpg": true}}
	fs := newFileStorage(base, stater, "files", "http://cdn.local/")

	url, err := fs.URIFor(context.Background(), 100)
	require.NoError(t, err)
	require.Equal(t, "http://cdn.local/news/a.jpg", url)
	require.Equal(t, []string{"files/news/a.jpg"}, stater.calls)
}

func TestURIFor_AbsoluteURL_PassThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := mocks.NewMockFileStorage(ctrl)
	base.EXPECT().URIFor(gomock.Any(), int64(7)).Return("https://img.example.org/x.png", nil)

	stater := &fakeStater{}
	fs := newFileStorage(base, stater, "files", "http://cdn.local")

	url, err := fs.URIFor(context.Background(), 7)
	require.NoError(t, err)
	require.Equal(t, "https://img.example.org/x.png", url)
	require.Empty(t, stater.calls)
}

func TestURIFor_MissingObject_NotFound(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := mocks.NewMockFileStorage(ctrl)
	base.EXPECT().URIFor(gomock.Any(), int64(1)).Return("public://gone.jpg", nil)
	base.EXPECT().URIFor(gomock.Any(), int64(2)).Return("public://", nil)

	fs := newFileStorage(base, &fakeStater{}, "files", "http://cdn.local")

	_, err := fs.URIFor(context.Background(), 1)
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = fs.URIFor(context.Background(), 2)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestURIFor_Errors_PassThrough(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	baseErr := fmt.Errorf("storage.postgres.URIFor: file 3: %w", storage.ErrNotFound)
	s3Err := errors.New("connection refused")

	base := mocks.NewMockFileStorage(ctrl)
	base.EXPECT().URIFor(gomock.Any(), int64(3)).Return("", baseErr)
	base.EXPECT().URIFor(gomock.Any(), int64(4)).Return("public://a.jpg", nil)

	fs := newFileStorage(base, &fakeStater{err: s3Err}, "files", "http://cdn.local")

	_, err := fs.URIFor(context.Background(), 3)
	require.ErrorIs(t, err, storage.ErrNotFound)

	_, err = fs.URIFor(context.Background(), 4)
	require.ErrorIs(t, err, s3Err)
	require.NotErrorIs(t, err, storage.ErrNotFound)
}

// startMinio — поднимает MinIO и при createBucket создаёт бакет "files".
func startMinio(t *testing.T, createBucket bool) (config.S3Config, *mclient.Client, func()) {
	t.Helper()
	if os.Getenv("GO_TEST_INTEGRATION") == "" {
		t.Skip("integration tests are disabled (set GO_TEST_INTEGRATION=1)")
	}

	ctx := context.Background()
	const (
		image        = "docker.io/minio/minio:latest"
		rootUser     = "root"
		rootPassword = "rootpass"
		bucket       = "files"
	)
	req := tc.ContainerRequest{
		Image: image,
		Env: map[string]string{
			"MINIO_ROOT_USER":     rootUser,
			"MINIO_ROOT_PASSWORD": rootPassword,
		},
		Cmd:          []string{"server", "/data"},
		ExposedPorts: []string{"9000/tcp"},
		WaitingFor:   wait.ForListeningPort("9000/tcp").WithStartupTimeout(60 * time.Second),
	}
	c, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{ContainerRequest: req, Started: true})
	require.NoError(t, err)

	host, _ := c.Host(ctx)
	port, _ := c.MappedPort(ctx, "9000/tcp")

	admin, err := mclient.New(host+":"+port.Port(), &mclient.Options{
		Creds:  credentials.NewStaticV4(rootUser, rootPassword, ""),
		Secure: false,
	})
	require.NoError(t, err)

	if createBucket {
		require.NoError(t, admin.MakeBucket(ctx, bucket, mclient.MakeBucketOptions{Region: "us-east-1"}))
	}

	cfg := config.S3Config{
		Enabled:       true,
		Endpoint:      fmt.Sprintf("http://%s:%s", host, port.Port()),
		RootUser:      rootUser,
		RootPassword:  rootPassword,
		Bucket:        bucket,
		PublicBaseURL: "http://cdn.local",
	}

	return cfg, admin, func() { _ = c.Terminate(context.Background()) }
}

func TestIntegration_New_MissingBucket(t *testing.T) {
	cfg, _, cleanup := startMinio(t, false)
	defer cleanup()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	_, err := New(context.Background(), cfg, mocks.NewMockFileStorage(ctrl))
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not exist")
}

func TestIntegration_URIFor(t *testing.T) {
	cfg, admin, cleanup := startMinio(t, true)
	defer cleanup()

	ctx := context.Background()
	payload := []byte("jpeg-bytes")
	_, err := admin.PutObject(ctx, cfg.Bucket, "news/a.jpg", bytes.NewReader(payload), int64(len(payload)),
		mclient.PutObjectOptions{ContentType: "image/jpeg"})
	require.NoError(t, err)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := mocks.NewMockFileStorage(ctrl)
	base.EXPECT().URIFor(gomock.Any(), int64(1)).Return("public://news/a.jpg", nil)
	base.EXPECT().URIFor(gomock.Any(), int64(2)).Return("public://news/missing.jpg", nil)

	fs, err := New(ctx, cfg, base)
	require.NoError(t, err)

	url, err := fs.URIFor(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "http://cdn.local/news/a.jpg", url)

	_, err = fs.URIFor(ctx, 2)
	require.ErrorIs(t, err, storage.ErrNotFound)
}
