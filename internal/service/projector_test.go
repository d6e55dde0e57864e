package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-news-api/internal/metrics"
	"github.com/pribylovaa/go-news-api/internal/models"
	"github.com/pribylovaa/go-news-api/internal/storage"
	"github.com/pribylovaa/go-news-api/mocks"
)

// Unit-тесты Projector (projector.go).
//
// Покрываем:
//  - round-trip: N тегов и M изображений → N имён и M URI в исходном порядке;
//  - пустые ссылки → [] (не null) в JSON;
//  - словарь тегов грузится один раз на вызов;
//  - fail-fast: неизвестный тег или файл → ErrDataIntegrity + метрика;
//  - прочие ошибки хранилища файлов не выдаются за нарушение целостности;
//  - пустой вход → пустой список без обращений к хранилищам.

var testVocabulary = []models.Tag{
	{ID: 5, Name: "Sports"},
	{ID: 9, Name: "Tech"},
	{ID: 11, Name: "Politics"},
}

func newProjectorForTest(ctrl *gomock.Controller) (*Projector, *mocks.MockTaxonomyStorage, *mocks.MockFileStorage) {
	tax := mocks.NewMockTaxonomyStorage(ctrl)
	files := mocks.NewMockFileStorage(ctrl)

	return NewProjector(NewTagResolver(tax, "tags"), files), tax, files
}

func TestProject_RoundTrip(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, tax, files := newProjectorForTest(ctrl)

	tax.EXPECT().Terms(gomock.Any(), "tags").Return(testVocabulary, nil).Times(1)
	gomock.InOrder(
		files.EXPECT().URIFor(gomock.Any(), int64(101)).Return("http://cdn.local/b.jpg", nil),
		files.EXPECT().URIFor(gomock.Any(), int64(100)).Return("http://cdn.local/a.jpg", nil),
	)

	published := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	items := []models.ContentItem{
		{
			ID: 7, Kind: "news", Title: "T7", Body: "B7", BodySummary: "S7",
			TagRefs: []int64{11, 5, 9}, ImageRefs: []int64{101, 100},
			ViewCount: 3, PublishDate: &published,
		},
		{ID: 2, Kind: "news", Title: "T2"},
	}

	list, err := p.Project(context.Background(), items)
	require.NoError(t, err)
	require.Equal(t, []int64{7, 2}, list.IDs())

	first := list[0].News
	require.Equal(t, "T7", first.Title)
	require.Equal(t, "B7", first.Body)
	require.Equal(t, "S7", first.Summary)
	require.Equal(t, []string{"Politics", "Sports", "Tech"}, first.Tags)
	require.Equal(t, []string{"http://cdn.local/b.jpg", "http://cdn.local/a.jpg"}, first.Image)
	require.Equal(t, int64(3), first.ViewCount)
	require.Equal(t, &published, first.PublishDate)

	second := list[1].News
	require.NotNil(t, second.Tags)
	require.NotNil(t, second.Image)
	require.Empty(t, second.Tags)
	require.Empty(t, second.Image)
	require.Nil(t, second.PublishDate)

	raw, err := json.Marshal(list)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"7": {"title":"T7","body":"B7","summary":"S7","tags":["Politics","Sports","Tech"],
		      "image":["http://cdn.local/b.jpg","http://cdn.local/a.jpg"],"view_count":3,
		      "publish_date":"2024-03-01T10:00:00Z"},
		"2": {"title":"T2","body":"","summary":"","tags":[],"image":[],"view_count":0,"publish_date":null}
	}`, string(raw))
}

func TestProject_Empty_NoStorageCalls(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, _, _ := newProjectorForTest(ctrl)

	list, err := p.Project(context.Background(), nil)
	require.NoError(t, err)
	require.NotNil(t, list)
	require.Empty(t, list)
}

func TestProject_UnknownTag_FailFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, tax, _ := newProjectorForTest(ctrl)
	tax.EXPECT().Terms(gomock.Any(), "tags").Return(testVocabulary, nil)

	before := testutil.ToFloat64(metrics.IntegrityFailuresTotal.WithLabelValues("tag"))

	_, err := p.Project(context.Background(), []models.ContentItem{
		{ID: 1, TagRefs: []int64{5}},
		{ID: 2, TagRefs: []int64{404}},
		{ID: 3, TagRefs: []int64{9}},
	})
	require.ErrorIs(t, err, ErrDataIntegrity)
	require.Contains(t, err.Error(), "content 2")
	require.Equal(t, before+1, testutil.ToFloat64(metrics.IntegrityFailuresTotal.WithLabelValues("tag")))
}

func TestProject_MissingImage_FailFast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p, tax, files := newProjectorForTest(ctrl)
	tax.EXPECT().Terms(gomock.Any(), "tags").Return(testVocabulary, nil)
	files.EXPECT().URIFor(gomock.Any(), int64(100)).
		Return("", fmt.Errorf("storage.postgres.URIFor: file 100: %w", storage.ErrNotFound))

	before := testutil.ToFloat64(metrics.IntegrityFailuresTotal.WithLabelValues("image"))

	_, err := p.Project(context.Background(), []models.ContentItem{{ID: 1, ImageRefs: []int64{100, 101}}})
	require.ErrorIs(t, err, ErrDataIntegrity)
	require.Equal(t, before+1, testutil.ToFloat64(metrics.IntegrityFailuresTotal.WithLabelValues("image")))
}

func TestProject_FileStorageError_NotIntegrity(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("s3 timeout")

	p, tax, files := newProjectorForTest(ctrl)
	tax.EXPECT().Terms(gomock.Any(), "tags").Return(testVocabulary, nil)
	files.EXPECT().URIFor(gomock.Any(), int64(100)).Return("", boom)

	_, err := p.Project(context.Background(), []models.ContentItem{{ID: 1, ImageRefs: []int64{100}}})
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, ErrDataIntegrity)
}

func TestProject_TaxonomyError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("db down")

	p, tax, _ := newProjectorForTest(ctrl)
	tax.EXPECT().Terms(gomock.Any(), "tags").Return(nil, boom)

	_, err := p.Project(context.Background(), []models.ContentItem{{ID: 1}})
	require.ErrorIs(t, err, boom)
}
