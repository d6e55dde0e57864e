package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-news-api/internal/models"
	"github.com/pribylovaa/go-news-api/mocks"
)

// Unit-тесты кэша словаря тегов поверх miniredis.
//
// Покрываем:
//   - промах → загрузка из base и запись в Redis с TTL;
//   - попадание → base не вызывается, порядок по id;
//   - TermsByNames фильтрует словарь по точному имени (регистр важен);
//   - имя, которого нет в кэше, ищется в base; новый термин сбрасывает ключ;
//   - ReloadTerms перечитывает словарь из base и перезаписывает кэш;
//   - истечение TTL и удаление ключа приводят к повторной загрузке;
//   - недоступный Redis не ломает запрос;
//   - ошибки base прокидываются.

var vocabulary = []models.Tag{
	{ID: 5, Name: "Sports"},
	{ID: 9, Name: "Tech"},
	{ID: 11, Name: "Politics"},
}

func newTestCache(t *testing.T, base *mocks.MockTaxonomyStorage) (*TaxonomyCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)

	c, err := New(context.Background(), "redis://"+mr.Addr(), "test:", time.Minute, base)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c, mr
}

func TestNew_BadURL(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), "://bad", "", time.Minute, nil)
	require.Error(t, err)
}

func TestNew_DefaultPrefix(t *testing.T) {
	t.Parallel()

	mr := miniredis.RunT(t)

	c, err := New(context.Background(), "redis://"+mr.Addr(), "", time.Minute, nil)
	require.NoError(t, err)
	defer c.Close()

	require.Equal(t, "news-api:terms:tags", c.key("tags"))
}

func TestTerms_MissThenHit(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := mocks.NewMockTaxonomyStorage(ctrl)
	base.EXPECT().Terms(gomock.Any(), "tags").Return(vocabulary, nil).Times(1)

	c, mr := newTestCache(t, base)
	ctx := context.Background()

	got, err := c.Terms(ctx, "tags")
	require.NoError(t, err)
	require.Equal(t, vocabulary, got)

	require.True(t, mr.Exists("test:terms:tags"))
	require.Equal(t, "Tech", mr.HGet("test:terms:tags", "9"))
	require.Equal(t, time.Minute, mr.TTL("test:terms:tags"))

	got, err = c.Terms(ctx, "tags")
	require.NoError(t, err)
	require.Equal(t, []models.Tag{{ID: 5, Name: "Sports"}, {ID: 9, Name: "Tech"}, {ID: 11, Name: "Politics"}}, got)
}

func TestTermsByNames_FromCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := mocks.NewMockTaxonomyStorage(ctrl)
	base.EXPECT().Terms(gomock.Any(), "tags").Return(vocabulary, nil).Times(1)
	base.EXPECT().TermsByNames(gomock.Any(), "tags", []string{"sports", "Unknown"}).Return(nil, nil).Times(1)

	c, _ := newTestCache(t, base)
	ctx := context.Background()

	got, err := c.TermsByNames(ctx, "tags", []string{"Tech", "Sports"})
	require.NoError(t, err)
	require.Equal(t, []models.Tag{{ID: 5, Name: "Sports"}, {ID: 9, Name: "Tech"}}, got)

	got, err = c.TermsByNames(ctx, "tags", []string{"sports", "Unknown"})
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = c.TermsByNames(ctx, "tags", nil)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestTerms_ExpiryAndEviction_Reload(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := mocks.NewMockTaxonomyStorage(ctrl)
	base.EXPECT().Terms(gomock.Any(), "tags").Return(vocabulary, nil).Times(3)

	c, mr := newTestCache(t, base)
	ctx := context.Background()

	_, err := c.Terms(ctx, "tags")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)
	require.False(t, mr.Exists("test:terms:tags"))

	_, err = c.Terms(ctx, "tags")
	require.NoError(t, err)

	mr.Del("test:terms:tags")

	_, err = c.Terms(ctx, "tags")
	require.NoError(t, err)
}

func TestTerms_EmptyVocabulary_NotCached(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := mocks.NewMockTaxonomyStorage(ctrl)
	base.EXPECT().Terms(gomock.Any(), "empty").Return(nil, nil).Times(2)

	c, mr := newTestCache(t, base)

	for i := 0; i < 2; i++ {
		got, err := c.Terms(context.Background(), "empty")
		require.NoError(t, err)
		require.Empty(t, got)
	}
	require.False(t, mr.Exists("test:terms:empty"))
}

func TestTerms_RedisDown_FallsBackToBase(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := mocks.NewMockTaxonomyStorage(ctrl)
	base.EXPECT().Terms(gomock.Any(), "tags").Return(vocabulary, nil).Times(1)

	c, mr := newTestCache(t, base)
	mr.Close()

	got, err := c.Terms(context.Background(), "tags")
	require.NoError(t, err)
	require.Equal(t, vocabulary, got)
}

func TestTerms_CorruptedEntry_FallsBackToBase(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := mocks.NewMockTaxonomyStorage(ctrl)
	base.EXPECT().Terms(gomock.Any(), "tags").Return(vocabulary, nil).Times(1)

	c, mr := newTestCache(t, base)
	mr.HSet("test:terms:tags", "not-a-number", "Broken")

	got, err := c.Terms(context.Background(), "tags")
	require.NoError(t, err)
	require.Equal(t, vocabulary, got)
	require.Empty(t, mr.HGet("test:terms:tags", "not-a-number"), "entry is rewritten")
	require.Equal(t, "Sports", mr.HGet("test:terms:tags", "5"))
}

func TestTerms_BaseError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("db down")
	base := mocks.NewMockTaxonomyStorage(ctrl)
	base.EXPECT().Terms(gomock.Any(), "tags").Return(nil, boom)

	c, _ := newTestCache(t, base)

	_, err := c.TermsByNames(context.Background(), "tags", []string{"Sports"})
	require.ErrorIs(t, err, boom)
}

func TestTermsByNames_TermAddedAfterCaching(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withAI := append(append([]models.Tag{}, vocabulary...), models.Tag{ID: 20, Name: "AI"})

	base := mocks.NewMockTaxonomyStorage(ctrl)
	gomock.InOrder(
		base.EXPECT().Terms(gomock.Any(), "tags").Return(vocabulary, nil),
		base.EXPECT().TermsByNames(gomock.Any(), "tags", []string{"AI", "Tech"}).
			Return([]models.Tag{{ID: 9, Name: "Tech"}, {ID: 20, Name: "AI"}}, nil),
		base.EXPECT().Terms(gomock.Any(), "tags").Return(withAI, nil),
	)

	c, mr := newTestCache(t, base)
	ctx := context.Background()

	_, err := c.Terms(ctx, "tags")
	require.NoError(t, err)
	require.True(t, mr.Exists("test:terms:tags"))

	got, err := c.TermsByNames(ctx, "tags", []string{"AI", "Tech"})
	require.NoError(t, err)
	require.Equal(t, []models.Tag{{ID: 9, Name: "Tech"}, {ID: 20, Name: "AI"}}, got)
	require.False(t, mr.Exists("test:terms:tags"), "stale vocabulary is evicted")

	all, err := c.Terms(ctx, "tags")
	require.NoError(t, err)
	require.Equal(t, withAI, all)
	require.Equal(t, "AI", mr.HGet("test:terms:tags", "20"))
}

func TestTermsByNames_UnknownName_KeepsCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := mocks.NewMockTaxonomyStorage(ctrl)
	base.EXPECT().Terms(gomock.Any(), "tags").Return(vocabulary, nil).Times(1)
	base.EXPECT().TermsByNames(gomock.Any(), "tags", []string{"Sports", "Nope"}).
		Return([]models.Tag{{ID: 5, Name: "Sports"}}, nil)

	c, mr := newTestCache(t, base)

	got, err := c.TermsByNames(context.Background(), "tags", []string{"Sports", "Nope"})
	require.NoError(t, err)
	require.Equal(t, []models.Tag{{ID: 5, Name: "Sports"}}, got)
	require.True(t, mr.Exists("test:terms:tags"))
}

func TestTermsByNames_FallbackError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("db down")
	base := mocks.NewMockTaxonomyStorage(ctrl)
	base.EXPECT().Terms(gomock.Any(), "tags").Return(vocabulary, nil)
	base.EXPECT().TermsByNames(gomock.Any(), "tags", []string{"AI"}).Return(nil, boom)

	c, _ := newTestCache(t, base)

	_, err := c.TermsByNames(context.Background(), "tags", []string{"AI"})
	require.ErrorIs(t, err, boom)
}

func TestReloadTerms_RewritesCache(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	withAI := append(append([]models.Tag{}, vocabulary...), models.Tag{ID: 20, Name: "AI"})

	base := mocks.NewMockTaxonomyStorage(ctrl)
	gomock.InOrder(
		base.EXPECT().Terms(gomock.Any(), "tags").Return(vocabulary, nil),
		base.EXPECT().Terms(gomock.Any(), "tags").Return(withAI, nil),
	)

	c, mr := newTestCache(t, base)
	ctx := context.Background()

	_, err := c.Terms(ctx, "tags")
	require.NoError(t, err)
	require.Empty(t, mr.HGet("test:terms:tags", "20"))

	got, err := c.ReloadTerms(ctx, "tags")
	require.NoError(t, err)
	require.Equal(t, withAI, got)
	require.Equal(t, "AI", mr.HGet("test:terms:tags", "20"))
	require.Equal(t, time.Minute, mr.TTL("test:terms:tags"))

	cached, err := c.Terms(ctx, "tags")
	require.NoError(t, err)
	require.Equal(t, withAI, cached)
}

func TestReloadTerms_EmptyVocabulary_Evicts(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	base := mocks.NewMockTaxonomyStorage(ctrl)
	gomock.InOrder(
		base.EXPECT().Terms(gomock.Any(), "tags").Return(vocabulary, nil),
		base.EXPECT().Terms(gomock.Any(), "tags").Return(nil, nil),
	)

	c, mr := newTestCache(t, base)
	ctx := context.Background()

	_, err := c.Terms(ctx, "tags")
	require.NoError(t, err)

	got, err := c.ReloadTerms(ctx, "tags")
	require.NoError(t, err)
	require.Empty(t, got)
	require.False(t, mr.Exists("test:terms:tags"))
}
