// cache — кэш словаря тегов в Redis поверх storage.TaxonomyStorage.
package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/pribylovaa/go-news-api/internal/models"
	"github.com/pribylovaa/go-news-api/internal/storage"
	"github.com/pribylovaa/go-news-api/pkg/log"
)

// DefaultPrefix используется, если prefix пустой.
const DefaultPrefix = "news-api:"

// TaxonomyCache — декоратор storage.TaxonomyStorage.
//
// Словарь целиком хранится как Redis Hash "<prefix>terms:<vocabulary>"
// с полями id -> name и TTL. TermsByNames обслуживается из закэшированного
// словаря, пока в нём есть все запрошенные имена; иначе запрос уходит в base.
// Ошибки Redis не ломают запрос: пишется Warn и используется base.
type TaxonomyCache struct {
	rdb    *redis.Client
	base   storage.TaxonomyStorage
	prefix string
	ttl    time.Duration
}

// New создаёт клиент Redis из URL (например, redis://:pass@host:6379/0)
// и выполняет fail-fast Ping.
func New(ctx context.Context, redisURL, prefix string, ttl time.Duration, base storage.TaxonomyStorage) (*TaxonomyCache, error) {
	const op = "cache.New"

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &TaxonomyCache{rdb: rdb, base: base, prefix: prefix, ttl: ttl}, nil
}

func (c *TaxonomyCache) key(vocabulary string) string { return c.prefix + "terms:" + vocabulary }

// Terms возвращает словарь из кэша, при промахе загружает его из base и кэширует.
func (c *TaxonomyCache) Terms(ctx context.Context, vocabulary string) ([]models.Tag, error) {
	const op = "cache.Terms"

	tags, ok, err := c.get(ctx, vocabulary)
	if err != nil {
		log.From(ctx).Warn("tag_cache_read_failed",
			slog.String("op", op),
			slog.String("vocabulary", vocabulary),
			slog.String("err", err.Error()),
		)
	}

	if ok {
		return tags, nil
	}

	tags, err = c.base.Terms(ctx, vocabulary)
	if err != nil {
		return nil, err
	}

	if err := c.set(ctx, vocabulary, tags); err != nil {
		log.From(ctx).Warn("tag_cache_write_failed",
			slog.String("op", op),
			slog.String("vocabulary", vocabulary),
			slog.String("err", err.Error()),
		)
	}

	return tags, nil
}

// TermsByNames фильтрует закэшированный словарь по точному совпадению имени.
// Если хотя бы одного имени в кэше нет, ответ берётся из base: термин мог
// появиться после заполнения кэша. Найденный в base новый термин сбрасывает ключ.
func (c *TaxonomyCache) TermsByNames(ctx context.Context, vocabulary string, names []string) ([]models.Tag, error) {
	const op = "cache.TermsByNames"

	if len(names) == 0 {
		return nil, nil
	}

	all, err := c.Terms(ctx, vocabulary)
	if err != nil {
		return nil, err
	}

	want := make(map[string]struct{}, len(names))
	for _, n := range names {
		want[n] = struct{}{}
	}

	var out []models.Tag
	known := make(map[int64]struct{}, len(all))
	for _, tag := range all {
		known[tag.ID] = struct{}{}
		if _, ok := want[tag.Name]; ok {
			out = append(out, tag)
			delete(want, tag.Name)
		}
	}

	if len(want) == 0 {
		return out, nil
	}

	fresh, err := c.base.TermsByNames(ctx, vocabulary, names)
	if err != nil {
		return nil, err
	}

	for _, tag := range fresh {
		if _, ok := known[tag.ID]; !ok {
			c.evict(ctx, op, vocabulary)
			break
		}
	}

	return fresh, nil
}

// ReloadTerms читает словарь из base и перезаписывает кэш.
func (c *TaxonomyCache) ReloadTerms(ctx context.Context, vocabulary string) ([]models.Tag, error) {
	const op = "cache.ReloadTerms"

	tags, err := c.base.Terms(ctx, vocabulary)
	if err != nil {
		return nil, err
	}

	if len(tags) == 0 {
		c.evict(ctx, op, vocabulary)
		return tags, nil
	}

	if err := c.set(ctx, vocabulary, tags); err != nil {
		log.From(ctx).Warn("tag_cache_write_failed",
			slog.String("op", op),
			slog.String("vocabulary", vocabulary),
			slog.String("err", err.Error()),
		)
	}

	return tags, nil
}

func (c *TaxonomyCache) evict(ctx context.Context, op, vocabulary string) {
	if err := c.rdb.Del(ctx, c.key(vocabulary)).Err(); err != nil {
		log.From(ctx).Warn("tag_cache_evict_failed",
			slog.String("op", op),
			slog.String("vocabulary", vocabulary),
			slog.String("err", err.Error()),
		)
	}
}

// Close закрывает клиент Redis.
func (c *TaxonomyCache) Close() error { return c.rdb.Close() }

// get: ok=false — промах (ключа нет или он пуст).
func (c *TaxonomyCache) get(ctx context.Context, vocabulary string) ([]models.Tag, bool, error) {
	m, err := c.rdb.HGetAll(ctx, c.key(vocabulary)).Result()
	if err != nil {
		return nil, false, err
	}

	if len(m) == 0 {
		return nil, false, nil
	}

	tags := make([]models.Tag, 0, len(m))
	for field, name := range m {
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, false, fmt.Errorf("bad term id %q: %w", field, err)
		}
		tags = append(tags, models.Tag{ID: id, Name: name})
	}

	sort.Slice(tags, func(i, j int) bool { return tags[i].ID < tags[j].ID })

	return tags, true, nil
}

// set: пустой словарь не кэшируется (HSET требует хотя бы одно поле).
func (c *TaxonomyCache) set(ctx context.Context, vocabulary string, tags []models.Tag) error {
	if len(tags) == 0 {
		return nil
	}

	kv := make(map[string]string, len(tags))
	for _, tag := range tags {
		kv[strconv.FormatInt(tag.ID, 10)] = tag.Name
	}

	pipe := c.rdb.TxPipeline()
	pipe.Del(ctx, c.key(vocabulary))
	pipe.HSet(ctx, c.key(vocabulary), kv)
	pipe.Expire(ctx, c.key(vocabulary), c.ttl)

	_, err := pipe.Exec(ctx)
	return err
}

// Проверка на соответствие интерфейсам хранилища таксономии.
var (
	_ storage.TaxonomyStorage  = (*TaxonomyCache)(nil)
	_ storage.TaxonomyReloader = (*TaxonomyCache)(nil)
)
