package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-news-api/internal/models"
	"github.com/pribylovaa/go-news-api/internal/storage"
)

// TagResolver переводит имена тегов в условия фильтра и id тегов обратно в имена.
type TagResolver struct {
	storage    storage.TaxonomyStorage
	vocabulary string
}

// NewTagResolver создаёт резолвер для словаря vocabulary.
func NewTagResolver(st storage.TaxonomyStorage, vocabulary string) *TagResolver {
	return &TagResolver{storage: st, vocabulary: vocabulary}
}

// SplitNames разбивает значение параметра tags по пробельным символам.
// Повторы отбрасываются, порядок первого вхождения сохраняется.
func SplitNames(raw string) []string {
	fields := strings.Fields(raw)
	if len(fields) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(fields))
	names := fields[:0]
	for _, f := range fields {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		names = append(names, f)
	}

	return names
}

// ResolveNames ищет термины с точным (регистрозависимым) совпадением имени.
// Ни одного совпадения — nil без ошибки; иначе условие In(FieldTags, ids...).
// Несколько терминов с одним именем дают несколько id.
func (r *TagResolver) ResolveNames(ctx context.Context, names []string) (*models.FilterCondition, error) {
	const op = "service.tags.ResolveNames"

	if len(names) == 0 {
		return nil, nil
	}

	tags, err := r.storage.TermsByNames(ctx, r.vocabulary, names)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if len(tags) == 0 {
		return nil, nil
	}

	ids := make([]int64, 0, len(tags))
	seen := make(map[int64]struct{}, len(tags))
	for _, tag := range tags {
		if _, dup := seen[tag.ID]; dup {
			continue
		}
		seen[tag.ID] = struct{}{}
		ids = append(ids, tag.ID)
	}

	cond := models.InInt64(models.FieldTags, ids)

	return &cond, nil
}

// TagIndex — снимок словаря id -> имя.
type TagIndex map[int64]string

// Names разрешает ids в имена с сохранением порядка.
// Неизвестный id — ErrDataIntegrity.
func (idx TagIndex) Names(ids []int64) ([]string, error) {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		name, ok := idx[id]
		if !ok {
			return nil, fmt.Errorf("%w: unknown tag %d", ErrDataIntegrity, id)
		}
		names = append(names, name)
	}

	return names, nil
}

// Index загружает словарь целиком.
func (r *TagResolver) Index(ctx context.Context) (TagIndex, error) {
	const op = "service.tags.Index"

	tags, err := r.storage.Terms(ctx, r.vocabulary)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return newTagIndex(tags), nil
}

func newTagIndex(tags []models.Tag) TagIndex {
	idx := make(TagIndex, len(tags))
	for _, tag := range tags {
		idx[tag.ID] = tag.Name
	}

	return idx
}

// Reload перечитывает словарь в обход кэша.
// ok=false, если хранилище не кэширует словарь и перечитывать нечего.
func (r *TagResolver) Reload(ctx context.Context) (idx TagIndex, ok bool, err error) {
	const op = "service.tags.Reload"

	reloader, can := r.storage.(storage.TaxonomyReloader)
	if !can {
		return nil, false, nil
	}

	tags, err := reloader.ReloadTerms(ctx, r.vocabulary)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	return newTagIndex(tags), true, nil
}

// NamesForIDs — Index + TagIndex.Names для разового разрешения.
func (r *TagResolver) NamesForIDs(ctx context.Context, ids []int64) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	lookup, err := r.newLookup(ctx)
	if err != nil {
		return nil, err
	}

	return lookup.Names(ctx, ids)
}

// tagLookup — словарь на время одного запроса.
// Первый промах по id перечитывает словарь через Reload, дальше промах — ErrDataIntegrity.
type tagLookup struct {
	resolver *TagResolver
	idx      TagIndex
	reloaded bool
}

func (r *TagResolver) newLookup(ctx context.Context) (*tagLookup, error) {
	idx, err := r.Index(ctx)
	if err != nil {
		return nil, err
	}

	return &tagLookup{resolver: r, idx: idx}, nil
}

func (l *tagLookup) Names(ctx context.Context, ids []int64) ([]string, error) {
	names, err := l.idx.Names(ids)
	if err == nil || l.reloaded {
		return names, err
	}

	l.reloaded = true

	idx, ok, rerr := l.resolver.Reload(ctx)
	if rerr != nil {
		return nil, rerr
	}
	if !ok {
		return nil, err
	}

	l.idx = idx

	return l.idx.Names(ids)
}
