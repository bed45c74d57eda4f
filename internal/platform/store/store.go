package store

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// Store is the uniform data-access layer shared by every entity type.
// Reads resolve the configured reference preloads so callers receive
// materialized related records, not bare foreign keys.
type Store[T any] struct {
	db       *gorm.DB
	preloads []string
}

func New[T any](db *gorm.DB, preloads ...string) *Store[T] {
	return &Store[T]{db: db, preloads: preloads}
}

// Cond is a prepared where-clause fragment produced by a FieldTable.
type Cond struct {
	Query string
	Args  []any
}

// Query carries paging and ordering for list reads. Negative Skip/Limit mean
// unbounded; SortColumn defaults to created_at ascending.
type Query struct {
	Skip       int
	Limit      int
	SortColumn string
	Desc       bool
}

func (s *Store[T]) reader(ctx context.Context) *gorm.DB {
	q := s.db.WithContext(ctx).Model(new(T))
	for _, p := range s.preloads {
		q = q.Preload(p)
	}
	return q
}

func (s *Store[T]) apply(q *gorm.DB, query Query) *gorm.DB {
	col := query.SortColumn
	if col == "" {
		col = "created_at"
	}
	dir := "ASC"
	if query.Desc {
		dir = "DESC"
	}
	q = q.Order(col + " " + dir)
	if query.Skip > 0 {
		q = q.Offset(query.Skip)
	}
	if query.Limit >= 0 {
		q = q.Limit(query.Limit)
	}
	return q
}

func (s *Store[T]) Create(ctx context.Context, rec *T) error {
	return s.db.WithContext(ctx).Create(rec).Error
}

// FindByID returns nil (no error) when the record does not exist.
func (s *Store[T]) FindByID(ctx context.Context, id string) (*T, error) {
	var out T
	err := s.reader(ctx).Where("id = ?", id).First(&out).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Store[T]) FindAll(ctx context.Context, query Query) ([]T, error) {
	var out []T
	if err := s.apply(s.reader(ctx), query).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store[T]) Filter(ctx context.Context, cond Cond, query Query) ([]T, error) {
	var out []T
	q := s.reader(ctx)
	if cond.Query != "" {
		q = q.Where(cond.Query, cond.Args...)
	}
	if err := s.apply(q, query).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Store[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(new(T)).Count(&n).Error
	return n, err
}

func (s *Store[T]) CountWhere(ctx context.Context, cond Cond) (int64, error) {
	var n int64
	q := s.db.WithContext(ctx).Model(new(T))
	if cond.Query != "" {
		q = q.Where(cond.Query, cond.Args...)
	}
	err := q.Count(&n).Error
	return n, err
}

// Update applies a partial column update and returns the refreshed record,
// or nil when no record with the id exists.
func (s *Store[T]) Update(ctx context.Context, id string, updates map[string]any) (*T, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if len(updates) > 0 {
		if err := s.db.WithContext(ctx).Model(new(T)).Where("id = ?", id).Updates(updates).Error; err != nil {
			return nil, err
		}
	}
	return s.FindByID(ctx, id)
}

// Save writes the full record including associations. Used where a partial
// column update cannot express the change (e.g. replacing an author set).
func (s *Store[T]) Save(ctx context.Context, rec *T) error {
	return s.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(rec).Error
}

// Delete removes the record and returns it, or nil when it does not exist.
func (s *Store[T]) Delete(ctx context.Context, id string) (*T, error) {
	existing, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(new(T)).Error; err != nil {
		return nil, err
	}
	return existing, nil
}
