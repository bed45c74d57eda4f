package refdata

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/store"
)

// Def describes one reference-data entity: its kind tag, the natural-key
// field, and the fields callers may filter by.
type Def[T any] struct {
	Kind     string
	KeyField string
	Fields   store.FieldTable
	Preloads []string
	// Key reads the natural-key value from a record.
	Key func(*T) string
	// ID reads the primary key from a record.
	ID func(*T) string
}

// Service applies the shared reference-data rules (natural-key uniqueness,
// existence checks) for any lookup entity.
type Service[T any] struct {
	def   Def[T]
	store *store.Store[T]
}

func NewService[T any](db *gorm.DB, def Def[T]) *Service[T] {
	return &Service[T]{def: def, store: store.New[T](db, def.Preloads...)}
}

func (s *Service[T]) Store() *store.Store[T] { return s.store }

func (s *Service[T]) keyColumn() string {
	return s.def.Fields[s.def.KeyField].Column
}

func (s *Service[T]) Create(ctx context.Context, rec *T) (*T, error) {
	key := s.def.Key(rec)
	if key == "" {
		return nil, apierr.MissingParameters(s.def.Kind)
	}
	existing, err := s.store.CountWhere(ctx, store.Cond{
		Query: "LOWER(" + s.keyColumn() + ") LIKE ?",
		Args:  []any{"%" + strings.ToLower(key) + "%"},
	})
	if err != nil {
		return nil, err
	}
	if existing > 0 {
		return nil, apierr.AlreadyExists(s.def.Kind)
	}
	if err := s.store.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func (s *Service[T]) GetAll(ctx context.Context, page, limit string) (*store.Envelope[T], error) {
	p, err := store.ParsePage(s.def.Kind, page)
	if err != nil {
		return nil, err
	}
	l, err := store.ParsePageSize(s.def.Kind, limit)
	if err != nil {
		return nil, err
	}
	list, err := s.store.FindAll(ctx, store.Query{Skip: (p - 1) * l, Limit: l})
	if err != nil {
		return nil, err
	}
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	return store.NewEnvelope(list, int(total), p, l), nil
}

func (s *Service[T]) Filter(ctx context.Context, field, value, page, limit string) (*store.Envelope[T], error) {
	cond, err := s.def.Fields.Condition(s.def.Kind, field, value)
	if err != nil {
		return nil, err
	}
	p, err := store.ParsePage(s.def.Kind, page)
	if err != nil {
		return nil, err
	}
	l, err := store.ParsePageSize(s.def.Kind, limit)
	if err != nil {
		return nil, err
	}
	list, err := s.store.Filter(ctx, cond, store.Query{Skip: (p - 1) * l, Limit: l})
	if err != nil {
		return nil, err
	}
	total, err := s.store.Count(ctx)
	if err != nil {
		return nil, err
	}
	return store.NewEnvelope(list, int(total), p, l), nil
}

func (s *Service[T]) GetByID(ctx context.Context, id string) (*T, error) {
	rec, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, apierr.NotFound(s.def.Kind)
	}
	return rec, nil
}

// FindByKey resolves a record by exact natural-key value, e.g. the plan
// status named "ACTIVE". Returns nil when absent.
func (s *Service[T]) FindByKey(ctx context.Context, key string) (*T, error) {
	list, err := s.store.Filter(ctx, store.Cond{
		Query: s.keyColumn() + " = ?",
		Args:  []any{key},
	}, store.Query{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (s *Service[T]) Update(ctx context.Context, id string, updates map[string]any) (*T, error) {
	if id == "" {
		return nil, apierr.MissingParameters(s.def.Kind)
	}
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apierr.NotFound(s.def.Kind)
	}
	if key, ok := updates[s.keyColumn()].(string); ok && key != "" {
		matches, err := s.store.Filter(ctx, store.Cond{
			Query: "LOWER(" + s.keyColumn() + ") LIKE ?",
			Args:  []any{"%" + strings.ToLower(key) + "%"},
		}, store.Query{Limit: 1})
		if err != nil {
			return nil, err
		}
		if len(matches) != 0 && s.def.ID(&matches[0]) != id {
			return nil, apierr.AlreadyExists(s.def.Kind)
		}
	}
	return s.store.Update(ctx, id, updates)
}

func (s *Service[T]) Delete(ctx context.Context, id string) (*T, error) {
	if id == "" {
		return nil, apierr.MissingParameters(s.def.Kind)
	}
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apierr.NotFound(s.def.Kind)
	}
	return deleted, nil
}
