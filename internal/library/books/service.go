package books

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/store"
)

const kind = "book"

// LentStatusName marks a book as on loan for listing purposes.
const LentStatusName = "LENT"

var fields = store.FieldTable{
	"title":           {Column: "title", Type: store.TypeString},
	"isbn":            {Column: "isbn", Type: store.TypeString},
	"classification":  {Column: "classification", Type: store.TypeString},
	"summary":         {Column: "summary", Type: store.TypeString},
	"editorial":       {Column: "editorial_id", Type: store.TypeID},
	"language":        {Column: "language", Type: store.TypeString},
	"edition":         {Column: "edition", Type: store.TypeString},
	"sample":          {Column: "sample", Type: store.TypeNumber},
	"location":        {Column: "location", Type: store.TypeString},
	"book_status":     {Column: "book_status_id", Type: store.TypeID},
	"genres":          {Column: "genres", Type: store.TypeString},
	"book_collection": {Column: "book_collection_id", Type: store.TypeID},
	"book_img":        {Column: "book_img", Type: store.TypeString},
}

type Service struct {
	store       *store.Store[model.Book]
	editorials  *store.Store[model.Editorial]
	statuses    *store.Store[model.BookStatus]
	collections *store.Store[model.BookCollection]
	authors     *store.Store[model.Author]
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		store:       store.New[model.Book](db, "Editorial", "BookStatus", "BookCollection", "Authors"),
		editorials:  store.New[model.Editorial](db),
		statuses:    store.New[model.BookStatus](db),
		collections: store.New[model.BookCollection](db),
		authors:     store.New[model.Author](db),
	}
}

// Store exposes the book store to collaborators (loans).
func (s *Service) Store() *store.Store[model.Book] { return s.store }

// classificationKey groups volumes of the same work: the first two
// dot-segments. Classifications with fewer than three segments are never
// considered duplicates.
func classificationKey(b model.Book) (string, bool) {
	parts := strings.Split(b.Classification, ".")
	if len(parts) < 3 {
		return "", false
	}
	return parts[0] + "." + parts[1], true
}

func isLent(b model.Book) bool {
	return b.BookStatus != nil && b.BookStatus.Name == LentStatusName
}

func (s *Service) pipeline(showDuplicates, showLents bool) store.Pipeline[model.Book] {
	return store.Pipeline[model.Book]{
		Kind:           kind,
		ShowLents:      showLents,
		ShowDuplicates: showDuplicates,
		IsLent:         isLent,
		DedupKey:       classificationKey,
	}
}

func (s *Service) classificationTaken(ctx context.Context, classification string) ([]model.Book, error) {
	return s.store.Filter(ctx, store.Cond{
		Query: "LOWER(classification) LIKE ?",
		Args:  []any{"%" + strings.ToLower(classification) + "%"},
	}, store.Query{Limit: 10})
}

func (s *Service) Create(ctx context.Context, b *model.Book, authorIDs []string) (*model.Book, error) {
	taken, err := s.classificationTaken(ctx, b.Classification)
	if err != nil {
		return nil, err
	}
	editorial, err := s.editorials.FindByID(ctx, b.EditorialID)
	if err != nil {
		return nil, err
	}
	if editorial == nil {
		return nil, apierr.NotFound("editorial")
	}
	status, err := s.statuses.FindByID(ctx, b.BookStatusID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, apierr.NotFound("book_status")
	}
	collection, err := s.collections.FindByID(ctx, b.BookCollectionID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, apierr.NotFound("book_collection")
	}
	if len(taken) != 0 {
		return nil, apierr.AlreadyExists(kind)
	}
	if len(authorIDs) > 0 {
		authors, err := s.authors.Filter(ctx, store.Cond{
			Query: "id IN ?",
			Args:  []any{authorIDs},
		}, store.Query{Limit: -1})
		if err != nil {
			return nil, err
		}
		b.Authors = authors
	}
	if err := s.store.Create(ctx, b); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, b.ID)
}

func (s *Service) GetAll(ctx context.Context, showDuplicates, showLents bool, page, limit, sortField string, desc bool) (*store.Envelope[model.Book], error) {
	books, err := s.store.FindAll(ctx, store.Query{
		Limit:      -1,
		SortColumn: fields.SortColumn(sortField),
		Desc:       desc,
	})
	if err != nil {
		return nil, err
	}
	return s.pipeline(showDuplicates, showLents).Run(books, page, limit)
}

func (s *Service) FilterBooks(ctx context.Context, showDuplicates, showLents bool, field, value, page, limit, sortField string, desc bool) (*store.Envelope[model.Book], error) {
	var cond store.Cond
	switch {
	case field == "any":
		// Accepted historically but never matched a real column.
		cond = store.Cond{Query: "1 = 0"}
	case field == "authors" && store.IsValidID(value):
		cond = store.Cond{
			Query: "id IN (SELECT book_id FROM book_authors WHERE author_id = ?)",
			Args:  []any{value},
		}
	case field == "authors":
		cond = store.Cond{Query: "1 = 0"}
	default:
		var err error
		cond, err = fields.Condition(kind, field, value)
		if err != nil {
			return nil, err
		}
	}
	books, err := s.store.Filter(ctx, cond, store.Query{
		Limit:      -1,
		SortColumn: fields.SortColumn(sortField),
		Desc:       desc,
	})
	if err != nil {
		return nil, err
	}
	return s.pipeline(showDuplicates, showLents).Run(books, page, limit)
}

// LatestReleases lists the newest books first, always collapsing duplicate
// classifications, on a single page.
func (s *Service) LatestReleases(ctx context.Context, limit string) (*store.Envelope[model.Book], error) {
	l, err := store.ParsePageSize(kind, limit)
	if err != nil {
		return nil, err
	}
	books, err := s.store.FindAll(ctx, store.Query{
		Limit:      l,
		SortColumn: "created_at",
		Desc:       true,
	})
	if err != nil {
		return nil, err
	}
	deduped := s.pipeline(false, true)
	env, err := deduped.Run(books, "1", "none")
	if err != nil {
		return nil, err
	}
	env.Pagination.PageSize = l
	if l > 0 {
		env.Pagination.TotalPages = (env.Pagination.TotalItems + l - 1) / l
	}
	return env, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (*model.Book, error) {
	b, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, apierr.NotFound(kind)
	}
	return b, nil
}

func (s *Service) Update(ctx context.Context, id string, updates map[string]any) (*model.Book, error) {
	if id == "" {
		return nil, apierr.MissingParameters(kind)
	}
	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apierr.NotFound(kind)
	}
	if classification, ok := updates["classification"].(string); ok && classification != "" {
		taken, err := s.classificationTaken(ctx, classification)
		if err != nil {
			return nil, err
		}
		if len(taken) != 0 && taken[0].ID != id {
			return nil, apierr.AlreadyExists(kind)
		}
	}
	return s.store.Update(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, id string) (*model.Book, error) {
	if id == "" {
		return nil, apierr.MissingParameters(kind)
	}
	deleted, err := s.store.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, apierr.NotFound(kind)
	}
	return deleted, nil
}
