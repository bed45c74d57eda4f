package loans

import (
	"context"
	"time"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/store"
)

// Conflicts reports whether an existing loan blocks a request spanning
// [start, finish]. A loan conflicts when it was created no later than the
// requested start and is not due back (nominally or actually) before the
// requested finish. This is a conservative approximation of interval
// overlap, kept as deployed clients expect it.
func Conflicts(l model.Loan, start, finish time.Time) bool {
	if l.CreatedAt.After(start) {
		return false
	}
	if !l.ReturnDate.Before(finish) {
		return true
	}
	return l.ReturnedDate != nil && !l.ReturnedDate.Before(finish)
}

// FindConflicting returns the first loan for the book that conflicts with
// [start, finish], or nil when the book is available. The check and the
// subsequent create are not atomic; concurrent requests can both pass.
func (s *Service) FindConflicting(ctx context.Context, bookID string, start, finish time.Time) (*model.Loan, error) {
	candidates, err := s.store.Filter(ctx, store.Cond{
		Query: "book_id = ?",
		Args:  []any{bookID},
	}, store.Query{Limit: -1})
	if err != nil {
		return nil, err
	}
	for i := range candidates {
		if Conflicts(candidates[i], start, finish) {
			return &candidates[i], nil
		}
	}
	return nil, nil
}
