package loans

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/config"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/store"
)

const kind = "loan"

// Loan status names the lifecycle transitions resolve at runtime.
const (
	ActiveStatusName   = "ACTIVE"
	FinishedStatusName = "FINISHED"
)

// Book status names toggled when a copy goes out and comes back.
const (
	LentBookStatusName      = "LENT"
	AvailableBookStatusName = "AVAILABLE"
)

var fields = store.FieldTable{
	"user":          {Column: "user_id", Type: store.TypeID},
	"book":          {Column: "book_id", Type: store.TypeID},
	"loan_status":   {Column: "loan_status_id", Type: store.TypeID},
	"return_date":   {Column: "return_date", Type: store.TypeDate},
	"returned_date": {Column: "returned_date", Type: store.TypeDate},
	"renewals":      {Column: "renewals", Type: store.TypeNumber},
}

type Service struct {
	store        *store.Store[model.Loan]
	users        *store.Store[model.User]
	books        *store.Store[model.Book]
	statuses     *store.Store[model.LoanStatus]
	bookStatuses *store.Store[model.BookStatus]
	now          func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		store:        store.New[model.Loan](db, "User", "Book", "LoanStatus"),
		users:        store.New[model.User](db),
		books:        store.New[model.Book](db),
		statuses:     store.New[model.LoanStatus](db),
		bookStatuses: store.New[model.BookStatus](db),
		now:          time.Now,
	}
}

func (s *Service) loanStatusByName(ctx context.Context, name string) (*model.LoanStatus, error) {
	list, err := s.statuses.Filter(ctx, store.Cond{
		Query: "loan_status = ?",
		Args:  []any{name},
	}, store.Query{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

func (s *Service) bookStatusByName(ctx context.Context, name string) (*model.BookStatus, error) {
	list, err := s.bookStatuses.Filter(ctx, store.Cond{
		Query: "book_status = ?",
		Args:  []any{name},
	}, store.Query{Limit: 1})
	if err != nil {
		return nil, err
	}
	if len(list) == 0 {
		return nil, nil
	}
	return &list[0], nil
}

// markBook flips the book's status by name, skipping silently when the
// status record has not been seeded.
func (s *Service) markBook(ctx context.Context, bookID, statusName string) error {
	status, err := s.bookStatusByName(ctx, statusName)
	if err != nil || status == nil {
		return err
	}
	_, err = s.books.Update(ctx, bookID, map[string]any{"book_status_id": status.ID})
	return err
}

func (s *Service) activeLoanCount(ctx context.Context, userID string) (int64, error) {
	return s.store.CountWhere(ctx, store.Cond{
		Query: "user_id = ? AND returned_date IS NULL",
		Args:  []any{userID},
	})
}

func (s *Service) Create(ctx context.Context, l *model.Loan) (*model.Loan, error) {
	user, err := s.users.FindByID(ctx, l.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apierr.NotFound("user")
	}
	book, err := s.books.FindByID(ctx, l.BookID)
	if err != nil {
		return nil, err
	}
	if book == nil {
		return nil, apierr.NotFound("book")
	}
	status, err := s.statuses.FindByID(ctx, l.LoanStatusID)
	if err != nil {
		return nil, err
	}
	if status == nil {
		return nil, apierr.NotFound("loan_status")
	}

	start := s.now()
	if l.ReturnDate.Before(start) {
		return nil, apierr.FinishDateBeforeStartDate()
	}
	if l.ReturnDate.After(start.AddDate(0, 0, config.LoanMaxReturnDays)) {
		return nil, apierr.ReturnDateExceedsMaxAllowedDays(config.LoanMaxReturnDays)
	}

	conflict, err := s.FindConflicting(ctx, l.BookID, start, l.ReturnDate)
	if err != nil {
		return nil, err
	}
	if conflict != nil {
		return nil, apierr.NotAvailable("book")
	}
	active, err := s.activeLoanCount(ctx, l.UserID)
	if err != nil {
		return nil, err
	}
	if active >= config.LoanMaxActiveLoansPerUser {
		return nil, apierr.NotAvailable(kind)
	}

	if err := s.store.Create(ctx, l); err != nil {
		return nil, err
	}
	if err := s.markBook(ctx, l.BookID, LentBookStatusName); err != nil {
		return nil, err
	}
	return s.store.FindByID(ctx, l.ID)
}

// Renew pushes the due date out by another loan period. The renewal count
// is capped and finished loans cannot be renewed.
func (s *Service) Renew(ctx context.Context, id string) (*model.Loan, error) {
	if id == "" {
		return nil, apierr.MissingParameters(kind)
	}
	l, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, apierr.NotFound(kind)
	}
	if l.ReturnedDate != nil {
		return nil, apierr.LoanAlreadyFinished()
	}
	if l.Renewals >= config.LoanMaxRenewalsPerLoan {
		return nil, apierr.ExceededMaxRenewals(config.LoanMaxRenewalsPerLoan)
	}
	return s.store.Update(ctx, id, map[string]any{
		"renewals":    l.Renewals + 1,
		"return_date": l.ReturnDate.AddDate(0, 0, config.LoanMaxReturnDaysAfterRenewal),
	})
}

// Finish records the return: stamps returned_date, moves the loan to the
// FINISHED status and frees the book.
func (s *Service) Finish(ctx context.Context, id string) (*model.Loan, error) {
	if id == "" {
		return nil, apierr.MissingParameters(kind)
	}
	l, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, apierr.NotFound(kind)
	}
	if l.ReturnedDate != nil {
		return nil, apierr.LoanAlreadyFinished()
	}
	updates := map[string]any{"returned_date": s.now()}
	if finished, err := s.loanStatusByName(ctx, FinishedStatusName); err != nil {
		return nil, err
	} else if finished != nil {
		updates["loan_status_id"] = finished.ID
	}
	updated, err := s.store.Update(ctx, id, updates)
	if err != nil {
		return nil, err
	}
	if err := s.markBook(ctx, l.BookID, AvailableBookStatusName); err != nil {
		return nil, err
	}
	return updated, nil
}

func (s *Service) GetAll(ctx context.Context, page, limit string) (*store.Envelope[model.Loan], error) {
	p, err := store.ParsePage(kind, page)
	if err != nil {
		return nil, err
	}
	l, err := store.ParsePageSize(kind, limit)
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

func (s *Service) Filter(ctx context.Context, field, value, page, limit string) (*store.Envelope[model.Loan], error) {
	cond, err := fields.Condition(kind, field, value)
	if err != nil {
		return nil, err
	}
	p, err := store.ParsePage(kind, page)
	if err != nil {
		return nil, err
	}
	l, err := store.ParsePageSize(kind, limit)
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

func (s *Service) GetByID(ctx context.Context, id string) (*model.Loan, error) {
	l, err := s.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if l == nil {
		return nil, apierr.NotFound(kind)
	}
	return l, nil
}

func (s *Service) Update(ctx context.Context, id string, updates map[string]any) (*model.Loan, error) {
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
	return s.store.Update(ctx, id, updates)
}

func (s *Service) Delete(ctx context.Context, id string) (*model.Loan, error) {
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
