package loans

import (
	"context"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&model.User{},
		&model.Book{},
		&model.BookStatus{},
		&model.LoanStatus{},
		&model.Loan{},
	))
	return db
}

type loanFixture struct {
	svc    *Service
	reader model.User
	other  model.User
	book   model.Book
	spare  model.Book
	status model.LoanStatus
	lent   model.BookStatus
}

func newLoanFixture(t *testing.T) (*gorm.DB, *loanFixture) {
	t.Helper()
	db := newTestDB(t)
	f := &loanFixture{
		svc:    NewService(db),
		reader: model.User{Username: "reader", Email: "reader@example.com"},
		other:  model.User{Username: "browser", Email: "browser@example.com"},
		book:   model.Book{Title: "Dune", Classification: "813.54.1"},
		spare:  model.Book{Title: "Foundation", Classification: "813.54.2"},
		status: model.LoanStatus{Name: ActiveStatusName},
		lent:   model.BookStatus{Name: LentBookStatusName},
	}
	for _, rec := range []any{&f.reader, &f.other, &f.book, &f.spare, &f.status, &f.lent} {
		require.NoError(t, db.Create(rec).Error)
	}
	return db, f
}

func Test_Service_Create_BookWithActiveLoanIsNotAvailable(t *testing.T) {
	db, f := newLoanFixture(t)
	ctx := context.Background()

	first, err := f.svc.Create(ctx, &model.Loan{
		UserID:       f.reader.ID,
		BookID:       f.book.ID,
		LoanStatusID: f.status.ID,
		ReturnDate:   time.Now().AddDate(0, 0, 14),
	})
	require.NoError(t, err)
	require.NotNil(t, first)

	var lentBook model.Book
	require.NoError(t, db.First(&lentBook, "id = ?", f.book.ID).Error)
	assert.Equal(t, f.lent.ID, lentBook.BookStatusID)

	_, err = f.svc.Create(ctx, &model.Loan{
		UserID:       f.other.ID,
		BookID:       f.book.ID,
		LoanStatusID: f.status.ID,
		ReturnDate:   time.Now().AddDate(0, 0, 7),
	})
	require.Error(t, err)

	var api *apierr.Error
	require.ErrorAs(t, err, &api)
	assert.Equal(t, apierr.CodeNotAvailable, api.Code)
	assert.Equal(t, "book", api.Kind)
}

func Test_Service_Create_OtherBooksStayAvailable(t *testing.T) {
	_, f := newLoanFixture(t)
	ctx := context.Background()

	_, err := f.svc.Create(ctx, &model.Loan{
		UserID:       f.reader.ID,
		BookID:       f.book.ID,
		LoanStatusID: f.status.ID,
		ReturnDate:   time.Now().AddDate(0, 0, 14),
	})
	require.NoError(t, err)

	second, err := f.svc.Create(ctx, &model.Loan{
		UserID:       f.other.ID,
		BookID:       f.spare.ID,
		LoanStatusID: f.status.ID,
		ReturnDate:   time.Now().AddDate(0, 0, 14),
	})
	require.NoError(t, err)
	require.NotNil(t, second)
	assert.Equal(t, f.spare.ID, second.BookID)
}
