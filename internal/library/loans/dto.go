package loans

import (
	"time"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
)

type CreateLoanRequest struct {
	User       string `json:"user" binding:"required,len=26"`
	Book       string `json:"book" binding:"required,len=26"`
	LoanStatus string `json:"loan_status" binding:"required,len=26"`
	ReturnDate string `json:"return_date" binding:"required"`
}

func (r CreateLoanRequest) Loan() (*model.Loan, error) {
	d, err := parseDate(r.ReturnDate)
	if err != nil {
		return nil, err
	}
	return &model.Loan{
		UserID:       r.User,
		BookID:       r.Book,
		LoanStatusID: r.LoanStatus,
		ReturnDate:   d,
	}, nil
}

type UpdateLoanRequest struct {
	LoanStatus *string `json:"loan_status" binding:"omitempty,len=26"`
	ReturnDate *string `json:"return_date"`
}

// Updates flattens the request into store column updates.
func (r UpdateLoanRequest) Updates() (map[string]any, error) {
	u := map[string]any{}
	if r.LoanStatus != nil {
		u["loan_status_id"] = *r.LoanStatus
	}
	if r.ReturnDate != nil {
		d, err := parseDate(*r.ReturnDate)
		if err != nil {
			return nil, err
		}
		u["return_date"] = d
	}
	return u, nil
}

var dateLayouts = []string{time.RFC3339, "2006-01-02 15:04", "2006-01-02"}

func parseDate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		d, err := time.Parse(layout, s)
		if err == nil {
			return d, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
