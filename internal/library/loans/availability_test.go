package loans_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/loans"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func loanCreatedAt(created, due time.Time, returned *time.Time) model.Loan {
	l := model.Loan{ReturnDate: due, ReturnedDate: returned}
	l.CreatedAt = created
	return l
}

func Test_Conflicts(t *testing.T) {
	returned := day(20)

	tests := []struct {
		name  string
		loan  model.Loan
		start time.Time
		end   time.Time
		want  bool
	}{
		{
			name:  "existing_loan_spanning_the_request_conflicts",
			loan:  loanCreatedAt(day(1), day(15), nil),
			start: day(1),
			end:   day(15),
			want:  true,
		},
		{
			name:  "loan_created_after_requested_start_never_conflicts",
			loan:  loanCreatedAt(day(10), day(25), nil),
			start: day(5),
			end:   day(25),
			want:  false,
		},
		{
			name:  "loan_due_back_before_requested_finish_is_free",
			loan:  loanCreatedAt(day(1), day(5), nil),
			start: day(6),
			end:   day(10),
			want:  false,
		},
		{
			name:  "late_actual_return_still_blocks",
			loan:  loanCreatedAt(day(1), day(5), &returned),
			start: day(6),
			end:   day(10),
			want:  true,
		},
		{
			name:  "boundary_dates_count_as_conflict",
			loan:  loanCreatedAt(day(5), day(10), nil),
			start: day(5),
			end:   day(10),
			want:  true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, loans.Conflicts(tc.loan, tc.start, tc.end))
		})
	}
}
