package apierr_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
)

func Test_KindName(t *testing.T) {
	assert.Equal(t, "Book", apierr.KindName("book"))
	assert.Equal(t, "BookStatus", apierr.KindName("book_status"))
	assert.Equal(t, "ActivePlan", apierr.KindName("active_plan"))
	assert.Equal(t, "", apierr.KindName(""))
}

func Test_Messages(t *testing.T) {
	assert.EqualError(t, apierr.NotFound("book_status"), "NOT_FOUND: BookStatus not found")
	assert.EqualError(t, apierr.AlreadyExists("book"), "ALREADY_EXISTS: Book already exists")
	assert.EqualError(t, apierr.NotAvailable("book"), "NOT_AVAILABLE: Book is not available")
}

func Test_ToHTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{err: apierr.NotFound("book"), want: http.StatusNotFound},
		{err: apierr.AlreadyExists("book"), want: http.StatusConflict},
		{err: apierr.ExceededMaxRenewals(5), want: http.StatusConflict},
		{err: apierr.MissingParameters("loan"), want: http.StatusBadRequest},
		{err: apierr.InvalidQueryFilters("loan"), want: http.StatusBadRequest},
		{err: apierr.NotAvailable("book"), want: http.StatusUnprocessableEntity},
		{err: apierr.InvalidLogin(), want: http.StatusUnauthorized},
		{err: apierr.ImportingDefaultDataUnauthorized(), want: http.StatusForbidden},
		{err: errors.New("boom"), want: http.StatusInternalServerError},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, apierr.ToHTTPStatus(tc.err), tc.err)
	}
}
