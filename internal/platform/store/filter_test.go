package store_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/store"
)

const sampleID = "01ARZ3NDEKTSV4RRFFQ69G5FAV"

var bookFields = store.FieldTable{
	"title":       {Column: "title", Type: store.TypeString},
	"sample":      {Column: "sample", Type: store.TypeNumber},
	"book_status": {Column: "book_status_id", Type: store.TypeID},
	"birthdate":   {Column: "birthdate", Type: store.TypeDate},
}

func Test_FieldTable_UnknownFieldRejected(t *testing.T) {
	_, err := bookFields.Condition("book", "nope", "x")
	require.Error(t, err)

	var api *apierr.Error
	require.ErrorAs(t, err, &api)
	assert.Equal(t, apierr.CodeInvalidQueryFilters, api.Code)
	assert.Equal(t, "book", api.Kind)
}

func Test_FieldTable_Conditions(t *testing.T) {
	tests := []struct {
		name      string
		field     string
		value     string
		wantQuery string
		wantArg   any
	}{
		{
			name:      "string_matches_substring_case_insensitive",
			field:     "title",
			value:     "GoLang",
			wantQuery: "LOWER(title) LIKE ?",
			wantArg:   "%golang%",
		},
		{
			name:      "id_with_valid_identifier_matches_exactly",
			field:     "book_status",
			value:     sampleID,
			wantQuery: "book_status_id = ?",
			wantArg:   sampleID,
		},
		{
			name:      "number_is_coerced",
			field:     "sample",
			value:     "3",
			wantQuery: "sample = ?",
			wantArg:   float64(3),
		},
		{
			name:      "date_is_coerced",
			field:     "birthdate",
			value:     "2000-05-20",
			wantQuery: "birthdate = ?",
			wantArg:   time.Date(2000, 5, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "id_with_invalid_identifier_falls_back_to_equality",
			field:     "book_status",
			value:     "not-an-id",
			wantQuery: "book_status_id = ?",
			wantArg:   "not-an-id",
		},
		{
			name:      "unparseable_number_falls_back_to_equality",
			field:     "sample",
			value:     "many",
			wantQuery: "sample = ?",
			wantArg:   "many",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cond, err := bookFields.Condition("book", tc.field, tc.value)
			require.NoError(t, err)

			assert.Equal(t, tc.wantQuery, cond.Query)
			require.Len(t, cond.Args, 1)
			assert.Equal(t, tc.wantArg, cond.Args[0])
		})
	}
}

func Test_FieldTable_SortColumn(t *testing.T) {
	assert.Equal(t, "title", bookFields.SortColumn("title"))
	assert.Equal(t, "created_at", bookFields.SortColumn(""))
	assert.Equal(t, "created_at", bookFields.SortColumn("nope"))
}

func Test_IsValidID(t *testing.T) {
	assert.True(t, store.IsValidID(sampleID))
	assert.False(t, store.IsValidID("123"))
	assert.False(t, store.IsValidID(""))
}
