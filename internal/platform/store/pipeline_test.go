package store_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/apierr"
	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/store"
)

type item struct {
	Classification string
	Lent           bool
}

func classificationKey(it item) (string, bool) {
	parts := strings.Split(it.Classification, ".")
	if len(parts) < 3 {
		return "", false
	}
	return parts[0] + "." + parts[1], true
}

func pipeline(showDuplicates, showLents bool) store.Pipeline[item] {
	return store.Pipeline[item]{
		Kind:           "item",
		ShowLents:      showLents,
		ShowDuplicates: showDuplicates,
		IsLent:         func(it item) bool { return it.Lent },
		DedupKey:       classificationKey,
	}
}

func Test_Pipeline_DuplicateSuppression(t *testing.T) {
	items := []item{
		{Classification: "005.1.1"},
		{Classification: "005.1.2"},
		{Classification: "005.2.1"},
	}

	env, err := pipeline(false, true).Run(items, "1", "10")
	require.NoError(t, err)

	assert.Equal(t, 2, env.Pagination.TotalItems)
	require.Len(t, env.Data, 2)
	// The record earlier in sort order wins.
	assert.Equal(t, "005.1.1", env.Data[0].Classification)
	assert.Equal(t, "005.2.1", env.Data[1].Classification)
}

func Test_Pipeline_ShortClassificationsNeverSuppressed(t *testing.T) {
	items := []item{
		{Classification: "005.1"},
		{Classification: "005.1"},
		{Classification: "200"},
	}

	env, err := pipeline(false, true).Run(items, "1", "10")
	require.NoError(t, err)

	assert.Equal(t, 3, env.Pagination.TotalItems)
	assert.Len(t, env.Data, 3)
}

func Test_Pipeline_LentFilter(t *testing.T) {
	items := []item{
		{Classification: "100", Lent: true},
		{Classification: "200"},
		{Classification: "300", Lent: true},
	}

	env, err := pipeline(true, false).Run(items, "1", "10")
	require.NoError(t, err)

	require.Len(t, env.Data, 1)
	assert.Equal(t, "200", env.Data[0].Classification)
}

// Duplicate suppression restarts from the unfiltered fetch result, so with
// both flags off the lent filter has no effect on the final data. Existing
// clients depend on this ordering.
func Test_Pipeline_DedupRestartsFromUnfilteredSet(t *testing.T) {
	items := []item{
		{Classification: "005.1.1", Lent: true},
		{Classification: "005.1.2"},
	}

	env, err := pipeline(false, false).Run(items, "1", "10")
	require.NoError(t, err)

	require.Len(t, env.Data, 1)
	assert.Equal(t, "005.1.1", env.Data[0].Classification)
	assert.True(t, env.Data[0].Lent)
}

func Test_Pipeline_NoLimitSentinels(t *testing.T) {
	items := make([]item, 25)
	for i := range items {
		items[i] = item{Classification: "100"}
	}

	for _, sentinel := range []string{"none", "all"} {
		env, err := pipeline(true, true).Run(items, "1", sentinel)
		require.NoError(t, err, sentinel)

		assert.Equal(t, 1, env.Pagination.TotalPages, sentinel)
		assert.Equal(t, 25, env.Pagination.TotalItems, sentinel)
		assert.Len(t, env.Data, 25, sentinel)
	}
}

func Test_Pipeline_PageSlicing(t *testing.T) {
	items := make([]item, 25)
	for i := range items {
		items[i] = item{Classification: "100"}
	}

	tests := []struct {
		page     string
		limit    string
		wantLen  int
		wantPage int
	}{
		{page: "1", limit: "10", wantLen: 10, wantPage: 1},
		{page: "3", limit: "10", wantLen: 5, wantPage: 3},
		{page: "4", limit: "10", wantLen: 0, wantPage: 4},
	}
	for _, tc := range tests {
		env, err := pipeline(true, true).Run(items, tc.page, tc.limit)
		require.NoError(t, err)

		assert.Len(t, env.Data, tc.wantLen)
		assert.Equal(t, 25, env.Pagination.TotalItems)
		assert.Equal(t, 3, env.Pagination.TotalPages)
		assert.Equal(t, tc.wantPage, env.Pagination.CurrentPage)
		assert.Equal(t, 10, env.Pagination.PageSize)
	}
}

func Test_Pipeline_EmptyPageKeepsMetadata(t *testing.T) {
	env, err := pipeline(true, true).Run(nil, "2", "10")
	require.NoError(t, err)

	assert.NotNil(t, env.Data)
	assert.Empty(t, env.Data)
	assert.Equal(t, 0, env.Pagination.TotalItems)
	assert.Equal(t, 0, env.Pagination.TotalPages)
}

func Test_Pipeline_RejectsBadPageAndLimit(t *testing.T) {
	tests := []struct {
		name  string
		page  string
		limit string
	}{
		{name: "non_numeric_page", page: "x", limit: "10"},
		{name: "zero_page", page: "0", limit: "10"},
		{name: "non_numeric_limit", page: "1", limit: "x"},
		{name: "zero_limit", page: "1", limit: "0"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := pipeline(true, true).Run(nil, tc.page, tc.limit)
			require.Error(t, err)

			var api *apierr.Error
			require.ErrorAs(t, err, &api)
			assert.Equal(t, apierr.CodeInvalidQueryFilters, api.Code)
		})
	}
}

func Test_ParsePageSize_RejectsSentinels(t *testing.T) {
	for _, limit := range []string{"none", "all", "0", "-1", "x"} {
		_, err := store.ParsePageSize("user", limit)
		require.Error(t, err, limit)

		var api *apierr.Error
		require.ErrorAs(t, err, &api)
		assert.Equal(t, apierr.CodeInvalidQueryFilters, api.Code)
	}

	l, err := store.ParsePageSize("user", "25")
	require.NoError(t, err)
	assert.Equal(t, 25, l)
}
