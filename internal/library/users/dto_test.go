package users_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/users"
)

func strp(s string) *string { return &s }

func Test_UpdateUserRequest_Updates(t *testing.T) {
	req := users.UpdateUserRequest{
		Username: strp("reader1"),
		Gender:   strp("01ARZ3NDEKTSV4RRFFQ69G5FAV"),
		Role:     strp("01BX5ZZKBKACTAV9WEVGEMMVRZ"),
		Password: strp("hunter22"),
	}

	got := req.Updates()

	assert.Equal(t, map[string]any{
		"username":  "reader1",
		"gender_id": "01ARZ3NDEKTSV4RRFFQ69G5FAV",
		"role_id":   "01BX5ZZKBKACTAV9WEVGEMMVRZ",
		"password":  "hunter22",
	}, got)
}

func Test_UpdateUserRequest_EmptyRequestTouchesNothing(t *testing.T) {
	assert.Empty(t, users.UpdateUserRequest{}.Updates())
}
