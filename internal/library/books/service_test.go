package books

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/library/model"
)

func Test_ClassificationKey(t *testing.T) {
	tests := []struct {
		classification string
		wantKey        string
		wantOK         bool
	}{
		{classification: "005.133.2", wantKey: "005.133", wantOK: true},
		{classification: "005.133.2.1", wantKey: "005.133", wantOK: true},
		{classification: "005.133", wantOK: false},
		{classification: "005", wantOK: false},
		{classification: "", wantOK: false},
	}
	for _, tc := range tests {
		key, ok := classificationKey(model.Book{Classification: tc.classification})
		assert.Equal(t, tc.wantOK, ok, tc.classification)
		if tc.wantOK {
			assert.Equal(t, tc.wantKey, key, tc.classification)
		}
	}
}

func Test_IsLent(t *testing.T) {
	assert.False(t, isLent(model.Book{}))
	assert.False(t, isLent(model.Book{BookStatus: &model.BookStatus{Name: "AVAILABLE"}}))
	assert.True(t, isLent(model.Book{BookStatus: &model.BookStatus{Name: "LENT"}}))
}
