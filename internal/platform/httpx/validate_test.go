package httpx_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/httpx"
)

func Test_ValidBirthdate(t *testing.T) {
	adult := time.Now().AddDate(-30, 0, 0).Format("2006-01-02")
	tooYoung := time.Now().AddDate(-10, 0, 0).Format("2006-01-02")
	future := time.Now().AddDate(1, 0, 0).Format("2006-01-02")

	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "adult", value: adult, want: true},
		{name: "below_minimum_age", value: tooYoung, want: false},
		{name: "future_date", value: future, want: false},
		{name: "too_old", value: "1850-01-01", want: false},
		{name: "wrong_format", value: "01/02/2000", want: false},
		{name: "not_a_date", value: "yesterday", want: false},
		{name: "empty", value: "", want: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, httpx.ValidBirthdate(tc.value), fmt.Sprintf("value %q", tc.value))
		})
	}
}
