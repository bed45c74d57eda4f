package httpx

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/ELEKTROTeam/AURAVINDEXAPI/internal/platform/config"
)

var classificationRe = regexp.MustCompile(`^\d+(\.\d+)*$`)

// RegisterValidators installs the request validators used by binding tags.
// Call once at startup.
func RegisterValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("classification", func(fl validator.FieldLevel) bool {
		return classificationRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("birthdate", func(fl validator.FieldLevel) bool {
		return ValidBirthdate(fl.Field().String())
	})
}

// ValidBirthdate checks a YYYY-MM-DD birthdate: a real calendar date, not in
// the future, and within the accepted age range.
func ValidBirthdate(s string) bool {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return false
	}
	now := time.Now()
	if d.After(now) {
		return false
	}
	age := now.Year() - d.Year()
	if now.Month() < d.Month() || (now.Month() == d.Month() && now.Day() < d.Day()) {
		age--
	}
	return age >= config.UserMinAgeRequired && age <= config.UserMaxAgeAllowed
}
