package tracker

import (
	"regexp"
	"strconv"

	"github.com/go-playground/validator/v10"
)

var weekKeyRegex = regexp.MustCompile(`^(\d{4})-(\d{2})$`)

// ValidWeekKey checks the "YYYY-WW" form, weeks 01 to 54.
func ValidWeekKey(week string) bool {
	m := weekKeyRegex.FindStringSubmatch(week)
	if m == nil {
		return false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		return false
	}
	return n >= 1 && n <= 54
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("weekkey", func(fl validator.FieldLevel) bool {
		return ValidWeekKey(fl.Field().String())
	})
	return v
}
