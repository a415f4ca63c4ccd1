package validation

import (
	"reflect"
	"regexp"

	"gopkg.in/go-playground/validator.v9"
)

var phonePattern = regexp.MustCompile(`^\+?[0-9]{9,15}$`)

// New возвращает валидатор DTO с правилами сервиса.
func New() *validator.Validate {
	v := validator.New()
	// ошибка возможна только при пустом теге
	_ = v.RegisterValidation("phone", phone)
	return v
}

func phone(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}

	return phonePattern.MatchString(fl.Field().String())
}
