package utils

import (
	"sensus-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("theme", validateTheme)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateTheme(fl validator.FieldLevel) bool {
	return constvars.IsValidTheme(fl.Field().String())
}

func IsValidEmail(email string) bool {
	return validate.Var(email, "required,email") == nil
}
