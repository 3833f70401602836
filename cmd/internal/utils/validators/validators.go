package validators

import (
	"localizebackend/cmd/internal/utils"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Register installs the custom tags used by request contracts.
func Register(validate *validator.Validate) {
	_ = validate.RegisterValidation("notblank", NotBlank)
	_ = validate.RegisterValidation("cnpj", CNPJ)
}

// NotBlank rejects strings that are empty or only whitespace.
func NotBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return false
	}
	return strings.TrimSpace(field.String()) != ""
}

// CNPJ accepts formatted or bare CNPJs with valid check digits.
func CNPJ(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return utils.IsCNPJValid(utils.StripCNPJ(val))
}
