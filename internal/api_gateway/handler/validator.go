package handler

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shannicec/moneymorph/internal/domain/currency"
)

// ValidCurrency accepts any well-formed three-letter code. Whether it can be
// converted is decided by the rate table, not here.
var ValidCurrency validator.Func = func(fl validator.FieldLevel) bool {
	if code, ok := fl.Field().Interface().(string); ok {
		_, err := currency.ParseCode(code)
		return err == nil
	}
	return false
}

// RegisterValidators installs the custom binding tags on gin's validator
func RegisterValidators() error {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		return v.RegisterValidation("currency", ValidCurrency)
	}
	return nil
}
