package utils

import (
	"yourfuture/internal/model"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the "httpurl" tag to gin's binding validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	return v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
		return model.IsValidURL(fl.Field().String())
	})
}
