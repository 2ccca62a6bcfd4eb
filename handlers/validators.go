package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// phoneRE accepts an optional leading +, then 7-15 digits, spaces or hyphens.
var phoneRE = regexp.MustCompile(`^\+?[0-9 -]{7,15}$`)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return phoneRE.MatchString(fl.Field().String())
		})
	}
}
