package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// Area codes are short uppercase identifiers like AREA1 or RRHH.
var areaCodePattern = regexp.MustCompile(`^[A-Z0-9_-]{2,32}$`)

// registerCustomValidations installs binding validations used by the DTOs.
func registerCustomValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("areacode", func(fl validator.FieldLevel) bool {
			return areaCodePattern.MatchString(fl.Field().String())
		})
	}
}
