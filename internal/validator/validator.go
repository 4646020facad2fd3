// Package validator registers the custom binding validators.
package validator

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// usernameRegex matches letters, digits, dots, underscores and hyphens
var usernameRegex = regexp.MustCompile(`^[A-Za-z0-9._-]+$`)

// validateUsername validates that a string is a valid username
func validateUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

// validateNotBlank rejects strings made only of whitespace
func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// validateMaxBytes bounds the UTF-8 length of a string, as opposed to max
// which counts runes. bcrypt rejects passwords over 72 bytes.
func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}

// Register adds the custom validators to v.
func Register(v *validator.Validate) {
	_ = v.RegisterValidation("username", validateUsername)
	_ = v.RegisterValidation("notblank", validateNotBlank)
	_ = v.RegisterValidation("maxbytes", validateMaxBytes)
}
