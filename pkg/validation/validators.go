package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator configured for HTML form structs.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators makes field errors report the `form` tag name
// ("email") instead of the Go field name ("Email").
func RegisterValidators(v *validator.Validate) {
	v.RegisterTagNameFunc(formFieldName)
}

func formFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return strings.ToLower(fld.Name)
	}
	return name
}
