package validation

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

// Messages displayed next to an invalid field.
const (
	MsgRequired     = "Required"
	MsgInvalidEmail = "Invalid email format"
	MsgInvalid      = "Invalid value"
)

// tagMessages maps validator tags to the inline message of the field.
var tagMessages = map[string]string{
	"required": MsgRequired,
	"email":    MsgInvalidEmail,
}

// Validate checks s against its `validate` tags and returns one message
// per failing field. An empty map means s is valid.
func Validate(v *validator.Validate, s interface{}) map[string]string {
	return FieldErrors(v.Struct(s))
}

// FieldErrors converts a validator error into a field -> message map.
// Only the first failing rule of each field is reported.
func FieldErrors(err error) map[string]string {
	fields := map[string]string{}
	if err == nil {
		return fields
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		fields["_"] = err.Error()
		return fields
	}

	for _, e := range validationErrors {
		if _, seen := fields[e.Field()]; seen {
			continue
		}
		fields[e.Field()] = messageFor(e)
	}
	return fields
}

func messageFor(e validator.FieldError) string {
	if msg, ok := tagMessages[e.Tag()]; ok {
		return msg
	}
	return MsgInvalid
}
