package validation_test

import (
	"errors"
	"testing"

	"go-hr-website/internal/domain"
	"go-hr-website/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func completeForm() domain.ApplicationForm {
	return domain.ApplicationForm{
		Name:     "Asha",
		Phone:    "9999999999",
		Email:    "asha@example.com",
		Position: "Recruiter",
		Resume:   &domain.ResumeFile{Filename: "cv.pdf", Data: []byte("%PDF-1.4")},
	}
}

func TestValidateApplicationForm(t *testing.T) {
	v := validation.New()

	t.Run("Should accept a complete form without a message", func(t *testing.T) {
		assert.Empty(t, validation.Validate(v, completeForm()))
	})

	t.Run("Should report only the email format when email is malformed", func(t *testing.T) {
		form := completeForm()
		form.Email = "not-an-email"

		errs := validation.Validate(v, form)
		assert.Equal(t, map[string]string{"email": validation.MsgInvalidEmail}, errs)
	})

	t.Run("Should report Required for every empty field", func(t *testing.T) {
		errs := validation.Validate(v, domain.ApplicationForm{})
		assert.Equal(t, map[string]string{
			"name":     validation.MsgRequired,
			"phone":    validation.MsgRequired,
			"email":    validation.MsgRequired,
			"position": validation.MsgRequired,
			"resume":   validation.MsgRequired,
		}, errs)
	})

	t.Run("Should report Required for a missing resume", func(t *testing.T) {
		form := completeForm()
		form.Resume = nil

		errs := validation.Validate(v, form)
		assert.Equal(t, map[string]string{"resume": validation.MsgRequired}, errs)
	})

	t.Run("Should report required before format for an empty email", func(t *testing.T) {
		form := completeForm()
		form.Email = ""

		errs := validation.Validate(v, form)
		assert.Equal(t, validation.MsgRequired, errs["email"])
	})
}

func TestFieldErrors(t *testing.T) {
	t.Run("Should return an empty map for nil", func(t *testing.T) {
		assert.Empty(t, validation.FieldErrors(nil))
	})

	t.Run("Should keep foreign errors under the blank key", func(t *testing.T) {
		errs := validation.FieldErrors(errors.New("boom"))
		assert.Equal(t, "boom", errs["_"])
	})
}
