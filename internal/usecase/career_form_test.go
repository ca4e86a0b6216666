package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-hr-website/internal/domain"
	"go-hr-website/internal/usecase"
	"go-hr-website/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newForm(api domain.CareerAPI, clock *fakeClock) *usecase.CareerForm {
	return usecase.NewCareerForm(validation.New(), api, usecase.NewNotifier(clock, 6*time.Second))
}

func TestCareerFormFieldErrors(t *testing.T) {
	t.Run("Should only show errors of touched fields", func(t *testing.T) {
		form := newForm(new(MockCareerAPI), &fakeClock{})

		form.SetField(domain.FieldEmail, "not-an-email")
		form.Validate()

		assert.Equal(t, map[string]string{"email": validation.MsgInvalidEmail}, form.FieldErrors())
	})

	t.Run("Should clear an error once the field is fixed", func(t *testing.T) {
		form := newForm(new(MockCareerAPI), &fakeClock{})

		form.SetField(domain.FieldName, "")
		form.Validate()
		assert.Equal(t, validation.MsgRequired, form.FieldErrors()["name"])

		form.SetField(domain.FieldName, "Asha")
		form.Validate()
		assert.NotContains(t, form.FieldErrors(), "name")
	})

	t.Run("Should reject unknown fields", func(t *testing.T) {
		form := newForm(new(MockCareerAPI), &fakeClock{})
		assert.ErrorIs(t, form.SetField("salary", "1"), domain.ErrUnknownField)
	})

	t.Run("Should show a refused resume in the snapshot until a file is attached", func(t *testing.T) {
		form := newForm(new(MockCareerAPI), &fakeClock{})

		form.RejectResume("The selected file is empty")
		assert.Equal(t, "The selected file is empty", form.Snapshot().Errors[domain.FieldResume])

		form.SetResume(validResume())
		state := form.Snapshot()
		assert.NotContains(t, state.Errors, domain.FieldResume)
		assert.Equal(t, "cv.pdf", state.ResumeName)
	})

	t.Run("Should report the rejection reason for a refused resume", func(t *testing.T) {
		form := newForm(new(MockCareerAPI), &fakeClock{})

		form.RejectResume("The selected file is empty")
		errs := form.Validate()

		assert.Equal(t, "The selected file is empty", errs["resume"])
	})
}

func TestCareerFormSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("Should not call the API when the form is invalid", func(t *testing.T) {
		api := new(MockCareerAPI)
		form := newForm(api, &fakeClock{})
		form.SetField(domain.FieldName, "Asha")

		_, err := form.Submit(ctx)
		assert.ErrorIs(t, err, domain.ErrApplicationIncomplete)
		api.AssertNotCalled(t, "SubmitApplication", mock.Anything, mock.Anything)

		// Every field is shown after a submit attempt, not only touched ones.
		errs := form.FieldErrors()
		assert.Len(t, errs, 4)
		assert.Equal(t, validation.MsgRequired, errs["resume"])
		assert.False(t, form.Submitting())
		assert.False(t, form.Notifier().State().Visible)
	})

	t.Run("Should show success, reset the form and hide after six seconds", func(t *testing.T) {
		api := new(MockCareerAPI)
		clock := &fakeClock{}
		form := newForm(api, clock)
		fillForm(form)

		api.On("SubmitApplication", mock.Anything, mock.MatchedBy(func(f domain.ApplicationForm) bool {
			return f.Name == "Asha" && f.Email == "asha@example.com" && f.Message == "Hello" &&
				f.Resume != nil && f.Resume.Filename == "cv.pdf"
		})).Return(domain.Success()).Once()

		result, err := form.Submit(ctx)
		require.NoError(t, err)
		assert.True(t, result.Succeeded())

		state := form.Snapshot()
		assert.Equal(t, domain.Notification{
			Visible:  true,
			Message:  domain.MsgSubmitSuccess,
			Severity: domain.SeveritySuccess,
		}, state.Notification)
		for _, field := range domain.TextFields {
			assert.Empty(t, state.Values[field])
		}
		assert.Empty(t, state.ResumeName)
		assert.Empty(t, state.Errors)
		assert.False(t, state.Submitting)
		assert.Equal(t, "Submit Application", state.ButtonLabel())

		clock.Advance(6 * time.Second)
		assert.False(t, form.Notifier().State().Visible)
		api.AssertExpectations(t)
	})

	t.Run("Should show the business failure reason and still reset", func(t *testing.T) {
		api := new(MockCareerAPI)
		form := newForm(api, &fakeClock{})
		fillForm(form)
		api.On("SubmitApplication", mock.Anything, mock.Anything).Return(domain.Failure(domain.BusinessFailureMessage("Disk full"))).Once()

		result, err := form.Submit(ctx)
		require.NoError(t, err)
		assert.False(t, result.Succeeded())

		state := form.Snapshot()
		assert.Equal(t, "Failed to submit application: Disk full. Please try again.", state.Notification.Message)
		assert.Equal(t, domain.SeverityError, state.Notification.Severity)
		assert.Empty(t, state.Values[domain.FieldName])
	})

	t.Run("Should show the generic API error on transport failure", func(t *testing.T) {
		api := new(MockCareerAPI)
		form := newForm(api, &fakeClock{})
		fillForm(form)
		api.On("SubmitApplication", mock.Anything, mock.Anything).Return(domain.Failure(domain.MsgTransportError)).Once()

		_, err := form.Submit(ctx)
		require.NoError(t, err)

		state := form.Snapshot()
		assert.Equal(t, domain.MsgTransportError, state.Notification.Message)
		assert.Equal(t, domain.SeverityError, state.Notification.Severity)
	})

	t.Run("Should refuse a second submit while one is in flight", func(t *testing.T) {
		api := new(MockCareerAPI)
		form := newForm(api, &fakeClock{})
		fillForm(form)

		release := make(chan struct{})
		api.On("SubmitApplication", mock.Anything, mock.Anything).
			Run(func(mock.Arguments) { <-release }).
			Return(domain.Success()).Once()

		done := make(chan error, 1)
		go func() {
			_, err := form.Submit(ctx)
			done <- err
		}()

		require.Eventually(t, form.Submitting, time.Second, 5*time.Millisecond)
		assert.Equal(t, "Submitting...", form.Snapshot().ButtonLabel())

		_, err := form.Submit(ctx)
		assert.ErrorIs(t, err, domain.ErrSubmissionInProgress)

		close(release)
		require.NoError(t, <-done)
		assert.False(t, form.Submitting())
		api.AssertNumberOfCalls(t, "SubmitApplication", 1)
	})
}
