package domain

import (
	"context"
	"errors"
	"fmt"
)

// Form field names, shared by the HTML form, the validation messages
// and the multipart payload sent to the career API.
const (
	FieldName     = "name"
	FieldPhone    = "phone"
	FieldEmail    = "email"
	FieldPosition = "position"
	FieldMessage  = "message"
	FieldResume   = "resume"
)

// TextFields lists the text inputs in form order.
var TextFields = []string{FieldName, FieldPhone, FieldEmail, FieldPosition, FieldMessage}

// FormFields lists every input of the application form, resume included.
var FormFields = []string{FieldName, FieldPhone, FieldEmail, FieldPosition, FieldMessage, FieldResume}

var (
	ErrUnknownField          = errors.New("unknown form field")
	ErrSubmissionInProgress  = errors.New("an application is already being submitted")
	ErrApplicationIncomplete = errors.New("application form has validation errors")
)

// Outcome messages shown to the applicant.
const (
	MsgSubmitSuccess  = "Application submitted successfully!"
	MsgTransportError = "API Error. Please try again later."
)

// BusinessFailureMessage formats the error text returned by the career API.
func BusinessFailureMessage(reason string) string {
	return fmt.Sprintf("Failed to submit application: %s. Please try again.", reason)
}

// ResumeFile is an uploaded resume held in memory until submission.
type ResumeFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (r *ResumeFile) Size() int {
	if r == nil {
		return 0
	}
	return len(r.Data)
}

// ApplicationForm is the career application as filled in by the applicant.
type ApplicationForm struct {
	Name     string      `form:"name" validate:"required"`
	Phone    string      `form:"phone" validate:"required"`
	Email    string      `form:"email" validate:"required,email"`
	Position string      `form:"position" validate:"required"`
	Message  string      `form:"message"`
	Resume   *ResumeFile `form:"resume" validate:"required"`
}

// Text returns the value of a text field by name.
func (f *ApplicationForm) Text(field string) (string, error) {
	switch field {
	case FieldName:
		return f.Name, nil
	case FieldPhone:
		return f.Phone, nil
	case FieldEmail:
		return f.Email, nil
	case FieldPosition:
		return f.Position, nil
	case FieldMessage:
		return f.Message, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
}

// SetText assigns a text field by name.
func (f *ApplicationForm) SetText(field, value string) error {
	switch field {
	case FieldName:
		f.Name = value
	case FieldPhone:
		f.Phone = value
	case FieldEmail:
		f.Email = value
	case FieldPosition:
		f.Position = value
	case FieldMessage:
		f.Message = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return nil
}

// Values returns the text fields keyed by field name.
func (f *ApplicationForm) Values() map[string]string {
	return map[string]string{
		FieldName:     f.Name,
		FieldPhone:    f.Phone,
		FieldEmail:    f.Email,
		FieldPosition: f.Position,
		FieldMessage:  f.Message,
	}
}

// SubmissionResult is the outcome of one call to the career API.
// The zero value is not meaningful; use Success or Failure.
type SubmissionResult struct {
	ok     bool
	reason string
}

func Success() SubmissionResult {
	return SubmissionResult{ok: true}
}

// Failure carries a human readable reason, already formatted for display.
func Failure(reason string) SubmissionResult {
	return SubmissionResult{reason: reason}
}

func (r SubmissionResult) Succeeded() bool { return r.ok }

func (r SubmissionResult) Reason() string { return r.reason }

// Message is the notification text for this outcome.
func (r SubmissionResult) Message() string {
	if r.ok {
		return MsgSubmitSuccess
	}
	return r.reason
}

func (r SubmissionResult) Severity() Severity {
	if r.ok {
		return SeveritySuccess
	}
	return SeverityError
}

// CareerAPI sends a completed application to the remote endpoint.
// Implementations report every outcome through SubmissionResult.
type CareerAPI interface {
	SubmitApplication(ctx context.Context, form ApplicationForm) SubmissionResult
}

// CareerFormState is a render-ready copy of one session's form.
type CareerFormState struct {
	Values       map[string]string
	ResumeName   string
	Errors       map[string]string
	Submitting   bool
	Notification Notification
}

// ButtonLabel is the submit button text for the current state.
func (s CareerFormState) ButtonLabel() string {
	if s.Submitting {
		return "Submitting..."
	}
	return "Submit Application"
}

// CareerUsecase drives the career application form of each browser session.
type CareerUsecase interface {
	// View returns the current form state of a session.
	View(sessionID string) CareerFormState
	// SetField updates one text field and returns the resulting field errors.
	SetField(sessionID, field, value string) (map[string]string, error)
	// AttachResume checks and attaches a resume file.
	AttachResume(ctx context.Context, sessionID string, file *ResumeFile) error
	// Submit validates the form and, when valid, sends it to the career API.
	Submit(ctx context.Context, sessionID string) (CareerFormState, error)
	// DismissNotification hides the session's notification.
	DismissNotification(sessionID string)
}
