package usecase

import (
	"context"
	"sync"
	"time"

	"go-hr-website/internal/domain"
	"go-hr-website/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// CareerForm owns the state of one applicant's career form: field values,
// field errors, the submitting flag and the notification.
type CareerForm struct {
	mu         sync.Mutex
	validate   *validator.Validate
	api        domain.CareerAPI
	notifier   *Notifier
	values     domain.ApplicationForm
	errors     map[string]string
	touched    map[string]bool
	fileError  string // reason the last uploaded resume was refused
	submitting bool
}

func NewCareerForm(validate *validator.Validate, api domain.CareerAPI, notifier *Notifier) *CareerForm {
	if validate == nil {
		validate = validation.New()
	}
	if notifier == nil {
		notifier = NewNotifier(nil, 0)
	}
	return &CareerForm{
		validate: validate,
		api:      api,
		notifier: notifier,
		errors:   map[string]string{},
		touched:  map[string]bool{},
	}
}

// FormFactory builds empty forms sharing one validator, API client and clock.
func FormFactory(validate *validator.Validate, api domain.CareerAPI, clock Clock, timeout time.Duration) func() *CareerForm {
	return func() *CareerForm {
		return NewCareerForm(validate, api, NewNotifier(clock, timeout))
	}
}

// SetField updates one text field. Errors are recomputed on the next Validate.
func (f *CareerForm) SetField(name, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if err := f.values.SetText(name, value); err != nil {
		return err
	}
	f.touched[name] = true
	return nil
}

// SetResume attaches a resume, replacing any previous one, and revalidates.
func (f *CareerForm) SetResume(file *domain.ResumeFile) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values.Resume = file
	f.fileError = ""
	f.touched[domain.FieldResume] = true
	f.validateLocked()
}

// RejectResume detaches the resume and reports reason on the resume field
// right away.
func (f *CareerForm) RejectResume(reason string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.values.Resume = nil
	f.fileError = reason
	f.touched[domain.FieldResume] = true
	f.validateLocked()
}

// Validate checks every field and returns the failing ones.
func (f *CareerForm) Validate() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return copyErrors(f.validateLocked())
}

// FieldErrors returns the errors of fields the applicant already touched,
// as of the last validation pass.
func (f *CareerForm) FieldErrors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.visibleErrorsLocked()
}

// Submit validates the form and sends it to the career API. Invalid forms
// never reach the API. Once the call returns the outcome is shown through
// the notifier and the form is reset, whatever the outcome.
func (f *CareerForm) Submit(ctx context.Context) (domain.SubmissionResult, error) {
	f.mu.Lock()
	if f.submitting {
		f.mu.Unlock()
		return domain.SubmissionResult{}, domain.ErrSubmissionInProgress
	}
	for _, name := range domain.FormFields {
		f.touched[name] = true
	}
	if errs := f.validateLocked(); len(errs) > 0 {
		f.mu.Unlock()
		return domain.SubmissionResult{}, domain.ErrApplicationIncomplete
	}
	f.submitting = true
	payload := f.values
	f.mu.Unlock()

	result := f.api.SubmitApplication(ctx, payload)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.submitting = false
	f.notifier.Show(result.Message(), result.Severity())
	f.resetLocked()
	return result, nil
}

// Submitting reports whether a submission is in flight.
func (f *CareerForm) Submitting() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.submitting
}

// Notifier returns the form's notification presenter.
func (f *CareerForm) Notifier() *Notifier {
	return f.notifier
}

// Snapshot returns a copy of the form for rendering.
func (f *CareerForm) Snapshot() domain.CareerFormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	state := domain.CareerFormState{
		Values:       f.values.Values(),
		Errors:       f.visibleErrorsLocked(),
		Submitting:   f.submitting,
		Notification: f.notifier.State(),
	}
	if f.values.Resume != nil {
		state.ResumeName = f.values.Resume.Filename
	}
	return state
}

func (f *CareerForm) validateLocked() map[string]string {
	errs := validation.Validate(f.validate, f.values)
	if f.values.Resume == nil && f.fileError != "" {
		errs[domain.FieldResume] = f.fileError
	}
	f.errors = errs
	return errs
}

func (f *CareerForm) visibleErrorsLocked() map[string]string {
	visible := make(map[string]string, len(f.errors))
	for name, msg := range f.errors {
		if f.touched[name] {
			visible[name] = msg
		}
	}
	return visible
}

func (f *CareerForm) resetLocked() {
	f.values = domain.ApplicationForm{}
	f.errors = map[string]string{}
	f.touched = map[string]bool{}
	f.fileError = ""
}

func copyErrors(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}
