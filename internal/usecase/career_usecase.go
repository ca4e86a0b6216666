package usecase

import (
	"context"
	"errors"
	"sort"

	"go-hr-website/internal/domain"
	"go-hr-website/pkg/apperror"
	"go-hr-website/pkg/logger"
	"go-hr-website/pkg/security"
)

// ResumeInspector vets an uploaded resume and returns its detected MIME type.
type ResumeInspector interface {
	Inspect(ctx context.Context, filename string, data []byte) (string, error)
}

type careerUsecase struct {
	sessions  *SessionStore
	inspector ResumeInspector
	secLog    *security.SecurityLogger
}

// NewCareerUsecase creates the career form usecase on top of a session store
func NewCareerUsecase(sessions *SessionStore, inspector ResumeInspector, secLog *security.SecurityLogger) domain.CareerUsecase {
	return &careerUsecase{
		sessions:  sessions,
		inspector: inspector,
		secLog:    secLog,
	}
}

func (uc *careerUsecase) View(sessionID string) domain.CareerFormState {
	return uc.sessions.Form(sessionID).Snapshot()
}

// SetField updates one field and revalidates, returning errors of touched fields only
func (uc *careerUsecase) SetField(sessionID, field, value string) (map[string]string, error) {
	form := uc.sessions.Form(sessionID)
	if err := form.SetField(field, value); err != nil {
		if errors.Is(err, domain.ErrUnknownField) {
			return nil, apperror.BadRequest("Unknown field: " + field)
		}
		return nil, err
	}
	form.Validate()
	return form.FieldErrors(), nil
}

// AttachResume inspects the file and attaches it. A refused file is
// recorded on the resume field and reported as a validation error.
func (uc *careerUsecase) AttachResume(ctx context.Context, sessionID string, file *domain.ResumeFile) error {
	form := uc.sessions.Form(sessionID)
	if file == nil {
		return apperror.BadRequest("No resume provided")
	}

	if uc.inspector != nil {
		detected, err := uc.inspector.Inspect(ctx, file.Filename, file.Data)
		if err != nil {
			var rejected *security.RejectedFileError
			if errors.As(err, &rejected) {
				form.RejectResume(rejected.Reason)
				return apperror.Validation(map[string]string{domain.FieldResume: rejected.Reason})
			}
			return apperror.Internal(err)
		}
		file.ContentType = detected
	}

	form.SetResume(file)
	return nil
}

// Submit runs the form's submission and maps its outcome for the handler
func (uc *careerUsecase) Submit(ctx context.Context, sessionID string) (domain.CareerFormState, error) {
	form := uc.sessions.Form(sessionID)
	email := form.Snapshot().Values[domain.FieldEmail]

	result, err := form.Submit(ctx)
	switch {
	case errors.Is(err, domain.ErrSubmissionInProgress):
		return form.Snapshot(), apperror.Conflict("Your application is already being submitted")
	case errors.Is(err, domain.ErrApplicationIncomplete):
		state := form.Snapshot()
		uc.secLog.LogValidationFailed(ctx, sortedKeys(state.Errors))
		return state, apperror.Validation(state.Errors)
	case err != nil:
		return form.Snapshot(), apperror.Internal(err)
	}

	if result.Succeeded() {
		logger.Log.Info("Career application submitted", "email", security.MaskEmail(email))
	} else {
		logger.Log.Warn("Career application not accepted", "reason", result.Reason())
		uc.secLog.LogSubmissionFailed(ctx, email, result.Reason())
	}
	return form.Snapshot(), nil
}

func (uc *careerUsecase) DismissNotification(sessionID string) {
	uc.sessions.Form(sessionID).Notifier().Dismiss()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
