package usecase

import (
	"context"
	"errors"
	"fmt"
	"go-hr-website/internal/domain"
	"go-hr-website/pkg/email"
	"strings"
)

// ErrContactUnavailable is returned when no SMTP account is configured.
var ErrContactUnavailable = errors.New("email service is not configured")

// Mailer delivers contact page messages.
type Mailer interface {
	SendContactEmail(data email.ContactEmailData) error
	IsConfigured() bool
}

type contactUsecase struct {
	mailer Mailer
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(mailer Mailer) domain.ContactUsecase {
	return &contactUsecase{
		mailer: mailer,
	}
}

func (uc *contactUsecase) Available() bool {
	return uc.mailer != nil && uc.mailer.IsConfigured()
}

// SendContactMessage validates the contact request and sends the email
func (uc *contactUsecase) SendContactMessage(ctx context.Context, req *domain.ContactRequest) error {
	data := email.ContactEmailData{
		SenderName:  strings.TrimSpace(req.Name),
		SenderEmail: strings.TrimSpace(req.Email),
		Subject:     strings.TrimSpace(req.Subject),
		Message:     strings.TrimSpace(req.Message),
	}
	switch {
	case data.SenderName == "":
		return fmt.Errorf("name is required")
	case data.SenderEmail == "":
		return fmt.Errorf("email is required")
	case data.Subject == "":
		return fmt.Errorf("subject is required")
	case data.Message == "":
		return fmt.Errorf("message is required")
	}

	if !uc.Available() {
		return ErrContactUnavailable
	}

	if err := uc.mailer.SendContactEmail(data); err != nil {
		return fmt.Errorf("failed to send contact email: %w", err)
	}
	return nil
}
