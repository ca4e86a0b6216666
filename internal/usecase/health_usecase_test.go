package usecase_test

import (
	"context"
	"testing"
	"time"

	"go-hr-website/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestHealthUsecase(t *testing.T) {
	sessions := usecase.NewSessionStore(time.Hour, func() *usecase.CareerForm {
		return usecase.NewCareerForm(nil, nil, nil)
	})
	sessions.Form("a")

	report := usecase.NewHealthUsecase(sessions, nil, "noop", func() bool { return true }).Check(context.Background())
	assert.Equal(t, map[string]string{
		"status":   "ok",
		"scanner":  "noop",
		"redis":    "disabled",
		"contact":  "enabled",
		"sessions": "1",
	}, report)
}
