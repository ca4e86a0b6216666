package usecase_test

import (
	"testing"
	"time"

	"go-hr-website/internal/domain"
	"go-hr-website/internal/usecase"

	"github.com/stretchr/testify/assert"
)

func TestNotifier(t *testing.T) {
	t.Run("Should start hidden", func(t *testing.T) {
		n := usecase.NewNotifier(&fakeClock{}, 0)
		assert.False(t, n.State().Visible)
	})

	t.Run("Should hide after the timeout", func(t *testing.T) {
		clock := &fakeClock{}
		n := usecase.NewNotifier(clock, 6*time.Second)

		n.Show("Application submitted successfully!", domain.SeveritySuccess)
		assert.Equal(t, domain.Notification{
			Visible:  true,
			Message:  "Application submitted successfully!",
			Severity: domain.SeveritySuccess,
		}, n.State())

		clock.Advance(5999 * time.Millisecond)
		assert.True(t, n.State().Visible)

		clock.Advance(time.Millisecond)
		assert.False(t, n.State().Visible)
	})

	t.Run("Should hide immediately on dismiss and not fire later", func(t *testing.T) {
		clock := &fakeClock{}
		n := usecase.NewNotifier(clock, 6*time.Second)

		n.Show("API Error. Please try again later.", domain.SeverityError)
		n.Dismiss()
		assert.False(t, n.State().Visible)

		clock.Advance(10 * time.Second)
		assert.False(t, n.State().Visible)
	})

	t.Run("Should restart the timeout when a new message is shown", func(t *testing.T) {
		clock := &fakeClock{}
		n := usecase.NewNotifier(clock, 6*time.Second)

		n.Show("first", domain.SeverityError)
		clock.Advance(4 * time.Second)
		n.Show("second", domain.SeveritySuccess)

		clock.Advance(4 * time.Second)
		state := n.State()
		assert.True(t, state.Visible)
		assert.Equal(t, "second", state.Message)
		assert.Equal(t, domain.SeveritySuccess, state.Severity)

		clock.Advance(2 * time.Second)
		assert.False(t, n.State().Visible)
	})

	t.Run("Should default to six seconds", func(t *testing.T) {
		clock := &fakeClock{}
		n := usecase.NewNotifier(clock, 0)

		n.Show("msg", domain.SeveritySuccess)
		clock.Advance(usecase.DefaultNotificationTimeout - time.Millisecond)
		assert.True(t, n.State().Visible)
		clock.Advance(time.Millisecond)
		assert.False(t, n.State().Visible)
	})
}
