package usecase_test

import (
	"context"
	"sync"
	"time"

	"go-hr-website/internal/domain"
	"go-hr-website/internal/usecase"

	"github.com/stretchr/testify/mock"
)

type MockCareerAPI struct {
	mock.Mock
}

func (m *MockCareerAPI) SubmitApplication(ctx context.Context, form domain.ApplicationForm) domain.SubmissionResult {
	return m.Called(ctx, form).Get(0).(domain.SubmissionResult)
}

// fakeClock fires timers only when advanced.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

type fakeTimer struct {
	clock   *fakeClock
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) usecase.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{clock: c, at: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

// Advance moves time forward and runs the timers that came due.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []func()
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.at <= c.now {
			t.fired = true
			due = append(due, t.f)
		}
	}
	c.mu.Unlock()

	for _, f := range due {
		f()
	}
}

func validResume() *domain.ResumeFile {
	return &domain.ResumeFile{Filename: "cv.pdf", ContentType: "application/pdf", Data: []byte("%PDF-1.4 resume")}
}

func fillForm(form *usecase.CareerForm) {
	form.SetField(domain.FieldName, "Asha")
	form.SetField(domain.FieldPhone, "9999999999")
	form.SetField(domain.FieldEmail, "asha@example.com")
	form.SetField(domain.FieldPosition, "Recruiter")
	form.SetField(domain.FieldMessage, "Hello")
	form.SetResume(validResume())
}
