package usecase

import (
	"sync"
	"time"

	"go-hr-website/internal/domain"
)

// DefaultNotificationTimeout is how long a notification stays visible.
const DefaultNotificationTimeout = 6 * time.Second

// Timer is the subset of *time.Timer the notifier needs.
type Timer interface {
	Stop() bool
}

// Clock schedules delayed callbacks. RealClock uses time.AfterFunc.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type RealClock struct{}

func (RealClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// Notifier shows one status message at a time and hides it after a
// timeout or on dismissal, whichever comes first.
type Notifier struct {
	mu      sync.Mutex
	clock   Clock
	timeout time.Duration
	state   domain.Notification
	timer   Timer
	gen     uint64 // bumped on every Show/Dismiss; stale timers compare against it
}

func NewNotifier(clock Clock, timeout time.Duration) *Notifier {
	if clock == nil {
		clock = RealClock{}
	}
	if timeout <= 0 {
		timeout = DefaultNotificationTimeout
	}
	return &Notifier{clock: clock, timeout: timeout}
}

// Show makes the notification visible, overwriting any message already
// shown and restarting the timeout.
func (n *Notifier) Show(message string, severity domain.Severity) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopTimerLocked()
	n.gen++
	gen := n.gen
	n.state = domain.Notification{Visible: true, Message: message, Severity: severity}
	n.timer = n.clock.AfterFunc(n.timeout, func() { n.expire(gen) })
}

// Dismiss hides the notification and cancels the pending auto-hide.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.stopTimerLocked()
	n.gen++
	n.state.Visible = false
}

// State returns the current notification.
func (n *Notifier) State() domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Close stops the pending timer without changing the state.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.stopTimerLocked()
}

func (n *Notifier) expire(gen uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	// A timer that fired after Stop lost the race with a newer Show/Dismiss.
	if gen != n.gen {
		return
	}
	n.timer = nil
	n.state.Visible = false
}

func (n *Notifier) stopTimerLocked() {
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
