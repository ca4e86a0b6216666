package domain

// Severity of a notification.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is the status message shown after a submission attempt.
type Notification struct {
	Visible  bool     `json:"visible"`
	Message  string   `json:"message"`
	Severity Severity `json:"severity"`
}
