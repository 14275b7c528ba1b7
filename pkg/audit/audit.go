package audit

import (
	"github.com/sirupsen/logrus"
)

// Event is a security-relevant occurrence worth a structured log line.
type Event interface {
	// Message is the human-readable summary of the event.
	Message() string
	// Fields are the structured attributes of the event.
	Fields() logrus.Fields
	// Succeeded reports whether the event describes a successful action.
	Succeeded() bool
}

var logger = logrus.StandardLogger()

// SetLogger replaces the logger used for audit events. Intended for tests.
func SetLogger(l *logrus.Logger) {
	logger = l
}

// Log emits an audit event. Failures are logged at warn level so operators
// can alert on them separately from routine activity.
func Log(e Event) {
	entry := logger.WithFields(e.Fields())
	if e.Succeeded() {
		entry.Info(e.Message())
		return
	}
	entry.Warn(e.Message())
}
