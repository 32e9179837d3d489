// Package notify is the single-shot user notification mechanism. Every
// user-visible success or failure goes through a Notifier; logging only
// supplements it.
package notify

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Severity classifies a notification.
type Severity string

// Notification severities.
const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
)

// Notification is one user-facing message.
type Notification struct {
	ID       string    `json:"id"`
	Severity Severity  `json:"severity"`
	Message  string    `json:"message"`
	At       time.Time `json:"at"`
}

// Notifier delivers notifications to the user.
type Notifier interface {
	Notify(n Notification)
}

// New builds a notification with a fresh id and timestamp.
func New(severity Severity, format string, args ...any) Notification {
	return Notification{
		ID:       uuid.NewString(),
		Severity: severity,
		Message:  fmt.Sprintf(format, args...),
		At:       time.Now(),
	}
}

// Info sends an info notification through n.
func Info(n Notifier, format string, args ...any) {
	n.Notify(New(SeverityInfo, format, args...))
}

// Success sends a success notification through n.
func Success(n Notifier, format string, args ...any) {
	n.Notify(New(SeveritySuccess, format, args...))
}

// Error sends an error notification through n.
func Error(n Notifier, format string, args ...any) {
	n.Notify(New(SeverityError, format, args...))
}

// Console writes notifications to the global zap logger. It is the CLI's
// notifier.
type Console struct{}

// Notify implements Notifier.
func (Console) Notify(n Notification) {
	log := zap.L().Named("notify")
	switch n.Severity {
	case SeverityError:
		log.Error(n.Message, zap.String("notification_id", n.ID))
	default:
		log.Info(n.Message, zap.String("severity", string(n.Severity)), zap.String("notification_id", n.ID))
	}
}

// Feed retains delivered notifications in order. The dashboard server
// exposes it as the browser's notification feed; tests use it to assert on
// exactly which messages a workflow produced.
type Feed struct {
	mu    sync.Mutex
	items []Notification
	limit int
}

// NewFeed creates a feed retaining at most limit notifications (0 means
// unbounded).
func NewFeed(limit int) *Feed {
	return &Feed{limit: limit}
}

// Notify implements Notifier.
func (f *Feed) Notify(n Notification) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = append(f.items, n)
	if f.limit > 0 && len(f.items) > f.limit {
		f.items = f.items[len(f.items)-f.limit:]
	}
}

// All returns the retained notifications, oldest first.
func (f *Feed) All() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.items))
	copy(out, f.items)
	return out
}

// Multi fans a notification out to several notifiers.
type Multi []Notifier

// Notify implements Notifier.
func (m Multi) Notify(n Notification) {
	for _, target := range m {
		target.Notify(n)
	}
}
