// Package alert shows user-facing error messages with de-duplication:
// identical messages within the cooldown window are suppressed, so several
// concurrent requests failing with the same cause produce a single alert.
package alert

import (
	"sync"
	"time"

	"github.com/beantz/labersaler/internal/client/api"
)

// DefaultWindow is the cooldown during which a repeated message is dropped.
const DefaultWindow = 5 * time.Second

// Handler receives the messages that pass the throttle.
type Handler func(msg string)

// Notifier owns its throttle state; construct one per app (or per test)
// instead of sharing a package-level instance.
type Notifier struct {
	mu     sync.Mutex
	window time.Duration
	last   string
	lastAt time.Time
	out    Handler

	// now is a test seam for the clock.
	now func() time.Time
}

// NewNotifier builds a Notifier delivering messages to out.
// A non-positive window falls back to DefaultWindow.
func NewNotifier(window time.Duration, out Handler) *Notifier {
	if window <= 0 {
		window = DefaultWindow
	}
	return &Notifier{window: window, out: out, now: time.Now}
}

// Notify derives the display message from err and shows it unless the same
// message was already shown within the window. Reports whether the alert
// was actually displayed.
func (n *Notifier) Notify(err error) bool {
	return n.NotifyMessage(api.UserMessage(err))
}

// NotifyMessage shows msg, applying the same suppression rule as Notify.
func (n *Notifier) NotifyMessage(msg string) bool {
	n.mu.Lock()
	now := n.now()
	if msg == n.last && now.Sub(n.lastAt) < n.window {
		n.mu.Unlock()
		return false
	}
	n.last = msg
	n.lastAt = now
	n.mu.Unlock()

	n.out(msg)
	return true
}
