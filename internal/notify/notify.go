// Package notify keeps the stack of transient user notifications
package notify

import (
	"time"

	"github.com/google/uuid"
)

// DefaultTTL is how long a notification stays on screen
const DefaultTTL = 3 * time.Second

// Severity selects the colour of a notification
type Severity int

const (
	Info Severity = iota
	Success
	Error
)

func (s Severity) String() string {
	switch s {
	case Success:
		return "success"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Notification is one message on the stack
type Notification struct {
	ID       string
	Message  string
	Severity Severity
	Created  time.Time
}

// Center holds the active notifications, oldest first.
// It is owned by the UI loop and not safe for concurrent use.
type Center struct {
	ttl    time.Duration
	active []Notification
	now    func() time.Time
}

// NewCenter creates a center whose notifications expire after ttl
func NewCenter(ttl time.Duration) *Center {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Center{ttl: ttl, now: time.Now}
}

// TTL returns the display duration of each notification
func (c *Center) TTL() time.Duration {
	return c.ttl
}

// Push adds a notification to the end of the stack
func (c *Center) Push(message string, severity Severity) Notification {
	n := Notification{
		ID:       uuid.NewString(),
		Message:  message,
		Severity: severity,
		Created:  c.now(),
	}
	c.active = append(c.active, n)
	return n
}

// Dismiss removes a notification. Unknown or already dismissed ids are ignored.
func (c *Center) Dismiss(id string) bool {
	for i, n := range c.active {
		if n.ID == id {
			c.active = append(c.active[:i], c.active[i+1:]...)
			return true
		}
	}
	return false
}

// Active returns a copy of the stack, oldest first
func (c *Center) Active() []Notification {
	out := make([]Notification, len(c.active))
	copy(out, c.active)
	return out
}

// Len returns the number of visible notifications
func (c *Center) Len() int {
	return len(c.active)
}
