package prowl

import (
	"fmt"
	"strconv"
	"strings"
)

// Defaults applied to zero-valued [Notification] fields before sending.
const (
	DefaultPriority = 0
	DefaultApp      = "go:prowl"
	DefaultEvent    = "default"
)

// Field length limits documented by the API. They are enforced client-side
// with a descriptive error so oversized input fails fast instead of
// travelling to the server to be rejected there.
const (
	maxAppLen     = 256
	maxEventLen   = 1024
	maxMessageLen = 10000
)

// Notification is one outbound message. Keys identifies the receiving
// devices; multiple keys are submitted in a single request. Priority is
// nominally -2 (very low) to 2 (emergency) and is not validated
// client-side, matching the server's authority over the range.
// ProviderKey is only sent when set and only useful to whitelisted
// providers.
type Notification struct {
	Keys        []string
	Message     string
	Priority    int
	App         string
	Event       string
	ProviderKey string
}

// PostOption overrides a single [Notification] field. Options are applied
// in order, so later options win; [Notifier] relies on this to layer
// per-call overrides over its bound defaults.
type PostOption func(*Notification)

// WithPriority sets the notification priority (-2..2, 0 is normal).
func WithPriority(priority int) PostOption {
	return func(n *Notification) {
		n.Priority = priority
	}
}

// WithApp sets the application identifier displayed with the notification.
func WithApp(app string) PostOption {
	return func(n *Notification) {
		n.App = app
	}
}

// WithEvent sets the event identifier displayed with the notification.
func WithEvent(event string) PostOption {
	return func(n *Notification) {
		n.Event = event
	}
}

// WithProviderKey sets the provider API key for whitelisted providers.
func WithProviderKey(key string) PostOption {
	return func(n *Notification) {
		n.ProviderKey = key
	}
}

// WithKeys replaces the destination API keys, allowing a single request to
// reach multiple devices.
func WithKeys(keys ...string) PostOption {
	return func(n *Notification) {
		n.Keys = keys
	}
}

// withDefaults returns a copy with zero-valued fields replaced by the
// package defaults. The receiver is never mutated.
func (n Notification) withDefaults() Notification {
	if n.App == "" {
		n.App = DefaultApp
	}
	if n.Event == "" {
		n.Event = DefaultEvent
	}
	return n
}

func (n Notification) validate() error {
	if len(n.Keys) == 0 {
		return fmt.Errorf("at least one API key is required")
	}
	for i, key := range n.Keys {
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("API key at index %d is empty", i)
		}
	}
	if len(n.App) > maxAppLen {
		return fmt.Errorf("application is %d characters, limit is %d", len(n.App), maxAppLen)
	}
	if len(n.Event) > maxEventLen {
		return fmt.Errorf("event is %d characters, limit is %d", len(n.Event), maxEventLen)
	}
	if len(n.Message) > maxMessageLen {
		return fmt.Errorf("message is %d characters, limit is %d", len(n.Message), maxMessageLen)
	}
	return nil
}

// formValues encodes the notification as the form fields of an add request.
func (n Notification) formValues() map[string]string {
	values := map[string]string{
		"apikey":      strings.Join(n.Keys, ","),
		"priority":    strconv.Itoa(n.Priority),
		"application": n.App,
		"event":       n.Event,
		"description": n.Message,
	}
	if n.ProviderKey != "" {
		values["providerkey"] = n.ProviderKey
	}
	return values
}
