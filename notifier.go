package prowl

import (
	"context"
	"fmt"
)

// Notifier simplifies repeated posting with the same parameters. The API
// key is fixed for the notifier's lifetime; default notification fields
// are bound at construction and may be overridden per call.
type Notifier struct {
	client   *Client
	key      string
	defaults []PostOption
}

// NewNotifier binds a client, an API key, and default [PostOption] values.
//
//	n := prowl.NewNotifier(client, key,
//	    prowl.WithApp("backupd"),
//	    prowl.WithEvent("restore"),
//	)
func NewNotifier(client *Client, key string, defaults ...PostOption) *Notifier {
	return &Notifier{
		client:   client,
		key:      key,
		defaults: defaults,
	}
}

// Post sends a message with the bound defaults. Per-call overrides are
// applied after the defaults, so they win on conflict.
func (n *Notifier) Post(ctx context.Context, message string, overrides ...PostOption) error {
	if n == nil {
		return fmt.Errorf("prowl notifier is nil")
	}

	opts := make([]PostOption, 0, len(n.defaults)+len(overrides))
	opts = append(opts, n.defaults...)
	opts = append(opts, overrides...)

	return n.client.Post(ctx, n.key, message, opts...)
}
