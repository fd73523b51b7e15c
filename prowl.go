package prowl

import (
	"context"
	"sync"
)

var (
	defaultClientOnce sync.Once
	defaultClient     *Client
)

// DefaultClient returns the process-wide client used by the package-level
// [Verify] and [Post] functions. It is created with default options on
// first use. Callers needing their own configuration, or separate quota
// tracking per account, should construct clients with [New] instead.
func DefaultClient() *Client {
	defaultClientOnce.Do(func() {
		defaultClient = New()
	})
	return defaultClient
}

// Verify checks an API key using [DefaultClient]. See [Client.Verify].
func Verify(ctx context.Context, key string) (bool, error) {
	return DefaultClient().Verify(ctx, key)
}

// Post sends a one-off notification using [DefaultClient]. See [Client.Post].
func Post(ctx context.Context, key, message string, opts ...PostOption) error {
	return DefaultClient().Post(ctx, key, message, opts...)
}
