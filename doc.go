// Package prowl provides a client for the Prowl push-notification API.
//
// The client wraps [github.com/go-resty/resty/v2] and exposes the two API
// operations: verifying an API key and posting a notification. Rate-limit
// metadata reported by the server is tracked per client and available via
// [Client.Quota].
//
// # Basic Usage
//
//	c := prowl.New()
//
//	if err := c.Post(ctx, key, "backup finished"); err != nil {
//	    log.Fatal(err)
//	}
//
//	remaining, ok := c.Quota().Remaining()
//
// For repeated sends with the same parameters, bind the defaults once:
//
//	n := prowl.NewNotifier(c, key,
//	    prowl.WithApp("backupd"),
//	    prowl.WithPriority(1),
//	)
//	err := n.Post(ctx, "restore started", prowl.WithEvent("restore"))
//
// One-off calls can use the package-level [Verify] and [Post], which share
// a lazily created [DefaultClient].
//
// # Configuration
//
// All configuration is supplied as [Option] functions passed to [New].
// Invalid values are silently ignored and the default is retained. The
// API key travels as a request field, never as a header or environment
// variable; there is no implicit credential discovery.
//
// # Errors
//
// Failures are classified into three types. [MalformedResponseError]
// means the response violated the documented XML envelope contract and is
// never recovered from. [ServiceError] means the server processed the
// request and rejected it; it carries the server's code and lower-cased
// message. [TransportError] means the request produced no parseable
// response at all. HTTP error statuses alone are not transport errors:
// the service reports failures in the response body, so 4xx/5xx bodies
// are parsed like any other response.
//
// # Logging
//
// Implement [RequestLogger] and supply it via [WithRequestLogger] to
// integrate with your logging library; [ZerologLogger] adapts a zerolog
// logger. The default [NoopLogger] discards all log output.
//
// In the other direction, [LogHandler] is an [log/slog.Handler] that
// forwards log records as notifications, optionally on a separate
// goroutine per record via [WithAsync].
package prowl
