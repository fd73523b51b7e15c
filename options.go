package prowl

import (
	"strings"
	"time"
)

type Option func(*Options)

type Options struct {
	baseURL       string
	timeout       time.Duration
	userAgent     string
	requestLogger RequestLogger
}

func newClientOptions() *Options {
	return &Options{
		baseURL:       DefaultBaseURL,
		timeout:       30 * time.Second,
		userAgent:     "prowl-go-client/1.0",
		requestLogger: &NoopLogger{},
	}
}

// WithBaseURL overrides the API base URL. Intended for tests against stub
// servers; the production endpoint never changes. Empty values are ignored.
func WithBaseURL(baseURL string) Option {
	return func(o *Options) {
		baseURL = strings.TrimSpace(baseURL)

		if baseURL == "" {
			return
		}

		o.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTimeout sets the per-request timeout. The API has no documented
// timeout behaviour of its own, so the client enforces one to keep a
// blocking call from hanging indefinitely. Non-positive values are ignored.
func WithTimeout(timeout time.Duration) Option {
	return func(o *Options) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
// Empty values are ignored.
func WithUserAgent(userAgent string) Option {
	return func(o *Options) {
		userAgent = strings.TrimSpace(userAgent)

		if userAgent != "" {
			o.userAgent = userAgent
		}
	}
}

// WithRequestLogger sets the logger used for request diagnostics and for
// reporting asynchronous log-handler failures. Nil values are ignored.
func WithRequestLogger(logger RequestLogger) Option {
	return func(o *Options) {
		if logger != nil {
			o.requestLogger = logger
		}
	}
}
