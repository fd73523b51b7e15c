package prowl

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the public API endpoint.
const DefaultBaseURL = "https://prowl.weks.net/publicapi"

// Client is a Prowl API client. Each call is a blocking request/response
// round trip; the zero-configuration client returned by [New] is ready to
// use immediately. Quota metadata observed in responses is tracked per
// client, so clients configured for different accounts never share
// bookkeeping.
type Client struct {
	baseURL string
	options *Options
	rest    *resty.Client
	quota   Quota
}

// New creates a client. Configuration is supplied as [Option] functions;
// invalid option values are silently ignored and the default is retained.
func New(opts ...Option) *Client {
	options := newClientOptions()
	for _, opt := range opts {
		opt(options)
	}

	rest := resty.New().
		SetBaseURL(options.baseURL).
		SetTimeout(options.timeout).
		SetHeader("User-Agent", options.userAgent).
		SetHeader("Accept", "application/xml")

	return &Client{
		baseURL: options.baseURL,
		options: options,
		rest:    rest,
	}
}

// Quota returns the rate-limit metadata most recently reported to this
// client. Its accessors report false until the first response carrying
// quota attributes has been observed.
func (c *Client) Quota() *Quota {
	return &c.quota
}

// Verify checks whether an API key is valid. It returns false only for the
// API's documented invalid-key signal (code 401 with the exact text
// "Invalid API key"); every other error status is returned as a
// *ServiceError, since a rate limit or server fault says nothing about the
// key itself.
//
// The official docs advise against calling Verify before every post; it
// costs an API call, and an invalid key surfaces as the appropriate error
// on the post anyway. Use it when a user first enters a key.
func (c *Client) Verify(ctx context.Context, key string) (bool, error) {
	if c == nil {
		return false, fmt.Errorf("prowl client is nil")
	}
	if strings.TrimSpace(key) == "" {
		return false, fmt.Errorf("API key cannot be empty")
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetQueryParam("apikey", key).
		Get("/verify")

	envelope, err := c.envelope("GET verify", resp, err)
	if err != nil {
		return false, err
	}

	if envelope.Status == StatusSuccess {
		return true, nil
	}

	if envelope.Code() == 401 && envelope.Text == "Invalid API key" {
		return false, nil
	}

	return false, &ServiceError{Code: envelope.Code(), Text: strings.ToLower(envelope.Text)}
}

// Post sends a notification to a single API key. Optional fields are set
// with [PostOption] values; unset fields take the package defaults. A nil
// return means the server accepted the notification.
func (c *Client) Post(ctx context.Context, key, message string, opts ...PostOption) error {
	notification := Notification{
		Keys:    []string{key},
		Message: message,
	}
	for _, opt := range opts {
		opt(&notification)
	}

	return c.PostNotification(ctx, notification)
}

// PostNotification sends a fully specified [Notification], allowing
// multiple destination keys in one request. The notification value is not
// mutated. Field length limits are enforced before any bytes are sent.
func (c *Client) PostNotification(ctx context.Context, notification Notification) error {
	if c == nil {
		return fmt.Errorf("prowl client is nil")
	}

	notification = notification.withDefaults()
	if err := notification.validate(); err != nil {
		return err
	}

	resp, err := c.rest.R().
		SetContext(ctx).
		SetFormData(notification.formValues()).
		Post("/add")

	envelope, err := c.envelope("POST add", resp, err)
	if err != nil {
		return err
	}

	if envelope.Status != StatusSuccess {
		return &ServiceError{Code: envelope.Code(), Text: strings.ToLower(envelope.Text)}
	}

	return nil
}

// envelope converts one round-trip result into a parsed envelope. The API
// reports failures in the response body regardless of HTTP status, so
// error statuses are parsed like any other response; only a failure that
// produced no response at all becomes a *TransportError. Quota metadata is
// recorded from every envelope that parses, success or error.
func (c *Client) envelope(op string, resp *resty.Response, err error) (*Envelope, error) {
	if err != nil {
		c.options.requestLogger.Errorf("%s request failed: %v", op, err)
		return nil, &TransportError{Op: op, Err: err}
	}

	envelope, err := parseEnvelope(resp.Body())
	if err != nil {
		c.options.requestLogger.Errorf("%s returned HTTP %d: %v", op, resp.StatusCode(), err)
		return nil, err
	}

	c.quota.update(envelope.Attributes)
	c.options.requestLogger.Debugf("%s: status=%s code=%d", op, envelope.Status, envelope.Code())

	return envelope, nil
}
