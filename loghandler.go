package prowl

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// LogFormatter renders a log record into the notification message body.
type LogFormatter func(slog.Record) string

// LogHandlerOption configures a [LogHandler].
type LogHandlerOption func(*LogHandler)

// WithLevel sets the minimum record level the handler forwards.
// The default is [slog.LevelInfo].
func WithLevel(level slog.Leveler) LogHandlerOption {
	return func(h *LogHandler) {
		if level != nil {
			h.level = level
		}
	}
}

// WithAsync makes the handler post each record on its own goroutine. The
// emitting goroutine does not wait for completion, and there is no
// ordering guarantee between posts. Failures are reported through the
// client's [RequestLogger] rather than surfaced to the log caller.
func WithAsync() LogHandlerOption {
	return func(h *LogHandler) {
		h.async = true
	}
}

// WithAppTemplate sets a template for the notification's application
// field, expanded against the record's field mapping. References use
// $name or ${name}; available names are "level", "message", and "time",
// plus every attribute key on the record (group-qualified with dots).
// If the template references a name the record does not carry, the
// literal template string is sent instead.
func WithAppTemplate(template string) LogHandlerOption {
	return func(h *LogHandler) {
		h.appTemplate = template
	}
}

// WithEventTemplate sets a template for the notification's event field.
// Expansion rules match [WithAppTemplate].
func WithEventTemplate(template string) LogHandlerOption {
	return func(h *LogHandler) {
		h.eventTemplate = template
	}
}

// WithFormatter sets the function that renders a record into the message
// body. The default renders the message followed by space-separated
// key=value attribute pairs.
func WithFormatter(format LogFormatter) LogHandlerOption {
	return func(h *LogHandler) {
		if format != nil {
			h.format = format
		}
	}
}

// LogHandler is an [slog.Handler] that forwards log records as push
// notifications. It holds a [Notifier] and delegates sending to it rather
// than extending any logging type, so the handler composes with whatever
// pipeline the caller already runs, e.g. alongside a terminal handler
// via a fan-out.
//
//	notifier := prowl.NewNotifier(client, key, prowl.WithApp("backupd"))
//	logger := slog.New(prowl.NewLogHandler(notifier,
//	    prowl.WithLevel(slog.LevelError),
//	    prowl.WithEventTemplate("$level"),
//	))
type LogHandler struct {
	notifier      *Notifier
	level         slog.Leveler
	async         bool
	appTemplate   string
	eventTemplate string
	format        LogFormatter
	prefix        string
	fields        map[string]string
}

var _ slog.Handler = (*LogHandler)(nil)

// NewLogHandler creates a handler that posts records through notifier.
func NewLogHandler(notifier *Notifier, opts ...LogHandlerOption) *LogHandler {
	h := &LogHandler{
		notifier: notifier,
		level:    slog.LevelInfo,
		format:   defaultLogFormat,
		fields:   map[string]string{},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *LogHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *LogHandler) Handle(ctx context.Context, record slog.Record) error {
	fields := h.recordFields(record)

	var overrides []PostOption
	if h.appTemplate != "" {
		overrides = append(overrides, WithApp(expandTemplate(h.appTemplate, fields)))
	}
	if h.eventTemplate != "" {
		overrides = append(overrides, WithEvent(expandTemplate(h.eventTemplate, fields)))
	}

	message := h.format(record)

	if h.async {
		ctx := context.WithoutCancel(ctx)
		go func() {
			if err := h.notifier.Post(ctx, message, overrides...); err != nil {
				h.notifier.client.options.requestLogger.Warnf("async log post failed: %v", err)
			}
		}()
		return nil
	}

	return h.notifier.Post(ctx, message, overrides...)
}

func (h *LogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := h.clone()
	for _, attr := range attrs {
		addAttrField(clone.fields, clone.prefix, attr)
	}
	return clone
}

func (h *LogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := h.clone()
	clone.prefix = h.prefix + name + "."
	return clone
}

func (h *LogHandler) clone() *LogHandler {
	clone := *h
	clone.fields = make(map[string]string, len(h.fields))
	for k, v := range h.fields {
		clone.fields[k] = v
	}
	return &clone
}

// recordFields builds the mapping that app/event templates expand against:
// the handler's pre-bound attributes, the record's own attributes, and the
// built-in level, message, and time names.
func (h *LogHandler) recordFields(record slog.Record) map[string]string {
	fields := make(map[string]string, len(h.fields)+record.NumAttrs()+3)
	for k, v := range h.fields {
		fields[k] = v
	}
	record.Attrs(func(attr slog.Attr) bool {
		addAttrField(fields, h.prefix, attr)
		return true
	})
	fields["level"] = record.Level.String()
	fields["message"] = record.Message
	fields["time"] = record.Time.Format(time.RFC3339)
	return fields
}

func addAttrField(fields map[string]string, prefix string, attr slog.Attr) {
	value := attr.Value.Resolve()
	if value.Kind() == slog.KindGroup {
		for _, member := range value.Group() {
			addAttrField(fields, prefix+attr.Key+".", member)
		}
		return
	}
	if attr.Key == "" {
		return
	}
	fields[prefix+attr.Key] = value.String()
}

// expandTemplate substitutes $name and ${name} references from fields.
// A reference to a missing name makes the whole expansion fall back to
// the literal template, so a half-expanded identifier never reaches the
// notification.
func expandTemplate(template string, fields map[string]string) string {
	missing := false
	expanded := os.Expand(template, func(name string) string {
		value, ok := fields[name]
		if !ok {
			missing = true
			return ""
		}
		return value
	})
	if missing {
		return template
	}
	return expanded
}

func defaultLogFormat(record slog.Record) string {
	var b strings.Builder
	b.WriteString(record.Message)
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Key != "" {
			fmt.Fprintf(&b, " %s=%s", attr.Key, attr.Value.Resolve().String())
		}
		return true
	})
	return b.String()
}
