package prowl

import (
	"errors"
	"strings"
	"testing"
)

func TestParseEnvelope_Success(t *testing.T) {
	t.Parallel()

	envelope, err := parseEnvelope([]byte(successXML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if envelope.Status != StatusSuccess {
		t.Errorf("expected status=success, got %s", envelope.Status)
	}

	if envelope.Code() != 200 {
		t.Errorf("expected code=200, got %d", envelope.Code())
	}

	if envelope.Attributes["remaining"] != 999 {
		t.Errorf("expected remaining=999, got %d", envelope.Attributes["remaining"])
	}

	if envelope.Attributes["resetdate"] != 1700000000 {
		t.Errorf("expected resetdate=1700000000, got %d", envelope.Attributes["resetdate"])
	}

	if envelope.Text != "" {
		t.Errorf("expected empty text, got %q", envelope.Text)
	}
}

func TestParseEnvelope_ErrorTextVerbatim(t *testing.T) {
	t.Parallel()

	// The parser preserves the server text exactly; lower-casing happens
	// only when the facade raises an error from it.
	envelope, err := parseEnvelope([]byte(invalidKeyXML))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if envelope.Status != StatusError {
		t.Errorf("expected status=error, got %s", envelope.Status)
	}

	if envelope.Text != "Invalid API key" {
		t.Errorf("expected verbatim text, got %q", envelope.Text)
	}
}

func TestParseEnvelope_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		raw    string
		reason string
	}{
		{"not xml", "remaining=999", "invalid xml"},
		{"wrong root tag", `<growl><success code="200"/></growl>`, `unexpected tag "growl"`},
		{"zero children", `<prowl></prowl>`, "too many children"},
		{"two children", `<prowl><success code="200"/><error code="500">x</error></prowl>`, "too many children"},
		{"unknown status", `<prowl><bogus code="200"/></prowl>`, `unknown status "bogus"`},
		{"missing code", `<prowl><success remaining="999"/></prowl>`, "no response code"},
		{"empty error text", `<prowl><error code="500"></error></prowl>`, "no error message with code 500"},
		{"self-closed error", `<prowl><error code="401"/></prowl>`, "no error message with code 401"},
		{"non-integer attribute", `<prowl><success code="200" remaining="lots"/></prowl>`, `non-integer attribute remaining="lots"`},
		{"non-integer code with text", `<prowl><error code="teapot">I'm a teapot</error></prowl>`, `non-integer attribute code="teapot"`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parseEnvelope([]byte(tt.raw))

			if err == nil {
				t.Fatal("expected error for malformed envelope")
			}

			var malformedErr *MalformedResponseError
			if !errors.As(err, &malformedErr) {
				t.Fatalf("expected *MalformedResponseError, got %T: %v", err, err)
			}

			if !strings.Contains(malformedErr.Reason, tt.reason) {
				t.Errorf("expected reason to contain %q, got %q", tt.reason, malformedErr.Reason)
			}
		})
	}
}

func TestParseEnvelope_SurroundingWhitespace(t *testing.T) {
	t.Parallel()

	raw := "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n<prowl>\n<success code=\"200\" remaining=\"975\" resetdate=\"1256310030\" />\n</prowl>\n"

	envelope, err := parseEnvelope([]byte(raw))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if envelope.Attributes["remaining"] != 975 {
		t.Errorf("expected remaining=975, got %d", envelope.Attributes["remaining"])
	}
}
