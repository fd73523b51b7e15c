package prowl

import "fmt"

// MalformedResponseError indicates that the server response violated the
// documented envelope contract: unparseable XML, an unexpected root tag,
// a wrong number of children, an unknown status tag, a missing response
// code, a non-integer attribute, or an error element with no message.
//
// It is always fatal to the call. A malformed response means the wire
// contract has drifted and no recovery is attempted.
type MalformedResponseError struct {
	Reason string
}

func (e *MalformedResponseError) Error() string {
	return "prowl: malformed response: " + e.Reason
}

// ServiceError is returned when the API reports an error status that the
// calling method does not classify further, e.g. by [Client.Post] whenever
// the status is not success, or by [Client.Verify] for any error other
// than the invalid-key signal. Text carries the server's message,
// lower-cased.
type ServiceError struct {
	Code int
	Text string
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("prowl: service error %d: %s", e.Code, e.Text)
}

// TransportError wraps a network-level failure: DNS, connection, or
// timeout errors that produced no parseable response body. HTTP error
// status codes are not transport errors; their bodies are parsed as
// normal envelopes first.
type TransportError struct {
	Op  string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("prowl: %s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
