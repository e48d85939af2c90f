package flippay

import "fmt"

// TransportError reports a call that did not complete or that came back with
// a non-success HTTP status. When a status was received, the response body is
// carried as raw text and is never parsed.
type TransportError struct {
	Op         string
	StatusCode int // zero when no response was received
	Body       string
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("flippay: %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("flippay: %s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}

func (e *TransportError) Unwrap() error { return e.Err }

// SchemaError reports a successful response whose body could not be decoded
// into the operation's declared shape. Distinct from TransportError so
// callers can tell "the service rejected the call" from "the service
// returned something this client does not understand".
type SchemaError struct {
	Op  string
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("flippay: %s: decoding response: %v", e.Op, e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }
