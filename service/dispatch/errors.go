package dispatch

import (
	"errors"
	"fmt"
)

// TransportError is raised by the networking layer itself: the request could
// not be built or sent, the connection failed, or the server answered with a
// non-2xx status. StatusCode is set only when a response was received.
type TransportError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("transport error: %s: HTTP %d: %v", e.URL, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("transport error: %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HasResponse reports whether the server actually answered.
func (e *TransportError) HasResponse() bool {
	return e.StatusCode != 0
}

// Classify maps a failure value onto an Outcome. Transport errors win over
// generic errors, and values that are not errors at all (for example a
// recovered panic payload) are unknown.
func Classify(v any) Outcome {
	switch err := v.(type) {
	case nil:
		return UnknownFailure{}
	case error:
		var te *TransportError
		if errors.As(err, &te) {
			f := TransportFailure{Reason: te.Err.Error()}
			if te.HasResponse() {
				f.StatusCode = te.StatusCode
				f.HasResponse = true
			}
			return f
		}
		return GenericFailure{Reason: err.Error()}
	default:
		return UnknownFailure{}
	}
}
