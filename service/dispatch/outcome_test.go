package dispatch

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	withStatus := &TransportError{URL: "http://x", StatusCode: 502, Err: errors.New("Request failed with status code 502")}
	noResponse := &TransportError{URL: "http://x", Err: errors.New("connection refused")}

	tests := []struct {
		name string
		in   any
		want Outcome
		msg  string
	}{
		{"transport with response", withStatus,
			TransportFailure{Reason: "Request failed with status code 502", StatusCode: 502, HasResponse: true},
			"Failed to connect to Slicer: Request failed with status code 502. Server responded with status 502."},
		{"transport without response", noResponse,
			TransportFailure{Reason: "connection refused"},
			"Failed to connect to Slicer: connection refused."},
		{"wrapped transport", fmt.Errorf("sending: %w", noResponse),
			TransportFailure{Reason: "connection refused"},
			"Failed to connect to Slicer: connection refused."},
		{"plain error", errors.New("boom"), GenericFailure{Reason: "boom"}, "An error occurred: boom"},
		{"string", "boom", UnknownFailure{}, UnknownMessage},
		{"int", 42, UnknownFailure{}, UnknownMessage},
		{"nil", nil, UnknownFailure{}, UnknownMessage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.msg, got.Message())
			assert.True(t, IsFailure(got))
		})
	}
}

func TestSuccessMessage(t *testing.T) {
	assert.Equal(t, SuccessMessage, Success{}.Message())
	assert.False(t, IsFailure(Success{Body: "OK", HasBody: true}))
}
