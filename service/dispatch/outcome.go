package dispatch

import "fmt"

const (
	SuccessMessage = "Script executed successfully in Slicer!"
	UnknownMessage = "An unexpected error occurred while sending the script."
)

// Outcome is the result of one dispatch. The set of implementations is
// closed: Success, TransportFailure, GenericFailure and UnknownFailure.
type Outcome interface {
	Message() string
	outcome()
}

type Success struct {
	// Body is the rendered response body, empty when HasBody is false.
	Body    string
	HasBody bool
}

type TransportFailure struct {
	Reason      string
	StatusCode  int // only meaningful when HasResponse is set
	HasResponse bool
}

type GenericFailure struct {
	Reason string
}

type UnknownFailure struct{}

func (Success) outcome()          {}
func (TransportFailure) outcome() {}
func (GenericFailure) outcome()   {}
func (UnknownFailure) outcome()   {}

func (Success) Message() string { return SuccessMessage }

func (f TransportFailure) Message() string {
	msg := fmt.Sprintf("Failed to connect to Slicer: %s.", f.Reason)
	if f.HasResponse {
		msg += fmt.Sprintf(" Server responded with status %d.", f.StatusCode)
	}
	return msg
}

func (f GenericFailure) Message() string {
	return "An error occurred: " + f.Reason
}

func (UnknownFailure) Message() string { return UnknownMessage }

// IsFailure reports whether o is any of the failure cases.
func IsFailure(o Outcome) bool {
	_, ok := o.(Success)
	return !ok
}
