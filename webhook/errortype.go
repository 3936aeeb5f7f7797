package webhook

import "fmt"

/* ErrorType classifies why a delivery attempt failed
 * InvalidResponse is reserved for response-body validation and is not
 * produced by the transport itself
 */
type ErrorType int

const (
	Timeout ErrorType = iota + 1
	Network
	HTTPError
	InvalidResponse
)

// String returns the string representation of the error type
func (e ErrorType) String() string {
	switch e {
	case Timeout:
		return "timeout"
	case Network:
		return "network"
	case HTTPError:
		return "http_error"
	case InvalidResponse:
		return "invalid_response"
	default:
		return "unknown"
	}
}

// NewErrorType creates an ErrorType from a string
func NewErrorType(str string) ErrorType {
	switch str {
	case "timeout":
		return Timeout
	case "network":
		return Network
	case "http_error":
		return HTTPError
	case "invalid_response":
		return InvalidResponse
	default:
		return Network
	}
}

// Validate checks if the error type is valid
func (e ErrorType) Validate() error {
	if e < Timeout || e > InvalidResponse {
		return fmt.Errorf("invalid error type: %d", e)
	}
	return nil
}
