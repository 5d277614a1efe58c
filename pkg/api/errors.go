package api

import "fmt"

// genericErrorMessage is shown when the backend's error body carries no
// usable message.
const genericErrorMessage = "request failed"

// APIError is a non-2xx response with the backend's structured error
// envelope: {"error": {"code": ..., "message": ...}}. Message is always
// populated, falling back to a generic text when the body is unusable.
type APIError struct {
	Status  int
	Code    string
	Message string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s (%s)", e.Message, e.Code)
	}
	return e.Message
}

// NetworkError is a transport-level failure: the request never produced
// an HTTP response. Callers show a generic connectivity message for it.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
