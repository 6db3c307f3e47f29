package dashapi

import (
	"errors"
	"fmt"

	"github.com/brndconsulting/nba-ui/model"
)

// ErrUnauthorized signals session/credential expiry (HTTP 401). Callers
// surface it as a reconnect affordance, not a generic error.
var ErrUnauthorized = errors.New("backend session expired")

// StatusError is a transport-level failure: the backend answered with a
// non-2xx status.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status code from backend: %d", e.Code)
}

// ValidationError is a contract violation: the body parsed as JSON but did
// not satisfy the envelope schema. Field is a JSON path into the response.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid envelope: %s", e.Message)
	}
	return fmt.Sprintf("invalid envelope at %s: %s", e.Field, e.Message)
}

// DeclaredError is a backend-declared failure: success=false with a
// populated errors list. The first message is what users see; the rest is
// kept for diagnostics.
type DeclaredError struct {
	Errors []model.ErrorDetail
}

func (e *DeclaredError) Error() string {
	if len(e.Errors) == 0 {
		return "backend reported failure with no error details"
	}
	return e.Errors[0].Message
}

// Code returns the first declared error code, if any.
func (e *DeclaredError) Code() string {
	if len(e.Errors) == 0 {
		return ""
	}
	return e.Errors[0].Code
}
