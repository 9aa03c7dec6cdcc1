package client

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// ErrUnauthorized is surfaced for any 401 response. Callers must clear
// the session store and fall back to the login entry point.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound is surfaced when a detail fetch names a missing id. It is
// a screen state ("not found"), never fatal.
var ErrNotFound = errors.New("not found")

// RequestError covers every other server or transport failure. It is
// non-fatal and never retried automatically.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed (%d): %s", e.Status, e.Message)
}

// ValidationError marks a missing required form field. No network call
// is made when one is raised.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// apiError extracts the server's message field, falling back to the
// HTTP status line.
func apiError(resp *resty.Response) error {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		msg = body.Message
		if msg == "" {
			msg = body.Error
		}
	}
	if msg == "" {
		msg = resp.Status()
	}
	return &RequestError{Status: resp.StatusCode(), Message: msg}
}
