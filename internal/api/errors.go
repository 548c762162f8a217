package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnauthorized marks a 401 from an authenticated call. The session
// layer clears stored credentials when it sees this.
var ErrUnauthorized = errors.New("authentication expired")

// APIError is a non-OK response carrying the server's error message.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

// errorFromResponse maps a failed response onto the error taxonomy,
// extracting the server's JSON error field when present.
func errorFromResponse(status int, body []byte) error {
	var payload struct {
		Error string `json:"error"`
	}
	_ = json.Unmarshal(body, &payload)

	if status == http.StatusUnauthorized {
		if payload.Error != "" {
			return fmt.Errorf("%w: %s", ErrUnauthorized, payload.Error)
		}
		return ErrUnauthorized
	}

	return &APIError{Status: status, Message: payload.Error}
}
