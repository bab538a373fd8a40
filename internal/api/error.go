package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// Error is an application-level rejection from the backend (4xx/5xx with an
// optional message body).
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api: status %d", e.Status)
}

// decodeError reads a failure body of the form {"message": ...} or
// {"error": ...} and passes the message through verbatim.
func decodeError(resp *http.Response) error {
	var payload struct {
		Message string `json:"message"`
		Err     string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(data, &payload)
	msg := payload.Message
	if msg == "" {
		msg = payload.Err
	}
	return &Error{Status: resp.StatusCode, Message: msg}
}

// Message extracts a display message from err, falling back when the failure
// carried none (transport errors, empty bodies).
func Message(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
