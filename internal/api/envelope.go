package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Envelope is the uniform result of a gateway call. Exactly one of Data and
// Message is meaningful, selected by Success. A successful void operation
// carries empty Data, which is a valid shape.
type Envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

func failure(message string) Envelope {
	if message == "" {
		message = "Unknown error occurred"
	}
	return Envelope{Success: false, Message: message}
}

// Err returns the envelope's failure as an error, or nil on success.
func (e Envelope) Err() error {
	if e.Success {
		return nil
	}
	return errors.New(e.Message)
}

// decode unwraps an envelope into out. Failures become errors; empty Data
// with a non-nil out leaves out at its zero value.
func decode(e Envelope, out any) error {
	if !e.Success {
		return errors.New(e.Message)
	}
	if out == nil || len(e.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(e.Data, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// apiError is the error body shape used by the backend. FastAPI-style
// responses put the message under detail; some handlers use message.
type apiError struct {
	Detail  json.RawMessage `json:"detail"`
	Message string          `json:"message"`
}

// serverMessage extracts a human-readable error from a failed response body,
// falling back to a generic status line.
func serverMessage(statusCode int, body []byte) string {
	var apiErr apiError
	if err := json.Unmarshal(body, &apiErr); err == nil {
		var detail string
		if json.Unmarshal(apiErr.Detail, &detail) == nil && detail != "" {
			return detail
		}
		if apiErr.Message != "" {
			return apiErr.Message
		}
	}
	return fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode))
}
