package models

import "time"

// ErrorResponse is the JSON envelope written for every non-2xx API response.
type ErrorResponse struct {
	// Timestamp is the moment the error was produced, in UTC.
	Timestamp time.Time `json:"timestamp"`

	// Status is the numeric HTTP status code.
	Status int `json:"status"`

	// Error is the canonical status text (e.g. "Not Found").
	Error string `json:"error"`

	// Message is a human-readable description of the failure.
	Message string `json:"message"`

	// Details maps field names to validation messages. Omitted when empty.
	Details map[string]string `json:"details,omitempty"`
}
