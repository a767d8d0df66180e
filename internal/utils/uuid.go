package utils

import "github.com/google/uuid"

// NewTraceID returns a time-ordered UUIDv7 string. When the clock-based
// generator fails it falls back to a random UUIDv4.
func NewTraceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
