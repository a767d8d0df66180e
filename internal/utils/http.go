package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxBodyBytes caps request bodies decoded by DecodeJSON.
const maxBodyBytes = 1 << 20

var (
	// ErrEmptyBody is returned by DecodeJSON when the request has no body.
	ErrEmptyBody = errors.New("request body is empty")
	// ErrTrailingData is returned by DecodeJSON when anything but whitespace
	// follows the JSON document.
	ErrTrailingData = errors.New("request body has data after the JSON document")
)

// WriteJSON writes data as an application/json response with statusCode.
// A value that cannot be marshaled turns into a bare 500 and the error is
// returned to the caller for logging.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("error encoding JSON response: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return w.Write(body)
}

// DecodeJSON reads exactly one JSON document from r.Body into dst.
func DecodeJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	if err != nil {
		return fmt.Errorf("error decoding request body: %w", err)
	}

	if err = dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}

	return nil
}
