package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/vibe-vault/models"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusConflict:            ErrConflict,
	http.StatusInternalServerError: ErrInternalServerError,
}

func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	msg := errorMessage(resp)

	if sentinel, ok := statusErrors[resp.StatusCode()]; ok {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}

	return fmt.Errorf("http %d: %s", resp.StatusCode(), msg)
}

// errorMessage prefers the server's error envelope and falls back to the raw
// body or status text.
func errorMessage(resp *resty.Response) string {
	var envelope models.ErrorResponse
	if err := json.Unmarshal(resp.Body(), &envelope); err == nil && envelope.Message != "" {
		if len(envelope.Details) == 0 {
			return envelope.Message
		}

		fields := make([]string, 0, len(envelope.Details))
		for field, detail := range envelope.Details {
			fields = append(fields, field+": "+detail)
		}
		sort.Strings(fields)
		return envelope.Message + " (" + strings.Join(fields, "; ") + ")"
	}

	if body := strings.TrimSpace(string(resp.Body())); body != "" {
		return body
	}

	return http.StatusText(resp.StatusCode())
}
