package validators

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrValidation is matched by every FieldErrors value.
	ErrValidation = errors.New("validation failed")
)

// FieldErrors maps a JSON field name to the message describing why its value
// was rejected. A non-empty FieldErrors is returned as an error by validators.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}

	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

// Is makes errors.Is(err, ErrValidation) true for any FieldErrors.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrValidation
}

// add records msg for field unless the field already failed.
func (fe FieldErrors) add(field, msg string) {
	if _, ok := fe[field]; !ok {
		fe[field] = msg
	}
}

// orNil returns nil for an empty set so callers can return it directly.
func (fe FieldErrors) orNil() error {
	if len(fe) == 0 {
		return nil
	}

	return fe
}
