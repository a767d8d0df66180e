package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/vibe-vault/models"
)

// Field name constants used to specify which fields should be validated.
// They double as keys of the returned FieldErrors and match the JSON names.
const (
	// FieldName checks that a playlist name is present and not too long.
	FieldName = "name"

	// FieldNameLength checks only the length of a playlist name. Used for
	// optional names, such as the name of a copy.
	FieldNameLength = "nameLength"

	FieldTitle    = "title"
	FieldArtist   = "artist"
	FieldDuration = "durationInSeconds"
)

// MaxPlaylistNameLength is the upper bound on playlist names, in characters.
const MaxPlaylistNameLength = 255

const (
	msgNameRequired     = "Playlist name is required"
	msgNameTooLong      = "Playlist name must be at most 255 characters"
	msgTitleRequired    = "Song title is required"
	msgArtistRequired   = "Artist name is required"
	msgDurationNegative = "Duration must be non-negative"
	msgIDInvalid        = "must be a positive number"
)

// PlaylistID and SongID wrap identifiers taken from request paths.
type (
	PlaylistID int64
	SongID     int64
)

// PlaylistValidator validates playlist and song inputs.
// It supports both value and pointer arguments for request types.
type PlaylistValidator struct {
}

func NewPlaylistValidator() Validator {
	return &PlaylistValidator{}
}

func (v *PlaylistValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.PlaylistCreateRequest:
		return v.validatePlaylistCreateRequest(value, fields...)
	case *models.PlaylistCreateRequest:
		return v.validatePlaylistCreateRequest(*value, fields...)

	case models.SongCreateRequest:
		return v.validateSongCreateRequest(value, fields...)
	case *models.SongCreateRequest:
		return v.validateSongCreateRequest(*value, fields...)

	case PlaylistID:
		return validateID("playlistId", int64(value))
	case SongID:
		return validateID("songId", int64(value))

	default:
		return ErrUnsupportedType
	}
}

func (v *PlaylistValidator) validatePlaylistCreateRequest(request models.PlaylistCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldName:
			if isBlank(request.Name) {
				errs.add(FieldName, msgNameRequired)
				continue
			}
			if utf8.RuneCountInString(request.Name) > MaxPlaylistNameLength {
				errs.add(FieldName, msgNameTooLong)
			}
		case FieldNameLength:
			if utf8.RuneCountInString(request.Name) > MaxPlaylistNameLength {
				errs.add(FieldName, msgNameTooLong)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func (v *PlaylistValidator) validateSongCreateRequest(request models.SongCreateRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldArtist, FieldDuration}
	}

	errs := FieldErrors{}
	for _, f := range fields {
		switch f {
		case FieldTitle:
			if isBlank(request.Title) {
				errs.add(FieldTitle, msgTitleRequired)
			}
		case FieldArtist:
			if isBlank(request.Artist) {
				errs.add(FieldArtist, msgArtistRequired)
			}
		case FieldDuration:
			if request.DurationInSeconds < 0 {
				errs.add(FieldDuration, msgDurationNegative)
			}
		default:
			return ErrUnknownField
		}
	}

	return errs.orNil()
}

func validateID(field string, id int64) error {
	if id <= 0 {
		return FieldErrors{field: msgIDInvalid}
	}

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
