package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/vibe-vault/internal/validators"
	"github.com/MKhiriev/vibe-vault/models"
)

// PlaylistValidationService rejects malformed input before it reaches the
// wrapped PlaylistService. Failures are validators.FieldErrors.
type PlaylistValidationService struct {
	inner     PlaylistService
	validator validators.Validator
}

func NewPlaylistValidationService() PlaylistServiceWrapper {
	return &PlaylistValidationService{
		validator: validators.NewPlaylistValidator(),
	}
}

func (v *PlaylistValidationService) GetAllPlaylists(ctx context.Context) ([]models.PlaylistDTO, error) {
	return v.inner.GetAllPlaylists(ctx)
}

func (v *PlaylistValidationService) GetPlaylistByID(ctx context.Context, id int64) (models.PlaylistDTO, error) {
	if err := v.validator.Validate(ctx, validators.PlaylistID(id)); err != nil {
		return models.PlaylistDTO{}, fmt.Errorf("error during playlist id validation: %w", err)
	}

	return v.inner.GetPlaylistByID(ctx, id)
}

func (v *PlaylistValidationService) GetPlaylistsByOwner(ctx context.Context, username string) ([]models.PlaylistDTO, error) {
	return v.inner.GetPlaylistsByOwner(ctx, username)
}

func (v *PlaylistValidationService) SearchPlaylists(ctx context.Context, keyword string) ([]models.PlaylistDTO, error) {
	return v.inner.SearchPlaylists(ctx, keyword)
}

func (v *PlaylistValidationService) CreatePlaylist(ctx context.Context, name, ownerUsername string) (models.PlaylistDTO, error) {
	if err := v.validator.Validate(ctx, models.PlaylistCreateRequest{Name: name}); err != nil {
		return models.PlaylistDTO{}, fmt.Errorf("error during playlist validation before saving: %w", err)
	}

	return v.inner.CreatePlaylist(ctx, name, ownerUsername)
}

func (v *PlaylistValidationService) AddSongToPlaylist(
	ctx context.Context,
	playlistID int64,
	request models.SongCreateRequest,
	username string,
) (models.PlaylistDTO, error) {
	if err := v.validator.Validate(ctx, validators.PlaylistID(playlistID)); err != nil {
		return models.PlaylistDTO{}, fmt.Errorf("error during playlist id validation: %w", err)
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		return models.PlaylistDTO{}, fmt.Errorf("error during song validation before saving: %w", err)
	}

	return v.inner.AddSongToPlaylist(ctx, playlistID, request, username)
}

func (v *PlaylistValidationService) RemoveSongFromPlaylist(ctx context.Context, playlistID, songID int64, username string) error {
	if err := v.validator.Validate(ctx, validators.PlaylistID(playlistID)); err != nil {
		return fmt.Errorf("error during playlist id validation: %w", err)
	}
	if err := v.validator.Validate(ctx, validators.SongID(songID)); err != nil {
		return fmt.Errorf("error during song id validation: %w", err)
	}

	return v.inner.RemoveSongFromPlaylist(ctx, playlistID, songID, username)
}

func (v *PlaylistValidationService) DeletePlaylist(ctx context.Context, playlistID int64, username string) error {
	if err := v.validator.Validate(ctx, validators.PlaylistID(playlistID)); err != nil {
		return fmt.Errorf("error during playlist id validation: %w", err)
	}

	return v.inner.DeletePlaylist(ctx, playlistID, username)
}

// CopyPlaylist only checks the length of newName; a blank name is replaced
// by the default copy name downstream.
func (v *PlaylistValidationService) CopyPlaylist(ctx context.Context, playlistID int64, newName, username string) (models.PlaylistDTO, error) {
	if err := v.validator.Validate(ctx, validators.PlaylistID(playlistID)); err != nil {
		return models.PlaylistDTO{}, fmt.Errorf("error during playlist id validation: %w", err)
	}
	if err := v.validator.Validate(ctx, models.PlaylistCreateRequest{Name: newName}, validators.FieldNameLength); err != nil {
		return models.PlaylistDTO{}, fmt.Errorf("error during playlist validation before copying: %w", err)
	}

	return v.inner.CopyPlaylist(ctx, playlistID, newName, username)
}

func (v *PlaylistValidationService) Wrap(wrapper PlaylistService) PlaylistService {
	v.inner = wrapper
	return v
}
