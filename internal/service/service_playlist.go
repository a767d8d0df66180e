// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/internal/store"
	"github.com/MKhiriev/vibe-vault/internal/validators"
	"github.com/MKhiriev/vibe-vault/models"
)

const copySuffix = " (Copy)"

// playlistService implements PlaylistService on top of the playlist and user
// repositories. Every write that touches more than one row runs inside a
// single transaction obtained from the Transactor.
type playlistService struct {
	playlistRepository store.PlaylistRepository
	userRepository     store.UserRepository
	transactor         store.Transactor

	logger *logger.Logger
}

func NewPlaylistService(
	playlistRepository store.PlaylistRepository,
	userRepository store.UserRepository,
	transactor store.Transactor,
	logger *logger.Logger,
) PlaylistService {
	return &playlistService{
		playlistRepository: playlistRepository,
		userRepository:     userRepository,
		transactor:         transactor,
		logger:             logger,
	}
}

func (s *playlistService) GetAllPlaylists(ctx context.Context) ([]models.PlaylistDTO, error) {
	playlists, err := s.playlistRepository.FindAllPlaylists(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*playlistService.GetAllPlaylists").Msg("error loading playlists")
		return nil, fmt.Errorf("error loading playlists: %w", err)
	}

	return toDTOs(playlists), nil
}

func (s *playlistService) GetPlaylistByID(ctx context.Context, id int64) (models.PlaylistDTO, error) {
	playlist, err := s.findPlaylist(ctx, id)
	if err != nil {
		return models.PlaylistDTO{}, err
	}

	return models.NewPlaylistDTO(playlist), nil
}

func (s *playlistService) GetPlaylistsByOwner(ctx context.Context, username string) ([]models.PlaylistDTO, error) {
	owner, err := s.findUser(ctx, username)
	if err != nil {
		return nil, err
	}

	playlists, err := s.playlistRepository.FindPlaylistsByOwner(ctx, owner.ID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*playlistService.GetPlaylistsByOwner").Str("owner", username).Msg("error loading playlists")
		return nil, fmt.Errorf("error loading playlists: %w", err)
	}

	return toDTOs(playlists), nil
}

// SearchPlaylists returns every playlist whose name contains keyword,
// ignoring case. A blank keyword matches everything.
func (s *playlistService) SearchPlaylists(ctx context.Context, keyword string) ([]models.PlaylistDTO, error) {
	if isBlank(keyword) {
		return s.GetAllPlaylists(ctx)
	}

	playlists, err := s.playlistRepository.FindPlaylistsByNameContainingIgnoreCase(ctx, keyword)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*playlistService.SearchPlaylists").Str("keyword", keyword).Msg("error searching playlists")
		return nil, fmt.Errorf("error searching playlists: %w", err)
	}

	return toDTOs(playlists), nil
}

func (s *playlistService) CreatePlaylist(ctx context.Context, name, ownerUsername string) (models.PlaylistDTO, error) {
	log := logger.FromContext(ctx)

	owner, err := s.findUser(ctx, ownerUsername)
	if err != nil {
		return models.PlaylistDTO{}, err
	}

	playlist := models.NewPlaylist(name, owner)
	if err := s.playlistRepository.SavePlaylist(ctx, &playlist); err != nil {
		log.Err(err).Str("func", "*playlistService.CreatePlaylist").Str("owner", ownerUsername).Msg("error saving playlist")
		return models.PlaylistDTO{}, fmt.Errorf("error saving playlist: %w", err)
	}

	log.Info().Int64("playlist_id", playlist.ID).Str("owner", ownerUsername).Msg("playlist created")
	return models.NewPlaylistDTO(playlist), nil
}

func (s *playlistService) AddSongToPlaylist(
	ctx context.Context,
	playlistID int64,
	request models.SongCreateRequest,
	username string,
) (models.PlaylistDTO, error) {
	var result models.PlaylistDTO

	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		playlist, err := s.findPlaylistForModification(ctx, playlistID, username)
		if err != nil {
			return err
		}

		song := request.ToSong()
		if err := s.playlistRepository.AddSong(ctx, playlist.ID, song); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*playlistService.AddSongToPlaylist").Int64("playlist_id", playlistID).Msg("error adding song")
			return fmt.Errorf("error adding song: %w", err)
		}
		playlist.AddSong(song)

		result = models.NewPlaylistDTO(playlist)
		return nil
	})
	if err != nil {
		return models.PlaylistDTO{}, err
	}

	return result, nil
}

func (s *playlistService) RemoveSongFromPlaylist(ctx context.Context, playlistID, songID int64, username string) error {
	return s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.findPlaylistForModification(ctx, playlistID, username); err != nil {
			return err
		}

		err := s.playlistRepository.DeleteSong(ctx, playlistID, songID)
		if errors.Is(err, store.ErrSongNotFound) {
			return fmt.Errorf("%w: Song not found with id: %d", ErrResourceNotFound, songID)
		}
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*playlistService.RemoveSongFromPlaylist").Int64("song_id", songID).Msg("error deleting song")
			return fmt.Errorf("error deleting song: %w", err)
		}

		return nil
	})
}

func (s *playlistService) DeletePlaylist(ctx context.Context, playlistID int64, username string) error {
	return s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		if _, err := s.findPlaylistForModification(ctx, playlistID, username); err != nil {
			return err
		}

		err := s.playlistRepository.DeletePlaylist(ctx, playlistID)
		if errors.Is(err, store.ErrPlaylistNotFound) {
			return fmt.Errorf("%w: Playlist not found with id: %d", ErrResourceNotFound, playlistID)
		}
		if err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*playlistService.DeletePlaylist").Int64("playlist_id", playlistID).Msg("error deleting playlist")
			return fmt.Errorf("error deleting playlist: %w", err)
		}

		logger.FromContext(ctx).Info().Int64("playlist_id", playlistID).Str("by", username).Msg("playlist deleted")
		return nil
	})
}

// CopyPlaylist duplicates a playlist with all of its songs. The copy belongs
// to username, not to the owner of the source. A blank newName yields
// "<source name> (Copy)", with the source name shortened so the result stays
// within the playlist name limit.
func (s *playlistService) CopyPlaylist(ctx context.Context, playlistID int64, newName, username string) (models.PlaylistDTO, error) {
	var result models.PlaylistDTO

	err := s.transactor.WithinTx(ctx, func(ctx context.Context) error {
		source, err := s.findPlaylist(ctx, playlistID)
		if err != nil {
			return err
		}

		requester, err := s.findUser(ctx, username)
		if err != nil {
			return err
		}

		name := newName
		if isBlank(name) {
			name = defaultCopyName(source.Name)
		}

		playlistCopy := models.NewPlaylist(name, requester)
		for _, song := range source.Songs {
			playlistCopy.AddSong(song.Copy())
		}

		if err := s.playlistRepository.SavePlaylist(ctx, &playlistCopy); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "*playlistService.CopyPlaylist").Int64("source_id", playlistID).Msg("error saving copy")
			return fmt.Errorf("error saving playlist copy: %w", err)
		}

		result = models.NewPlaylistDTO(playlistCopy)
		return nil
	})
	if err != nil {
		return models.PlaylistDTO{}, err
	}

	return result, nil
}

func defaultCopyName(sourceName string) string {
	maxBase := validators.MaxPlaylistNameLength - len([]rune(copySuffix))
	if base := []rune(sourceName); len(base) > maxBase {
		sourceName = strings.TrimRight(string(base[:maxBase]), " ")
	}
	return sourceName + copySuffix
}

func (s *playlistService) findPlaylist(ctx context.Context, id int64) (models.Playlist, error) {
	playlist, err := s.playlistRepository.FindPlaylistByID(ctx, id)
	if errors.Is(err, store.ErrPlaylistNotFound) {
		return models.Playlist{}, fmt.Errorf("%w: Playlist not found with id: %d", ErrResourceNotFound, id)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*playlistService.findPlaylist").Int64("playlist_id", id).Msg("error loading playlist")
		return models.Playlist{}, fmt.Errorf("error loading playlist: %w", err)
	}

	return playlist, nil
}

func (s *playlistService) findUser(ctx context.Context, username string) (models.User, error) {
	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, fmt.Errorf("%w: User not found: %s", ErrResourceNotFound, username)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*playlistService.findUser").Str("username", username).Msg("error loading user")
		return models.User{}, fmt.Errorf("error loading user: %w", err)
	}

	return user, nil
}

func (s *playlistService) findPlaylistForModification(ctx context.Context, playlistID int64, username string) (models.Playlist, error) {
	playlist, err := s.findPlaylist(ctx, playlistID)
	if err != nil {
		return models.Playlist{}, err
	}

	if err := s.checkPermission(ctx, playlist, username); err != nil {
		return models.Playlist{}, err
	}

	return playlist, nil
}

// checkPermission allows the owner and any admin. A username that does not
// resolve to a user is treated as a stranger.
func (s *playlistService) checkPermission(ctx context.Context, playlist models.Playlist, username string) error {
	if playlist.IsOwnedBy(username) {
		return nil
	}

	user, err := s.userRepository.FindUserByUsername(ctx, username)
	if err != nil && !errors.Is(err, store.ErrUserNotFound) {
		return fmt.Errorf("error loading user: %w", err)
	}
	if err == nil && user.IsAdmin() {
		return nil
	}

	logger.FromContext(ctx).Info().
		Int64("playlist_id", playlist.ID).
		Str("owner", playlist.Owner.Username).
		Str("caller", username).
		Msg("playlist modification denied")

	return ErrForbidden
}

func toDTOs(playlists []models.Playlist) []models.PlaylistDTO {
	dtos := make([]models.PlaylistDTO, 0, len(playlists))
	for _, p := range playlists {
		dtos = append(dtos, models.NewPlaylistDTO(p))
	}

	return dtos
}
