// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/vibe-vault/models"
)

// UserRepository persists user accounts.
type UserRepository interface {
	// CreateUser inserts user and returns it with the generated ID.
	// A taken username yields ErrUsernameAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername yields ErrUserNotFound when no row matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// UpdateUserRole yields ErrUserNotFound when no row was updated.
	UpdateUserRole(ctx context.Context, userID int64, role string) error
}

// PlaylistRepository persists playlists together with their songs. Loaded
// playlists always carry their owner and their songs ordered by id.
type PlaylistRepository interface {
	// SavePlaylist inserts the playlist and every song it holds, assigning
	// IDs in place.
	SavePlaylist(ctx context.Context, playlist *models.Playlist) error

	FindPlaylistByID(ctx context.Context, id int64) (models.Playlist, error)
	FindAllPlaylists(ctx context.Context) ([]models.Playlist, error)
	FindPlaylistsByOwner(ctx context.Context, ownerID int64) ([]models.Playlist, error)
	FindPlaylistsByNameContainingIgnoreCase(ctx context.Context, keyword string) ([]models.Playlist, error)

	// DeletePlaylist removes the playlist and its songs.
	DeletePlaylist(ctx context.Context, id int64) error

	// AddSong inserts song into the playlist, setting its ID and PlaylistID.
	AddSong(ctx context.Context, playlistID int64, song *models.Song) error

	// DeleteSong yields ErrSongNotFound when the song is not part of the
	// playlist.
	DeleteSong(ctx context.Context, playlistID, songID int64) error
}

// Transactor runs a unit of work atomically. Repository calls made with the
// context passed to fn join the transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ErrorClassificator inspects driver errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
