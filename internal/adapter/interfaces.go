// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client-side view of the VibeVault REST API.
//
// [PlaylistAPI] hides the HTTP transport from the command-line client. Error
// responses are mapped by mapHTTPError to the sentinel values in errors.go so
// that callers can use [errors.Is] (e.g. [ErrForbidden] for 403,
// [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/vibe-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// PlaylistAPI defines the operations the command-line client performs
// against a VibeVault server.
type PlaylistAPI interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or an empty string.
	Token() string

	// Register creates a new account.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error)

	// Login exchanges credentials for a token and stores it via SetToken.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// ListPlaylists returns every playlist, or only those of owner when it
	// is not empty.
	ListPlaylists(ctx context.Context, owner string) ([]models.PlaylistDTO, error)

	GetPlaylist(ctx context.Context, id int64) (models.PlaylistDTO, error)
	SearchPlaylists(ctx context.Context, keyword string) ([]models.PlaylistDTO, error)
	CreatePlaylist(ctx context.Context, name string) (models.PlaylistDTO, error)
	AddSong(ctx context.Context, playlistID int64, song models.SongCreateRequest) (models.PlaylistDTO, error)
	RemoveSong(ctx context.Context, playlistID, songID int64) error
	DeletePlaylist(ctx context.Context, id int64) error

	// CopyPlaylist copies id into a playlist owned by the caller. An empty
	// newName lets the server pick the default.
	CopyPlaylist(ctx context.Context, id int64, newName string) (models.PlaylistDTO, error)

	// ServerVersion returns the plain-text version reported by the server.
	ServerVersion(ctx context.Context) (string, error)
}
