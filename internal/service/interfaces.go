package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/vibe-vault/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, request models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)

	// Authenticate resolves the user named by the token subject. The role of
	// the returned principal is read from storage.
	Authenticate(ctx context.Context, token models.Token) (models.Principal, error)

	// EnsureAdmin creates the user with ROLE_ADMIN, or promotes an existing one.
	EnsureAdmin(ctx context.Context, username, password string) error
}

type PlaylistService interface {
	GetAllPlaylists(ctx context.Context) ([]models.PlaylistDTO, error)
	GetPlaylistByID(ctx context.Context, id int64) (models.PlaylistDTO, error)
	GetPlaylistsByOwner(ctx context.Context, username string) ([]models.PlaylistDTO, error)
	SearchPlaylists(ctx context.Context, keyword string) ([]models.PlaylistDTO, error)

	CreatePlaylist(ctx context.Context, name, ownerUsername string) (models.PlaylistDTO, error)
	AddSongToPlaylist(ctx context.Context, playlistID int64, request models.SongCreateRequest, username string) (models.PlaylistDTO, error)
	RemoveSongFromPlaylist(ctx context.Context, playlistID, songID int64, username string) error
	DeletePlaylist(ctx context.Context, playlistID int64, username string) error
	CopyPlaylist(ctx context.Context, playlistID int64, newName, username string) (models.PlaylistDTO, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PlaylistServiceWrapper defines middleware composition for PlaylistService.
// Implementations wrap an existing PlaylistService to add behavior such as
// logging or validating.
type PlaylistServiceWrapper interface {
	Wrap(PlaylistService) PlaylistService // returns a decorated PlaylistService applying additional behavior
}
