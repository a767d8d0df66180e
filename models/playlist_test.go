package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser_DefaultRole(t *testing.T) {
	user := NewUser("testuser", "password123")

	assert.Equal(t, "testuser", user.Username)
	assert.Equal(t, "password123", user.Password)
	assert.Equal(t, RoleUser, user.Role)
	assert.False(t, user.IsAdmin())
}

func TestNewUserWithRole(t *testing.T) {
	admin := NewUserWithRole("admin", "password123", RoleAdmin)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, RoleAdmin, admin.Role)
	assert.True(t, admin.IsAdmin())

	fallback := NewUserWithRole("u", "p", "")
	assert.Equal(t, RoleUser, fallback.Role)
}

func TestNewPlaylist(t *testing.T) {
	owner := NewUser("testuser", "password123")
	playlist := NewPlaylist("My Favorites", owner)

	assert.Equal(t, "My Favorites", playlist.Name)
	assert.Equal(t, owner, playlist.Owner)
	require.NotNil(t, playlist.Songs)
	assert.Empty(t, playlist.Songs)
	assert.True(t, playlist.IsOwnedBy("testuser"))
	assert.False(t, playlist.IsOwnedBy("other"))
}

func TestNewSong(t *testing.T) {
	song := NewSong("Test Song", "Test Artist", 180)

	assert.Equal(t, "Test Song", song.Title)
	assert.Equal(t, "Test Artist", song.Artist)
	assert.Equal(t, 180, song.DurationInSeconds)
	assert.Zero(t, song.PlaylistID)
}

func TestPlaylist_AddSong(t *testing.T) {
	playlist := NewPlaylist("My Favorites", NewUser("testuser", "password123"))
	playlist.ID = 7
	song := NewSong("Test Song", "Test Artist", 180)

	playlist.AddSong(song)

	require.Len(t, playlist.Songs, 1)
	assert.Same(t, song, playlist.Songs[0])
	assert.Equal(t, int64(7), song.PlaylistID)

	playlist.AddSong(nil)
	assert.Len(t, playlist.Songs, 1)
}

func TestPlaylist_RemoveSong(t *testing.T) {
	playlist := NewPlaylist("My Favorites", NewUser("testuser", "password123"))
	playlist.ID = 7
	song := NewSong("Test Song", "Test Artist", 180)

	playlist.AddSong(song)
	playlist.RemoveSong(song)

	assert.Empty(t, playlist.Songs)
	assert.Zero(t, song.PlaylistID)
}

func TestPlaylist_RemoveSong_ByID(t *testing.T) {
	playlist := NewPlaylist("Mix", NewUser("u", "p"))
	playlist.ID = 1
	stored := &Song{ID: 10, Title: "A", Artist: "B"}
	playlist.AddSong(stored)
	playlist.AddSong(&Song{ID: 11, Title: "C", Artist: "D"})

	playlist.RemoveSong(&Song{ID: 10})

	require.Len(t, playlist.Songs, 1)
	assert.Equal(t, int64(11), playlist.Songs[0].ID)
}

func TestPlaylist_RemoveSong_NotInPlaylist(t *testing.T) {
	playlist := NewPlaylist("Mix", NewUser("u", "p"))
	playlist.ID = 1
	playlist.AddSong(NewSong("A", "B", 1))

	outsider := &Song{Title: "X", PlaylistID: 99}
	playlist.RemoveSong(outsider)

	assert.Len(t, playlist.Songs, 1)
	assert.Equal(t, int64(99), outsider.PlaylistID)
}

func TestPlaylist_FindSong(t *testing.T) {
	playlist := NewPlaylist("Mix", NewUser("u", "p"))
	playlist.AddSong(&Song{ID: 3, Title: "A"})

	assert.NotNil(t, playlist.FindSong(3))
	assert.Nil(t, playlist.FindSong(4))
}

func TestNewPlaylistDTO(t *testing.T) {
	playlist := Playlist{
		ID:    1,
		Name:  "My Favorites",
		Owner: User{ID: 2, Username: "testuser"},
		Songs: []*Song{{ID: 1, Title: "Test Song", Artist: "Test Artist", DurationInSeconds: 180}},
	}

	dto := NewPlaylistDTO(playlist)

	assert.Equal(t, int64(1), dto.ID)
	assert.Equal(t, "My Favorites", dto.Name)
	assert.Equal(t, "testuser", dto.OwnerUsername)
	require.Len(t, dto.Songs, 1)
	assert.Equal(t, SongDTO{ID: 1, Title: "Test Song", Artist: "Test Artist", DurationInSeconds: 180}, dto.Songs[0])
}

func TestNewPlaylistDTO_EmptySongsIsNotNil(t *testing.T) {
	dto := NewPlaylistDTO(Playlist{ID: 1, Name: "Empty"})

	assert.NotNil(t, dto.Songs)
	assert.Empty(t, dto.Songs)
}

func TestSong_Copy(t *testing.T) {
	original := &Song{ID: 5, Title: "A", Artist: "B", DurationInSeconds: 10, PlaylistID: 3}

	clone := original.Copy()

	assert.Zero(t, clone.ID)
	assert.Zero(t, clone.PlaylistID)
	assert.Equal(t, "A", clone.Title)
	assert.Equal(t, "B", clone.Artist)
	assert.Equal(t, 10, clone.DurationInSeconds)
}

func TestAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "2026-01-01", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
	assert.Contains(t, info.String(), "Build date: 2026-01-01")
}
