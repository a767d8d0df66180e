package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/vibe-vault/internal/config"
	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()
	s, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: config.DriverSQLite, DSN: ":memory:"},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestNewStorages_UnsupportedDriver(t *testing.T) {
	s, err := NewStorages(context.Background(), config.Storage{DB: config.DB{Driver: "oracle"}}, logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestNewStorages_SQLiteFileCreatesDirectory(t *testing.T) {
	dsn := "file:" + filepath.Join(t.TempDir(), "nested", "vv.db")

	s, err := NewStorages(context.Background(), config.Storage{
		DB: config.DB{Driver: config.DriverSQLite, DSN: dsn, MaxOpenConns: 2},
	}, logger.Nop())
	require.NoError(t, err)
	assert.NoError(t, s.Close())
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}

// ── SQLite end to end ─────────────────────────────────────────────────────────

func TestSQLite_UserLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	created, err := s.UserRepository.CreateUser(ctx, models.NewUser("alice", "hash"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	_, err = s.UserRepository.CreateUser(ctx, models.NewUser("alice", "other"))
	assert.ErrorIs(t, err, ErrUsernameAlreadyExists)

	exists, err := s.UserRepository.ExistsByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, s.UserRepository.UpdateUserRole(ctx, created.ID, models.RoleAdmin))

	found, err := s.UserRepository.FindUserByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, found.Role)
	assert.Equal(t, "hash", found.Password)

	_, err = s.UserRepository.FindUserByUsername(ctx, "bob")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLite_PlaylistLifecycle(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	owner, err := s.UserRepository.CreateUser(ctx, models.NewUser("alice", "hash"))
	require.NoError(t, err)

	playlist := models.NewPlaylist("Road Trip", owner)
	playlist.AddSong(models.NewSong("Highway", "Band", 200))
	require.NoError(t, s.PlaylistRepository.SavePlaylist(ctx, &playlist))
	require.NotZero(t, playlist.ID)

	song := models.NewSong("Exit", "Band", 180)
	require.NoError(t, s.PlaylistRepository.AddSong(ctx, playlist.ID, song))

	loaded, err := s.PlaylistRepository.FindPlaylistByID(ctx, playlist.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice", loaded.Owner.Username)
	require.Len(t, loaded.Songs, 2)
	assert.Equal(t, "Highway", loaded.Songs[0].Title)
	assert.Equal(t, "Exit", loaded.Songs[1].Title)

	other, err := s.PlaylistRepository.FindPlaylistsByOwner(ctx, owner.ID+100)
	require.NoError(t, err)
	assert.Empty(t, other)

	require.NoError(t, s.PlaylistRepository.DeleteSong(ctx, playlist.ID, song.ID))
	assert.ErrorIs(t, s.PlaylistRepository.DeleteSong(ctx, playlist.ID, song.ID), ErrSongNotFound)

	require.NoError(t, s.PlaylistRepository.DeletePlaylist(ctx, playlist.ID))
	_, err = s.PlaylistRepository.FindPlaylistByID(ctx, playlist.ID)
	assert.ErrorIs(t, err, ErrPlaylistNotFound)
	assert.ErrorIs(t, s.PlaylistRepository.DeletePlaylist(ctx, playlist.ID), ErrPlaylistNotFound)
}

func TestSQLite_SearchIsCaseInsensitiveAndLiteral(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	owner, err := s.UserRepository.CreateUser(ctx, models.NewUser("alice", "hash"))
	require.NoError(t, err)

	for _, name := range []string{"Summer Hits", "summer_2024", "Winter", "100% Rock", "ÄPFEL Mix", "Ünïcödé"} {
		p := models.NewPlaylist(name, owner)
		require.NoError(t, s.PlaylistRepository.SavePlaylist(ctx, &p))
	}

	found, err := s.PlaylistRepository.FindPlaylistsByNameContainingIgnoreCase(ctx, "SUMMER")
	require.NoError(t, err)
	assert.Len(t, found, 2)

	found, err = s.PlaylistRepository.FindPlaylistsByNameContainingIgnoreCase(ctx, "%")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "100% Rock", found[0].Name)

	found, err = s.PlaylistRepository.FindPlaylistsByNameContainingIgnoreCase(ctx, "r_")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "summer_2024", found[0].Name)

	found, err = s.PlaylistRepository.FindPlaylistsByNameContainingIgnoreCase(ctx, "äpfel")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "ÄPFEL Mix", found[0].Name)

	found, err = s.PlaylistRepository.FindPlaylistsByNameContainingIgnoreCase(ctx, "ÜNÏCÖDÉ")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Ünïcödé", found[0].Name)

	all, err := s.PlaylistRepository.FindAllPlaylists(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 6)
}

func TestSQLite_TransactionRollsBack(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()
	boom := errors.New("boom")

	owner, err := s.UserRepository.CreateUser(ctx, models.NewUser("alice", "hash"))
	require.NoError(t, err)

	err = s.Transactor.WithinTx(ctx, func(ctx context.Context) error {
		p := models.NewPlaylist("Doomed", owner)
		if err := s.PlaylistRepository.SavePlaylist(ctx, &p); err != nil {
			return err
		}
		return boom
	})
	assert.ErrorIs(t, err, boom)

	all, err := s.PlaylistRepository.FindAllPlaylists(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestSQLite_NegativeDurationRejected(t *testing.T) {
	s := newSQLiteStorages(t)
	ctx := context.Background()

	owner, err := s.UserRepository.CreateUser(ctx, models.NewUser("alice", "hash"))
	require.NoError(t, err)
	p := models.NewPlaylist("P", owner)
	require.NoError(t, s.PlaylistRepository.SavePlaylist(ctx, &p))

	err = s.PlaylistRepository.AddSong(ctx, p.ID, models.NewSong("T", "A", -1))
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
