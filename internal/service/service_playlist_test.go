package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/internal/mock"
	"github.com/MKhiriev/vibe-vault/internal/store"
	"github.com/MKhiriev/vibe-vault/internal/validators"
	"github.com/MKhiriev/vibe-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type playlistMocks struct {
	playlists  *mock.MockPlaylistRepository
	users      *mock.MockUserRepository
	transactor *mock.MockTransactor
}

func newTestPlaylistService(t *testing.T) (PlaylistService, playlistMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := playlistMocks{
		playlists:  mock.NewMockPlaylistRepository(ctrl),
		users:      mock.NewMockUserRepository(ctrl),
		transactor: mock.NewMockTransactor(ctrl),
	}
	m.transactor.EXPECT().WithinTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	return NewPlaylistService(m.playlists, m.users, m.transactor, logger.Nop()), m
}

var (
	alice = models.User{ID: 1, Username: "alice", Role: models.RoleUser}
	bob   = models.User{ID: 2, Username: "bob", Role: models.RoleUser}
	admin = models.User{ID: 3, Username: "admin", Role: models.RoleAdmin}
)

func playlistOf(id int64, name string, owner models.User, songs ...*models.Song) models.Playlist {
	p := models.NewPlaylist(name, owner)
	p.ID = id
	for _, s := range songs {
		p.AddSong(s)
	}
	return p
}

// ── reads ─────────────────────────────────────────────────────────────────────

func TestGetAllPlaylists_MapsToDTOs(t *testing.T) {
	svc, m := newTestPlaylistService(t)
	m.playlists.EXPECT().FindAllPlaylists(gomock.Any()).Return([]models.Playlist{
		playlistOf(1, "One", alice, &models.Song{ID: 5, Title: "T", Artist: "A", DurationInSeconds: 60}),
		playlistOf(2, "Two", bob),
	}, nil)

	dtos, err := svc.GetAllPlaylists(context.Background())
	require.NoError(t, err)
	require.Len(t, dtos, 2)
	assert.Equal(t, "alice", dtos[0].OwnerUsername)
	assert.Equal(t, []models.SongDTO{{ID: 5, Title: "T", Artist: "A", DurationInSeconds: 60}}, dtos[0].Songs)
	assert.Equal(t, []models.SongDTO{}, dtos[1].Songs)
}

func TestGetPlaylistByID_NotFound(t *testing.T) {
	svc, m := newTestPlaylistService(t)
	m.playlists.EXPECT().FindPlaylistByID(gomock.Any(), int64(9)).Return(models.Playlist{}, store.ErrPlaylistNotFound)

	_, err := svc.GetPlaylistByID(context.Background(), 9)
	assert.ErrorIs(t, err, ErrResourceNotFound)
	assert.Contains(t, err.Error(), "Playlist not found with id: 9")
}

func TestGetPlaylistsByOwner(t *testing.T) {
	svc, m := newTestPlaylistService(t)
	m.users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(alice, nil)
	m.playlists.EXPECT().FindPlaylistsByOwner(gomock.Any(), alice.ID).Return([]models.Playlist{playlistOf(1, "Mine", alice)}, nil)

	dtos, err := svc.GetPlaylistsByOwner(context.Background(), "alice")
	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, "Mine", dtos[0].Name)
}

func TestGetPlaylistsByOwner_UnknownUser(t *testing.T) {
	svc, m := newTestPlaylistService(t)
	m.users.EXPECT().FindUserByUsername(gomock.Any(), "nobody").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.GetPlaylistsByOwner(context.Background(), "nobody")
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestSearchPlaylists(t *testing.T) {
	t.Run("keyword", func(t *testing.T) {
		svc, m := newTestPlaylistService(t)
		m.playlists.EXPECT().FindPlaylistsByNameContainingIgnoreCase(gomock.Any(), "rock").
			Return([]models.Playlist{playlistOf(1, "Rock On", alice)}, nil)

		dtos, err := svc.SearchPlaylists(context.Background(), "rock")
		require.NoError(t, err)
		assert.Len(t, dtos, 1)
	})

	t.Run("blank keyword returns everything", func(t *testing.T) {
		svc, m := newTestPlaylistService(t)
		m.playlists.EXPECT().FindAllPlaylists(gomock.Any()).Return([]models.Playlist{}, nil)

		dtos, err := svc.SearchPlaylists(context.Background(), "  ")
		require.NoError(t, err)
		assert.Empty(t, dtos)
	})
}

// ── CreatePlaylist ────────────────────────────────────────────────────────────

func TestCreatePlaylist(t *testing.T) {
	svc, m := newTestPlaylistService(t)
	m.users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(alice, nil)
	m.playlists.EXPECT().SavePlaylist(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.Playlist) error {
			assert.Equal(t, "Road Trip", p.Name)
			assert.Equal(t, alice.ID, p.Owner.ID)
			p.ID = 11
			return nil
		})

	dto, err := svc.CreatePlaylist(context.Background(), "Road Trip", "alice")
	require.NoError(t, err)
	assert.Equal(t, models.PlaylistDTO{ID: 11, Name: "Road Trip", OwnerUsername: "alice", Songs: []models.SongDTO{}}, dto)
}

func TestCreatePlaylist_UnknownOwner(t *testing.T) {
	svc, m := newTestPlaylistService(t)
	m.users.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)

	_, err := svc.CreatePlaylist(context.Background(), "X", "ghost")
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

// ── permission checked writes ─────────────────────────────────────────────────

func TestAddSongToPlaylist_Permissions(t *testing.T) {
	tests := []struct {
		name    string
		caller  string
		lookup  func(m playlistMocks)
		wantErr error
	}{
		{name: "owner", caller: "alice", lookup: func(playlistMocks) {}},
		{
			name:   "admin",
			caller: "admin",
			lookup: func(m playlistMocks) {
				m.users.EXPECT().FindUserByUsername(gomock.Any(), "admin").Return(admin, nil)
			},
		},
		{
			name:   "stranger",
			caller: "bob",
			lookup: func(m playlistMocks) {
				m.users.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(bob, nil)
			},
			wantErr: ErrForbidden,
		},
		{
			name:   "unknown caller",
			caller: "ghost",
			lookup: func(m playlistMocks) {
				m.users.EXPECT().FindUserByUsername(gomock.Any(), "ghost").Return(models.User{}, store.ErrUserNotFound)
			},
			wantErr: ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, m := newTestPlaylistService(t)
			m.playlists.EXPECT().FindPlaylistByID(gomock.Any(), int64(1)).Return(playlistOf(1, "P", alice), nil)
			tt.lookup(m)

			if tt.wantErr == nil {
				m.playlists.EXPECT().AddSong(gomock.Any(), int64(1), gomock.Any()).DoAndReturn(
					func(_ context.Context, _ int64, s *models.Song) error {
						s.ID = 50
						return nil
					})
			}

			dto, err := svc.AddSongToPlaylist(context.Background(), 1,
				models.SongCreateRequest{Title: "New", Artist: "Band", DurationInSeconds: 120}, tt.caller)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Len(t, dto.Songs, 1)
			assert.Equal(t, models.SongDTO{ID: 50, Title: "New", Artist: "Band", DurationInSeconds: 120}, dto.Songs[0])
		})
	}
}

func TestAddSongToPlaylist_MissingPlaylist(t *testing.T) {
	svc, m := newTestPlaylistService(t)
	m.playlists.EXPECT().FindPlaylistByID(gomock.Any(), int64(4)).Return(models.Playlist{}, store.ErrPlaylistNotFound)

	_, err := svc.AddSongToPlaylist(context.Background(), 4, models.SongCreateRequest{Title: "T", Artist: "A"}, "alice")
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestRemoveSongFromPlaylist(t *testing.T) {
	t.Run("removed", func(t *testing.T) {
		svc, m := newTestPlaylistService(t)
		m.playlists.EXPECT().FindPlaylistByID(gomock.Any(), int64(1)).Return(playlistOf(1, "P", alice), nil)
		m.playlists.EXPECT().DeleteSong(gomock.Any(), int64(1), int64(7)).Return(nil)

		assert.NoError(t, svc.RemoveSongFromPlaylist(context.Background(), 1, 7, "alice"))
	})

	t.Run("song not in playlist", func(t *testing.T) {
		svc, m := newTestPlaylistService(t)
		m.playlists.EXPECT().FindPlaylistByID(gomock.Any(), int64(1)).Return(playlistOf(1, "P", alice), nil)
		m.playlists.EXPECT().DeleteSong(gomock.Any(), int64(1), int64(7)).Return(store.ErrSongNotFound)

		err := svc.RemoveSongFromPlaylist(context.Background(), 1, 7, "alice")
		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("stranger", func(t *testing.T) {
		svc, m := newTestPlaylistService(t)
		m.playlists.EXPECT().FindPlaylistByID(gomock.Any(), int64(1)).Return(playlistOf(1, "P", alice), nil)
		m.users.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(bob, nil)

		err := svc.RemoveSongFromPlaylist(context.Background(), 1, 7, "bob")
		assert.ErrorIs(t, err, ErrForbidden)
	})
}

func TestDeletePlaylist(t *testing.T) {
	t.Run("by admin", func(t *testing.T) {
		svc, m := newTestPlaylistService(t)
		m.playlists.EXPECT().FindPlaylistByID(gomock.Any(), int64(1)).Return(playlistOf(1, "P", alice), nil)
		m.users.EXPECT().FindUserByUsername(gomock.Any(), "admin").Return(admin, nil)
		m.playlists.EXPECT().DeletePlaylist(gomock.Any(), int64(1)).Return(nil)

		assert.NoError(t, svc.DeletePlaylist(context.Background(), 1, "admin"))
	})

	t.Run("storage failure is propagated", func(t *testing.T) {
		svc, m := newTestPlaylistService(t)
		boom := errors.New("boom")
		m.playlists.EXPECT().FindPlaylistByID(gomock.Any(), int64(1)).Return(playlistOf(1, "P", alice), nil)
		m.playlists.EXPECT().DeletePlaylist(gomock.Any(), int64(1)).Return(boom)

		err := svc.DeletePlaylist(context.Background(), 1, "alice")
		assert.ErrorIs(t, err, boom)
		assert.NotErrorIs(t, err, ErrResourceNotFound)
	})
}

// ── CopyPlaylist ──────────────────────────────────────────────────────────────

func TestCopyPlaylist_DefaultNameAndNewOwner(t *testing.T) {
	svc, m := newTestPlaylistService(t)

	source := playlistOf(1, "Road Trip", alice,
		&models.Song{ID: 10, Title: "A", Artist: "X", DurationInSeconds: 1},
		&models.Song{ID: 11, Title: "B", Artist: "Y", DurationInSeconds: 2},
	)
	m.playlists.EXPECT().FindPlaylistByID(gomock.Any(), int64(1)).Return(source, nil)
	m.users.EXPECT().FindUserByUsername(gomock.Any(), "bob").Return(bob, nil)
	m.playlists.EXPECT().SavePlaylist(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p *models.Playlist) error {
			p.ID = 2
			for i, s := range p.Songs {
				assert.Zero(t, s.ID, "copied songs must be new rows")
				s.ID = int64(100 + i)
			}
			return nil
		})

	dto, err := svc.CopyPlaylist(context.Background(), 1, "", "bob")
	require.NoError(t, err)

	assert.Equal(t, int64(2), dto.ID)
	assert.Equal(t, "Road Trip (Copy)", dto.Name)
	assert.Equal(t, "bob", dto.OwnerUsername)
	require.Len(t, dto.Songs, 2)
	assert.Equal(t, "A", dto.Songs[0].Title)
	assert.Equal(t, int64(101), dto.Songs[1].ID)
	assert.Equal(t, int64(10), source.Songs[0].ID, "source songs are untouched")
}

func TestCopyPlaylist_DefaultNameFitsLimit(t *testing.T) {
	svc, m := newTestPlaylistService(t)

	longName := strings.Repeat("ä", validators.MaxPlaylistNameLength)
	m.playlists.EXPECT().FindPlaylistByID(gomock.Any(), int64(1)).Return(playlistOf(1, longName, alice), nil)
	m.users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(alice, nil)
	m.playlists.EXPECT().SavePlaylist(gomock.Any(), gomock.Any()).Return(nil)

	dto, err := svc.CopyPlaylist(context.Background(), 1, "", "alice")
	require.NoError(t, err)

	assert.Equal(t, validators.MaxPlaylistNameLength, utf8.RuneCountInString(dto.Name))
	assert.True(t, strings.HasSuffix(dto.Name, " (Copy)"))
	assert.NoError(t, validators.NewPlaylistValidator().Validate(context.Background(),
		models.PlaylistCreateRequest{Name: dto.Name}, validators.FieldName))
}

func TestDefaultCopyName(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
	}{
		{name: "short", source: "Road Trip", want: "Road Trip (Copy)"},
		{name: "exactly fits", source: strings.Repeat("a", 248), want: strings.Repeat("a", 248) + " (Copy)"},
		{name: "cut", source: strings.Repeat("a", 249), want: strings.Repeat("a", 248) + " (Copy)"},
		{name: "cut before space", source: strings.Repeat("a", 247) + "  b", want: strings.Repeat("a", 247) + " (Copy)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, defaultCopyName(tt.source))
		})
	}
}

func TestCopyPlaylist_ExplicitName(t *testing.T) {
	svc, m := newTestPlaylistService(t)
	m.playlists.EXPECT().FindPlaylistByID(gomock.Any(), int64(1)).Return(playlistOf(1, "Src", alice), nil)
	m.users.EXPECT().FindUserByUsername(gomock.Any(), "alice").Return(alice, nil)
	m.playlists.EXPECT().SavePlaylist(gomock.Any(), gomock.Any()).Return(nil)

	dto, err := svc.CopyPlaylist(context.Background(), 1, "Mine Now", "alice")
	require.NoError(t, err)
	assert.Equal(t, "Mine Now", dto.Name)
}

func TestCopyPlaylist_MissingSource(t *testing.T) {
	svc, m := newTestPlaylistService(t)
	m.playlists.EXPECT().FindPlaylistByID(gomock.Any(), int64(8)).Return(models.Playlist{}, store.ErrPlaylistNotFound)

	_, err := svc.CopyPlaylist(context.Background(), 8, "", "alice")
	assert.ErrorIs(t, err, ErrResourceNotFound)
}
