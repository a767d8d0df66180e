// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/models"
)

// playlistRepository is the SQL implementation of [PlaylistRepository].
// Multi-statement writes run through [DB.WithinTx], so they join the
// caller's transaction when there is one.
type playlistRepository struct {
	db *DB
}

func NewPlaylistRepository(db *DB, logger *logger.Logger) PlaylistRepository {
	logger.Debug().Msg("creating playlist repository")
	return &playlistRepository{db: db}
}

func (r *playlistRepository) SavePlaylist(ctx context.Context, playlist *models.Playlist) error {
	return r.db.WithinTx(ctx, func(ctx context.Context) error {
		log := logger.FromContext(ctx)

		query, args, err := buildInsertPlaylistQuery(r.db.builder, *playlist)
		if err != nil {
			log.Err(err).Str("func", "*playlistRepository.SavePlaylist").Msg("error building query")
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if err := r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&playlist.ID); err != nil {
			log.Err(err).Str("func", "*playlistRepository.SavePlaylist").Msg("error inserting playlist")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		for _, song := range playlist.Songs {
			if err := r.insertSong(ctx, playlist.ID, song); err != nil {
				return err
			}
		}

		log.Debug().
			Str("func", "*playlistRepository.SavePlaylist").
			Int64("playlist_id", playlist.ID).
			Int("songs", len(playlist.Songs)).
			Msg("playlist saved")
		return nil
	})
}

func (r *playlistRepository) FindPlaylistByID(ctx context.Context, id int64) (models.Playlist, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPlaylistByIDQuery(r.db.builder, id)
	if err != nil {
		log.Err(err).Str("func", "*playlistRepository.FindPlaylistByID").Msg("error building query")
		return models.Playlist{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	playlist := models.Playlist{Songs: make([]*models.Song, 0)}
	err = r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(
		&playlist.ID, &playlist.Name,
		&playlist.Owner.ID, &playlist.Owner.Username, &playlist.Owner.Role,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Playlist{}, ErrPlaylistNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*playlistRepository.FindPlaylistByID").Msg("error scanning playlist")
		return models.Playlist{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	playlists := []models.Playlist{playlist}
	if err := r.attachSongs(ctx, playlists); err != nil {
		return models.Playlist{}, err
	}

	return playlists[0], nil
}

func (r *playlistRepository) FindAllPlaylists(ctx context.Context) ([]models.Playlist, error) {
	query, args, err := buildSelectAllPlaylistsQuery(r.db.builder)
	return r.findPlaylists(ctx, "FindAllPlaylists", query, args, err)
}

func (r *playlistRepository) FindPlaylistsByOwner(ctx context.Context, ownerID int64) ([]models.Playlist, error) {
	query, args, err := buildSelectPlaylistsByOwnerQuery(r.db.builder, ownerID)
	return r.findPlaylists(ctx, "FindPlaylistsByOwner", query, args, err)
}

func (r *playlistRepository) FindPlaylistsByNameContainingIgnoreCase(ctx context.Context, keyword string) ([]models.Playlist, error) {
	query, args, err := buildSelectPlaylistsByNameQuery(r.db.builder, r.db.lowerFunc, keyword)
	return r.findPlaylists(ctx, "FindPlaylistsByNameContainingIgnoreCase", query, args, err)
}

func (r *playlistRepository) DeletePlaylist(ctx context.Context, id int64) error {
	return r.db.WithinTx(ctx, func(ctx context.Context) error {
		log := logger.FromContext(ctx)

		songsQuery, songsArgs, err := buildDeleteSongsOfPlaylistQuery(r.db.builder, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err := r.db.conn(ctx).ExecContext(ctx, songsQuery, songsArgs...); err != nil {
			log.Err(err).Str("func", "*playlistRepository.DeletePlaylist").Msg("error deleting songs")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		query, args, err := buildDeletePlaylistQuery(r.db.builder, id)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		result, err := r.db.conn(ctx).ExecContext(ctx, query, args...)
		if err != nil {
			log.Err(err).Str("func", "*playlistRepository.DeletePlaylist").Msg("error deleting playlist")
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		if affected == 0 {
			return ErrPlaylistNotFound
		}

		return nil
	})
}

func (r *playlistRepository) AddSong(ctx context.Context, playlistID int64, song *models.Song) error {
	return r.insertSong(ctx, playlistID, song)
}

func (r *playlistRepository) DeleteSong(ctx context.Context, playlistID, songID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSongQuery(r.db.builder, playlistID, songID)
	if err != nil {
		log.Err(err).Str("func", "*playlistRepository.DeleteSong").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.conn(ctx).ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*playlistRepository.DeleteSong").Msg("error deleting song")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrSongNotFound
	}

	return nil
}

func (r *playlistRepository) insertSong(ctx context.Context, playlistID int64, song *models.Song) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertSongQuery(r.db.builder, playlistID, *song)
	if err != nil {
		log.Err(err).Str("func", "*playlistRepository.insertSong").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err := r.db.conn(ctx).QueryRowContext(ctx, query, args...).Scan(&song.ID); err != nil {
		log.Err(err).Str("func", "*playlistRepository.insertSong").Int64("playlist_id", playlistID).Msg("error inserting song")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	song.PlaylistID = playlistID

	return nil
}

// findPlaylists runs a playlist SELECT built by one of the build*Query
// helpers and loads the songs of every returned playlist.
func (r *playlistRepository) findPlaylists(ctx context.Context, caller, query string, args []any, buildErr error) ([]models.Playlist, error) {
	log := logger.FromContext(ctx)
	funcName := "*playlistRepository." + caller

	if buildErr != nil {
		log.Err(buildErr).Str("func", funcName).Msg("error building query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error executing query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	playlists := make([]models.Playlist, 0)
	for rows.Next() {
		playlist := models.Playlist{Songs: make([]*models.Song, 0)}
		if err := rows.Scan(
			&playlist.ID, &playlist.Name,
			&playlist.Owner.ID, &playlist.Owner.Username, &playlist.Owner.Role,
		); err != nil {
			log.Err(err).Str("func", funcName).Msg("error scanning playlist row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		playlists = append(playlists, playlist)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", funcName).Msg("error iterating playlist rows")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	rows.Close()

	if err := r.attachSongs(ctx, playlists); err != nil {
		return nil, err
	}

	return playlists, nil
}

// attachSongs loads the songs of all given playlists with one query.
func (r *playlistRepository) attachSongs(ctx context.Context, playlists []models.Playlist) error {
	if len(playlists) == 0 {
		return nil
	}

	log := logger.FromContext(ctx)

	ids := make([]int64, 0, len(playlists))
	byID := make(map[int64]*models.Playlist, len(playlists))
	for i := range playlists {
		ids = append(ids, playlists[i].ID)
		byID[playlists[i].ID] = &playlists[i]
	}

	query, args, err := buildSelectSongsQuery(r.db.builder, ids)
	if err != nil {
		log.Err(err).Str("func", "*playlistRepository.attachSongs").Msg("error building query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.conn(ctx).QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*playlistRepository.attachSongs").Msg("error executing query")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		song := &models.Song{}
		if err := rows.Scan(&song.ID, &song.Title, &song.Artist, &song.DurationInSeconds, &song.PlaylistID); err != nil {
			log.Err(err).Str("func", "*playlistRepository.attachSongs").Msg("error scanning song row")
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if playlist, ok := byID[song.PlaylistID]; ok {
			playlist.AddSong(song)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}
