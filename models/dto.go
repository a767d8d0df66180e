// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PlaylistDTO is the public JSON representation of a playlist.
type PlaylistDTO struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	OwnerUsername string    `json:"ownerUsername"`
	Songs         []SongDTO `json:"songs"`
}

// SongDTO is the public JSON representation of a song.
type SongDTO struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	Artist            string `json:"artist"`
	DurationInSeconds int    `json:"durationInSeconds"`
}

// SongCreateRequest is the body of POST /api/playlists/{id}/songs.
type SongCreateRequest struct {
	Title             string `json:"title"`
	Artist            string `json:"artist"`
	DurationInSeconds int    `json:"durationInSeconds"`
}

// PlaylistCreateRequest is the body of POST /api/playlists.
type PlaylistCreateRequest struct {
	Name string `json:"name"`
}

// NewPlaylistDTO maps a Playlist entity to its DTO. Songs are always
// rendered as a JSON array, never as null.
func NewPlaylistDTO(p Playlist) PlaylistDTO {
	songs := make([]SongDTO, 0, len(p.Songs))
	for _, s := range p.Songs {
		songs = append(songs, NewSongDTO(*s))
	}

	return PlaylistDTO{
		ID:            p.ID,
		Name:          p.Name,
		OwnerUsername: p.Owner.Username,
		Songs:         songs,
	}
}

// NewSongDTO maps a Song entity to its DTO.
func NewSongDTO(s Song) SongDTO {
	return SongDTO{
		ID:                s.ID,
		Title:             s.Title,
		Artist:            s.Artist,
		DurationInSeconds: s.DurationInSeconds,
	}
}

// ToSong converts the request into a detached Song entity.
func (r SongCreateRequest) ToSong() *Song {
	return NewSong(r.Title, r.Artist, r.DurationInSeconds)
}
