// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Playlist is a named, ordered collection of songs owned by a single user.
// It maps to the "playlists" table; deleting a playlist deletes its songs.
type Playlist struct {
	// ID is the database-generated identifier of the playlist.
	ID int64

	// Name is the non-blank display name of the playlist.
	Name string

	// Owner is the user the playlist belongs to.
	Owner User

	// Songs holds the playlist entries in insertion order.
	Songs []*Song
}

// NewPlaylist constructs an empty Playlist owned by owner.
func NewPlaylist(name string, owner User) Playlist {
	return Playlist{
		Name:  name,
		Owner: owner,
		Songs: make([]*Song, 0),
	}
}

// AddSong appends song to the playlist and points the song back at it.
// Both sides of the relation are kept consistent.
func (p *Playlist) AddSong(song *Song) {
	if song == nil {
		return
	}

	song.PlaylistID = p.ID
	p.Songs = append(p.Songs, song)
}

// RemoveSong detaches song from the playlist and clears its back-reference.
// Songs are matched by identity first and by persisted ID second; a song that
// is not part of the playlist is left untouched.
func (p *Playlist) RemoveSong(song *Song) {
	if song == nil {
		return
	}

	for i, s := range p.Songs {
		if s == song || (song.ID != 0 && s.ID == song.ID) {
			p.Songs = append(p.Songs[:i], p.Songs[i+1:]...)
			song.PlaylistID = 0
			return
		}
	}
}

// FindSong returns the song with the given ID, or nil if the playlist does
// not contain it.
func (p *Playlist) FindSong(songID int64) *Song {
	for _, s := range p.Songs {
		if s.ID == songID {
			return s
		}
	}
	return nil
}

// IsOwnedBy reports whether username is the owner of the playlist.
func (p *Playlist) IsOwnedBy(username string) bool {
	return p.Owner.Username == username
}

// TableName returns the name of the database table
// associated with the Playlist model.
func (p Playlist) TableName() string {
	return "playlists"
}
