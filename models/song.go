package models

// Song is a single track inside a playlist. It maps to the "songs" table.
type Song struct {
	ID                int64
	Title             string
	Artist            string
	DurationInSeconds int

	// PlaylistID references the owning playlist; zero while detached.
	PlaylistID int64
}

// NewSong constructs a detached Song.
func NewSong(title, artist string, durationInSeconds int) *Song {
	return &Song{
		Title:             title,
		Artist:            artist,
		DurationInSeconds: durationInSeconds,
	}
}

// Copy returns a detached duplicate of the song without its identifiers.
func (s *Song) Copy() *Song {
	return NewSong(s.Title, s.Artist, s.DurationInSeconds)
}

// TableName returns the name of the database table
// associated with the Song model.
func (s Song) TableName() string {
	return "songs"
}
