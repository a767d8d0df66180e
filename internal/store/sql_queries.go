package store

import (
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/vibe-vault/models"
)

var (
	usersTable     = models.User{}.TableName()
	playlistsTable = models.Playlist{}.TableName()
	songsTable     = models.Song{}.TableName()
)

var (
	userColumns = []string{"id", "username", "password", "role"}
	songColumns = []string{"id", "title", "artist", "duration_in_seconds", "playlist_id"}

	// playlist rows are joined with their owner
	playlistColumns = []string{"p.id", "p.name", "u.id", "u.username", "u.role"}
)

// likeEscaper escapes LIKE wildcards so a keyword is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("username", "password", "role").
		Values(user.Username, user.Password, user.Role).
		Suffix("RETURNING id").
		ToSql()
}

func buildSelectUserByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildCountUsersByUsernameQuery(b sq.StatementBuilderType, username string) (string, []any, error) {
	return b.Select("COUNT(*)").
		From(usersTable).
		Where(sq.Eq{"username": username}).
		ToSql()
}

func buildUpdateUserRoleQuery(b sq.StatementBuilderType, userID int64, role string) (string, []any, error) {
	return b.Update(usersTable).
		Set("role", role).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildInsertPlaylistQuery(b sq.StatementBuilderType, playlist models.Playlist) (string, []any, error) {
	return b.Insert(playlistsTable).
		Columns("name", "owner_id").
		Values(playlist.Name, playlist.Owner.ID).
		Suffix("RETURNING id").
		ToSql()
}

func selectPlaylists(b sq.StatementBuilderType) sq.SelectBuilder {
	return b.Select(playlistColumns...).
		From(playlistsTable + " p").
		Join(usersTable + " u ON u.id = p.owner_id").
		OrderBy("p.id")
}

func buildSelectPlaylistByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return selectPlaylists(b).Where(sq.Eq{"p.id": id}).ToSql()
}

func buildSelectAllPlaylistsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return selectPlaylists(b).ToSql()
}

func buildSelectPlaylistsByOwnerQuery(b sq.StatementBuilderType, ownerID int64) (string, []any, error) {
	return selectPlaylists(b).Where(sq.Eq{"p.owner_id": ownerID}).ToSql()
}

// buildSelectPlaylistsByNameQuery matches keyword anywhere in the name,
// ignoring case. lowerFunc must fold case like strings.ToLower.
func buildSelectPlaylistsByNameQuery(b sq.StatementBuilderType, lowerFunc, keyword string) (string, []any, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(keyword)) + "%"

	return selectPlaylists(b).
		Where(lowerFunc+`(p.name) LIKE ? ESCAPE '\'`, pattern).
		ToSql()
}

func buildDeletePlaylistQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(playlistsTable).Where(sq.Eq{"id": id}).ToSql()
}

func buildSelectSongsQuery(b sq.StatementBuilderType, playlistIDs []int64) (string, []any, error) {
	return b.Select(songColumns...).
		From(songsTable).
		Where(sq.Eq{"playlist_id": playlistIDs}).
		OrderBy("playlist_id", "id").
		ToSql()
}

func buildInsertSongQuery(b sq.StatementBuilderType, playlistID int64, song models.Song) (string, []any, error) {
	return b.Insert(songsTable).
		Columns("title", "artist", "duration_in_seconds", "playlist_id").
		Values(song.Title, song.Artist, song.DurationInSeconds, playlistID).
		Suffix("RETURNING id").
		ToSql()
}

func buildDeleteSongQuery(b sq.StatementBuilderType, playlistID, songID int64) (string, []any, error) {
	return b.Delete(songsTable).
		Where(sq.Eq{"id": songID, "playlist_id": playlistID}).
		ToSql()
}

func buildDeleteSongsOfPlaylistQuery(b sq.StatementBuilderType, playlistID int64) (string, []any, error) {
	return b.Delete(songsTable).Where(sq.Eq{"playlist_id": playlistID}).ToSql()
}
