// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/vibe-vault/models"
)

func (a *App) playlistsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "playlists",
		Aliases: []string{"pl"},
		Short:   "Browse and edit playlists",
	}

	cmd.AddCommand(
		a.listCommand(),
		a.getCommand(),
		a.searchCommand(),
		a.createCommand(),
		a.addSongCommand(),
		a.removeSongCommand(),
		a.deleteCommand(),
		a.copyCommand(),
	)

	return cmd
}

func (a *App) listCommand() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all playlists, or those of one owner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			playlists, err := a.api.ListPlaylists(cmd.Context(), owner)
			if err != nil {
				return fmt.Errorf("list playlists: %w", err)
			}
			return a.printPlaylists(playlists)
		},
	}
	cmd.Flags().StringVar(&owner, "owner", "", "only playlists owned by this username")

	return cmd
}

func (a *App) getCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a playlist with its songs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("playlist id", args[0])
			if err != nil {
				return err
			}

			playlist, err := a.api.GetPlaylist(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("get playlist: %w", err)
			}
			return a.printPlaylist(playlist)
		},
	}
}

func (a *App) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <keyword>",
		Short: "Find playlists whose name contains keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playlists, err := a.api.SearchPlaylists(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("search playlists: %w", err)
			}
			return a.printPlaylists(playlists)
		},
	}
}

func (a *App) createCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "create <name>",
		Short: "Create an empty playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			playlist, err := a.api.CreatePlaylist(cmd.Context(), args[0])
			if err != nil {
				return fmt.Errorf("create playlist: %w", err)
			}
			return a.printPlaylist(playlist)
		},
	}
}

func (a *App) addSongCommand() *cobra.Command {
	var song models.SongCreateRequest

	cmd := &cobra.Command{
		Use:   "add-song <playlist-id>",
		Short: "Append a song to a playlist",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("playlist id", args[0])
			if err != nil {
				return err
			}

			playlist, err := a.api.AddSong(cmd.Context(), id, song)
			if err != nil {
				return fmt.Errorf("add song: %w", err)
			}
			return a.printPlaylist(playlist)
		},
	}
	cmd.Flags().StringVar(&song.Title, "title", "", "song title")
	cmd.Flags().StringVar(&song.Artist, "artist", "", "artist name")
	cmd.Flags().IntVar(&song.DurationInSeconds, "duration", 0, "duration in seconds")

	return cmd
}

func (a *App) removeSongCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "remove-song <playlist-id> <song-id>",
		Short: "Remove a song from a playlist",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			playlistID, err := parseID("playlist id", args[0])
			if err != nil {
				return err
			}
			songID, err := parseID("song id", args[1])
			if err != nil {
				return err
			}

			if err = a.api.RemoveSong(cmd.Context(), playlistID, songID); err != nil {
				return fmt.Errorf("remove song: %w", err)
			}
			_, err = fmt.Fprintf(a.out, "Song %d removed from playlist %d\n", songID, playlistID)
			return err
		},
	}
}

func (a *App) deleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a playlist and its songs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("playlist id", args[0])
			if err != nil {
				return err
			}

			if err = a.api.DeletePlaylist(cmd.Context(), id); err != nil {
				return fmt.Errorf("delete playlist: %w", err)
			}
			_, err = fmt.Fprintf(a.out, "Playlist %d deleted\n", id)
			return err
		},
	}
}

func (a *App) copyCommand() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "copy <id>",
		Short: "Copy a playlist into your account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("playlist id", args[0])
			if err != nil {
				return err
			}

			playlist, err := a.api.CopyPlaylist(cmd.Context(), id, name)
			if err != nil {
				return fmt.Errorf("copy playlist: %w", err)
			}
			return a.printPlaylist(playlist)
		},
	}
	cmd.Flags().StringVar(&name, "name", "", `name of the copy (default "<name> (Copy)")`)

	return cmd
}

func parseID(what, raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: %s must be a positive number, got %q", ErrInvalidArgument, what, raw)
	}
	return id, nil
}
