package client

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/MKhiriev/vibe-vault/models"
)

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *App) printPlaylists(playlists []models.PlaylistDTO) error {
	if a.asJSON {
		return a.printJSON(playlists)
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tOWNER\tSONGS")
	for _, p := range playlists {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", p.ID, p.Name, p.OwnerUsername, len(p.Songs))
	}
	return tw.Flush()
}

func (a *App) printPlaylist(playlist models.PlaylistDTO) error {
	if a.asJSON {
		return a.printJSON(playlist)
	}

	tw := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Playlist %d: %s (owner: %s)\n", playlist.ID, playlist.Name, playlist.OwnerUsername)
	if len(playlist.Songs) == 0 {
		fmt.Fprintln(tw, "no songs")
		return tw.Flush()
	}

	fmt.Fprintln(tw, "ID\tTITLE\tARTIST\tDURATION")
	for _, s := range playlist.Songs {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", s.ID, s.Title, s.Artist, formatDuration(s.DurationInSeconds))
	}
	return tw.Flush()
}

// formatDuration renders seconds as m:ss.
func formatDuration(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
