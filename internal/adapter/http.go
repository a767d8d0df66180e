package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/MKhiriev/vibe-vault/internal/config"
	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/internal/utils"
	"github.com/MKhiriev/vibe-vault/models"
)

const (
	registerPath  = "/api/auth/register"
	loginPath     = "/api/auth/login"
	versionPath   = "/api/version"
	playlistsPath = "/api/playlists"
	searchPath    = "/api/playlists/search"
	playlistPath  = "/api/playlists/{id}"
	songsPath     = "/api/playlists/{id}/songs"
	songPath      = "/api/playlists/{id}/songs/{songId}"
	copyPath      = "/api/playlists/{id}/copy"
)

type httpPlaylistAPI struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPPlaylistAPI constructs the REST implementation of [PlaylistAPI]. The
// server URL is normalised: a missing scheme defaults to http and trailing
// slashes are dropped. A token from cfg is used for authenticated calls.
func NewHTTPPlaylistAPI(cfg config.ClientConfig, logger *logger.Logger) (PlaylistAPI, error) {
	baseURL, err := normalizeBaseURL(cfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidServerURL, err)
	}

	api := &httpPlaylistAPI{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	api.SetToken(cfg.Token)

	return api, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpPlaylistAPI) SetToken(token string) {
	h.token = strings.TrimSpace(token)
	h.client.SetAuthToken(h.token)
}

func (h *httpPlaylistAPI) Token() string {
	return h.token
}

func (h *httpPlaylistAPI) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResponse, error) {
	var registered models.RegisterResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&registered).
		Post(registerPath)
	if err != nil {
		return models.RegisterResponse{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RegisterResponse{}, err
	}

	return registered, nil
}

// Login implements [PlaylistAPI]. The returned token is kept for subsequent
// requests.
func (h *httpPlaylistAPI) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	var loggedIn models.LoginResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&loggedIn).
		Post(loginPath)
	if err != nil {
		return models.LoginResponse{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResponse{}, err
	}

	h.SetToken(loggedIn.Token)
	h.logger.Debug().Str("username", loggedIn.Username).Msg("logged in")

	return loggedIn, nil
}

func (h *httpPlaylistAPI) ListPlaylists(ctx context.Context, owner string) ([]models.PlaylistDTO, error) {
	playlists := []models.PlaylistDTO{}

	req := h.client.R().SetContext(ctx).SetResult(&playlists)
	if owner != "" {
		req.SetQueryParam("owner", owner)
	}

	resp, err := req.Get(playlistsPath)
	if err != nil {
		return nil, fmt.Errorf("list playlists request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return playlists, nil
}

func (h *httpPlaylistAPI) GetPlaylist(ctx context.Context, id int64) (models.PlaylistDTO, error) {
	var playlist models.PlaylistDTO

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&playlist).
		Get(playlistPath)
	if err != nil {
		return models.PlaylistDTO{}, fmt.Errorf("get playlist request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PlaylistDTO{}, err
	}

	return playlist, nil
}

func (h *httpPlaylistAPI) SearchPlaylists(ctx context.Context, keyword string) ([]models.PlaylistDTO, error) {
	playlists := []models.PlaylistDTO{}

	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("keyword", keyword).
		SetResult(&playlists).
		Get(searchPath)
	if err != nil {
		return nil, fmt.Errorf("search playlists request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return playlists, nil
}

func (h *httpPlaylistAPI) CreatePlaylist(ctx context.Context, name string) (models.PlaylistDTO, error) {
	var playlist models.PlaylistDTO

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.PlaylistCreateRequest{Name: name}).
		SetResult(&playlist).
		Post(playlistsPath)
	if err != nil {
		return models.PlaylistDTO{}, fmt.Errorf("create playlist request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PlaylistDTO{}, err
	}

	return playlist, nil
}

func (h *httpPlaylistAPI) AddSong(ctx context.Context, playlistID int64, song models.SongCreateRequest) (models.PlaylistDTO, error) {
	var playlist models.PlaylistDTO

	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(playlistID, 10)).
		SetBody(song).
		SetResult(&playlist).
		Post(songsPath)
	if err != nil {
		return models.PlaylistDTO{}, fmt.Errorf("add song request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PlaylistDTO{}, err
	}

	return playlist, nil
}

func (h *httpPlaylistAPI) RemoveSong(ctx context.Context, playlistID, songID int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(map[string]string{
			"id":     strconv.FormatInt(playlistID, 10),
			"songId": strconv.FormatInt(songID, 10),
		}).
		Delete(songPath)
	if err != nil {
		return fmt.Errorf("remove song request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpPlaylistAPI) DeletePlaylist(ctx context.Context, id int64) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		Delete(playlistPath)
	if err != nil {
		return fmt.Errorf("delete playlist request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpPlaylistAPI) CopyPlaylist(ctx context.Context, id int64, newName string) (models.PlaylistDTO, error) {
	var playlist models.PlaylistDTO

	req := h.client.R().
		SetContext(ctx).
		SetPathParam("id", strconv.FormatInt(id, 10)).
		SetResult(&playlist)
	if newName != "" {
		req.SetQueryParam("newName", newName)
	}

	resp, err := req.Post(copyPath)
	if err != nil {
		return models.PlaylistDTO{}, fmt.Errorf("copy playlist request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PlaylistDTO{}, err
	}

	return playlist, nil
}

func (h *httpPlaylistAPI) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get(versionPath)
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
