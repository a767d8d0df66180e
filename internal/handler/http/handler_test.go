package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/vibe-vault/internal/config"
	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/internal/mock"
	"github.com/MKhiriev/vibe-vault/internal/service"
	"github.com/MKhiriev/vibe-vault/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

type testHandler struct {
	router    http.Handler
	auth      *mock.MockAuthService
	playlists *mock.MockPlaylistService
	appInfo   *mock.MockAppInfoService
}

func newTestHandler(t *testing.T) *testHandler {
	t.Helper()
	ctrl := gomock.NewController(t)

	th := &testHandler{
		auth:      mock.NewMockAuthService(ctrl),
		playlists: mock.NewMockPlaylistService(ctrl),
		appInfo:   mock.NewMockAppInfoService(ctrl),
	}
	h := NewHandler(&service.Services{
		AuthService:     th.auth,
		PlaylistService: th.playlists,
		AppInfoService:  th.appInfo,
	}, config.Server{}, logger.Nop())
	th.router = h.Init()

	return th
}

// loginAs makes the auth mocks accept "Bearer <username>-token" for username.
func (th *testHandler) loginAs(username, role string) string {
	raw := username + "-token"
	token := models.Token{Username: username, SignedString: raw}

	th.auth.EXPECT().ParseToken(gomock.Any(), raw).Return(token, nil).AnyTimes()
	th.auth.EXPECT().Authenticate(gomock.Any(), token).
		Return(models.Principal{UserID: 1, Username: username, Role: role}, nil).AnyTimes()

	return "Bearer " + raw
}

func (th *testHandler) do(t *testing.T, method, target string, body any, authHeader string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	th.router.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) models.ErrorResponse {
	t.Helper()
	resp := decodeBody[models.ErrorResponse](t, rec)
	require.Equal(t, rec.Code, resp.Status)
	require.Equal(t, http.StatusText(rec.Code), resp.Error)
	return resp
}
