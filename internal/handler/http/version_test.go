package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetServerVersion_WritesVersion(t *testing.T) {
	th := newTestHandler(t)
	th.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("0.0.1-SNAPSHOT")

	rec := th.do(t, http.MethodGet, "/api/version", nil, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0.0.1-SNAPSHOT", rec.Body.String())
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/plain")
}

func TestGetServerVersion_IsPublicEvenWithBadToken(t *testing.T) {
	th := newTestHandler(t)
	th.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("1.2.3")

	rec := th.do(t, http.MethodGet, "/api/version", nil, "Basic dXNlcjpwYXNz")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.2.3", rec.Body.String())
}
