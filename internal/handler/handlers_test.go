package handler

import (
	"testing"

	"github.com/MKhiriev/vibe-vault/internal/config"
	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewHandlers_HTTPAddress verifies that a configured HTTP address yields
// an initialised HTTP handler.
func TestNewHandlers_HTTPAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
	assert.NotNil(t, h.HTTP.Init())
}

// TestNewHandlers_NoAddress verifies that an empty server config is rejected.
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

	assert.Nil(t, h)
	assert.ErrorIs(t, err, errNoHandlersAreCreated)
}
