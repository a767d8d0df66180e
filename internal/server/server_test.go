package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/vibe-vault/internal/config"
	"github.com/MKhiriev/vibe-vault/internal/handler"
	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHandlers(t *testing.T, cfg config.Server) *handler.Handlers {
	t.Helper()
	h, err := handler.NewHandlers(&service.Services{}, cfg, logger.Nop())
	require.NoError(t, err)
	return h
}

// freeAddress reserves a loopback port and releases it for the server.
func freeAddress(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestNewServer_RequiresHTTP(t *testing.T) {
	s, err := NewServer(nil, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)

	s, err = NewServer(&handler.Handlers{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestNewServer_AppliesTimeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", ShutdownTimeout: 3 * time.Second}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	srv := s.(*server)
	assert.Equal(t, 3*time.Second, srv.shutdownTimeout)
	assert.Equal(t, readHeaderTimeout, srv.httpServer.server.ReadHeaderTimeout)
	assert.Equal(t, idleTimeout, srv.httpServer.server.IdleTimeout)
}

// TestRunServer_ServesUntilCancelled starts the server on a free port, hits
// the not-found route and verifies a clean shutdown on cancellation.
func TestRunServer_ServesUntilCancelled(t *testing.T) {
	cfg := config.Server{HTTPAddress: freeAddress(t), ShutdownTimeout: time.Second}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.RunServer(ctx) }()

	url := fmt.Sprintf("http://%s/api/unknown", cfg.HTTPAddress)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusNotFound
	}, 2*time.Second, 20*time.Millisecond)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestRunServer_ListenError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	cfg := config.Server{HTTPAddress: busy.Addr().String()}
	s, err := NewServer(newTestHandlers(t, cfg), cfg, logger.Nop())
	require.NoError(t, err)

	err = s.RunServer(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listen")
}
