// Package server runs the VibeVault HTTP API.
//
// It owns the [net/http.Server] lifecycle: startup, signal handling and
// graceful shutdown bounded by the configured shutdown timeout.
package server
