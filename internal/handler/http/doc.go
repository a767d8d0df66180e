// Package http implements the REST API of VibeVault.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging, panic
// recovery and request timeouts are handled in this package before requests
// are delegated to the service layer. Every non-2xx response is written as a
// [models.ErrorResponse].
package http
