// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced by the transport layer itself, before a request
// reaches the service layer. Callers can match against them with [errors.Is].
var (
	// ErrAuthenticationRequired is returned by requireAuth when a protected
	// endpoint is called without a valid bearer token.
	ErrAuthenticationRequired = errors.New("authentication required")

	// ErrInvalidJSON is returned when the request body is empty or is not a
	// valid JSON document for the expected type.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidPathID is returned when a path parameter that must hold a
	// numeric identifier cannot be parsed as an int64.
	ErrInvalidPathID = errors.New("invalid id in path")

	// ErrRouteNotFound is written for paths no route matches.
	ErrRouteNotFound = errors.New("no handler found for the requested path")

	// ErrMethodNotAllowed is written when the path exists but the method is
	// not registered for it.
	ErrMethodNotAllowed = errors.New("request method is not supported for this path")

	errHandlerPanicked = errors.New("handler panicked")
)
