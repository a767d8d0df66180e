// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// notFound is registered as the router's NotFound handler so that unknown
// paths are answered with the same JSON envelope as every other error.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}

// methodNotAllowed is registered as the router's MethodNotAllowed handler.
func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrMethodNotAllowed)
}
