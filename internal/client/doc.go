// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vibe-vault command-line client.
//
// It maps cobra commands onto the REST API exposed by the server through
// [adapter.PlaylistAPI]. Results are printed as aligned tables or, with
// --json, as the raw API documents.
package client
