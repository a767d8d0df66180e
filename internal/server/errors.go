// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// errNoServersAreCreated means NewServer got no HTTP handler or address.
	errNoServersAreCreated = errors.New("no servers are created")
	// errServerFailed wraps a Serve error that was not caused by shutdown.
	errServerFailed = errors.New("server stopped unexpectedly")
)
