// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterResponse is returned with 201 Created after a successful
// registration.
type RegisterResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the signed bearer token issued on login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Principal is the authenticated caller attached to a request context by the
// authentication middleware. Its role is loaded from storage, not from the
// token.
type Principal struct {
	// UserID is the identifier of the authenticated user.
	UserID int64 `json:"userId"`

	// Username is the token subject.
	Username string `json:"username"`

	// Role is the role persisted for the user at the time of the request.
	Role string `json:"role"`
}

// IsAdmin reports whether the principal carries RoleAdmin.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
