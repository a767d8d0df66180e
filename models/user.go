// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Roles a user account can carry. The role is persisted with the user and is
// read back on every authenticated request.
const (
	// RoleUser is the default role of every registered account.
	RoleUser = "ROLE_USER"

	// RoleAdmin grants permission to modify playlists of any owner.
	RoleAdmin = "ROLE_ADMIN"
)

// User represents an account entity used for authentication and authorization.
// It maps to the "users" table.
type User struct {
	// ID is the database-generated identifier of the user.
	ID int64 `json:"id"`

	// Username is the unique, non-blank login name of the user.
	Username string `json:"username"`

	// Password stores the bcrypt hash of the user's password.
	// It is never exposed via JSON.
	Password string `json:"-"`

	// Role is either RoleUser or RoleAdmin.
	Role string `json:"role"`
}

// NewUser constructs a User with the default RoleUser role.
func NewUser(username, password string) User {
	return NewUserWithRole(username, password, RoleUser)
}

// NewUserWithRole constructs a User with an explicit role.
// An empty role falls back to RoleUser.
func NewUserWithRole(username, password, role string) User {
	if role == "" {
		role = RoleUser
	}

	return User{
		Username: username,
		Password: password,
		Role:     role,
	}
}

// IsAdmin reports whether the user carries the RoleAdmin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
