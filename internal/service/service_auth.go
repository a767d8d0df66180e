// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/vibe-vault/internal/config"
	"github.com/MKhiriev/vibe-vault/internal/logger"
	"github.com/MKhiriev/vibe-vault/internal/store"
	"github.com/MKhiriev/vibe-vault/internal/utils"
	"github.com/MKhiriev/vibe-vault/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for
// password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// passwordHashCost is the bcrypt cost applied to new password hashes.
	passwordHashCost int

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:   userRepository,
		passwordHashCost: cfg.PasswordHashCost,
		tokenSignKey:     cfg.TokenSignKey,
		tokenIssuer:      cfg.TokenIssuer,
		tokenDuration:    cfg.TokenDuration,
		logger:           logger,
	}
}

// RegisterUser creates a new account with ROLE_USER.
//
// Returns the persisted user (with a server-assigned ID) or:
//   - ErrInvalidDataProvided if the username or password is blank.
//   - store.ErrUsernameAlreadyExists if the username is taken.
//   - A wrapped storage error if the repository call fails.
func (a *authService) RegisterUser(ctx context.Context, request models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if isBlank(request.Username) || isBlank(request.Password) {
		log.Error().Str("username", request.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	exists, err := a.userRepository.ExistsByUsername(ctx, request.Username)
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user lookup ended with error")
		return models.User{}, fmt.Errorf("user lookup ended with error: %w", err)
	}
	if exists {
		log.Info().Str("username", request.Username).Msg("username is already taken")
		return models.User{}, store.ErrUsernameAlreadyExists
	}

	hash, err := utils.HashPassword(request.Password, a.passwordHashCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, models.NewUser(request.Username, hash))
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// An unknown username and a wrong password are indistinguishable to the
// caller: both return ErrInvalidCredentials.
func (a *authService) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if isBlank(request.Username) || isBlank(request.Password) {
		log.Error().Str("username", request.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, request.Username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("username", request.Username).Msg("login attempt for unknown user")
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		log.Err(err).Str("username", request.Username).Msg("user search by username failed")
		return models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.Password, request.Password) {
		log.Info().Int64("id", foundUser.ID).Str("username", foundUser.Username).Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT whose subject is the username.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.Username, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, malformed) is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect low-level
// JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// Authenticate turns a parsed token into a principal. A token for a user that
// no longer exists is rejected with ErrTokenIsExpiredOrInvalid.
func (a *authService) Authenticate(ctx context.Context, token models.Token) (models.Principal, error) {
	log := logger.FromContext(ctx)

	username := token.Username
	if username == "" {
		var err error
		if username, err = token.GetUsername(); err != nil {
			return models.Principal{}, ErrTokenIsExpiredOrInvalid
		}
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Info().Str("username", username).Msg("token subject does not exist")
		return models.Principal{}, ErrTokenIsExpiredOrInvalid
	}
	if err != nil {
		log.Err(err).Str("username", username).Msg("user search by username failed")
		return models.Principal{}, fmt.Errorf("user search by username failed: %w", err)
	}

	return models.Principal{UserID: user.ID, Username: user.Username, Role: user.Role}, nil
}

func (a *authService) EnsureAdmin(ctx context.Context, username, password string) error {
	log := logger.FromContext(ctx)

	if isBlank(username) || isBlank(password) {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindUserByUsername(ctx, username)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		hash, err := utils.HashPassword(password, a.passwordHashCost)
		if err != nil {
			return fmt.Errorf("password hashing failed: %w", err)
		}
		if _, err := a.userRepository.CreateUser(ctx, models.NewUserWithRole(username, hash, models.RoleAdmin)); err != nil {
			log.Err(err).Str("username", username).Msg("admin creation ended with error")
			return fmt.Errorf("admin creation ended with error: %w", err)
		}
		log.Info().Str("username", username).Msg("admin user created")
		return nil
	case err != nil:
		return fmt.Errorf("user search by username failed: %w", err)
	case user.IsAdmin():
		return nil
	}

	if err := a.userRepository.UpdateUserRole(ctx, user.ID, models.RoleAdmin); err != nil {
		log.Err(err).Str("username", username).Msg("admin promotion ended with error")
		return fmt.Errorf("admin promotion ended with error: %w", err)
	}
	log.Info().Str("username", username).Msg("existing user promoted to admin")

	return nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
