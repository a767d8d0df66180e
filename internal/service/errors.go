package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid username or password")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrResourceNotFound = errors.New("resource not found")
	ErrForbidden        = errors.New("you don't have permission to modify this playlist")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
