package models

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySubject is returned when a token carries no username in "sub".
var ErrEmptySubject = errors.New("empty subject in token")

// Token is an issued or parsed bearer token. The registered claims double as
// the claims target of jwt.ParseWithClaims, and Username caches "sub".
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	// SignedString is the compact header.payload.signature form sent to
	// clients in the login response.
	SignedString string `json:"-"`
	Username     string `json:"-"`
}

// GetUsername reads the subject claim. A blank subject is an error.
func (t *Token) GetUsername() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", err
	}
	if sub == "" {
		return "", ErrEmptySubject
	}
	return sub, nil
}

func (t *Token) String() string {
	return t.SignedString
}
