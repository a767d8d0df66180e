// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/MKhiriev/vibe-vault/models"
	"github.com/stretchr/testify/assert"
)

func TestContextKeyString(t *testing.T) {
	assert.Equal(t, "principal", PrincipalCtxKey.String())
	assert.Equal(t, "testKey", contextKey("testKey").String())
}

func TestGetPrincipalFromContext_Success(t *testing.T) {
	want := models.Principal{UserID: 7, Username: "alice", Role: models.RoleAdmin}
	ctx := WithPrincipal(context.Background(), want)

	got, ok := GetPrincipalFromContext(ctx)

	assert.True(t, ok)
	assert.Equal(t, want, got)
	assert.True(t, got.IsAdmin())
}

func TestGetPrincipalFromContext_Missing(t *testing.T) {
	got, ok := GetPrincipalFromContext(context.Background())

	assert.False(t, ok)
	assert.Equal(t, models.Principal{}, got)
}

func TestGetPrincipalFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), PrincipalCtxKey, "alice")

	_, ok := GetPrincipalFromContext(ctx)
	assert.False(t, ok)
}

func TestGetPrincipalFromContext_EmptyUsername(t *testing.T) {
	ctx := WithPrincipal(context.Background(), models.Principal{UserID: 1})

	_, ok := GetPrincipalFromContext(ctx)
	assert.False(t, ok)
}
