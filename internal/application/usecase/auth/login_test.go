package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoahotran/portfolio/pkg/apperror"
	"github.com/khoahotran/portfolio/pkg/auth"
	"github.com/khoahotran/portfolio/pkg/logger"
)

func newUseCase(t *testing.T, secret string) *LoginUseCase {
	t.Helper()
	hash, err := auth.HashPassword("correct horse")
	require.NoError(t, err)
	return NewLoginUseCase(hash, auth.NewJWTService(secret, time.Hour), logger.NewNop())
}

func TestLoginIssuesAdminToken(t *testing.T) {
	uc := newUseCase(t, "secret")

	out, err := uc.Execute(context.Background(), LoginInput{Password: "correct horse"})
	require.NoError(t, err)

	claims, err := auth.NewJWTService("secret", time.Hour).ValidateToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, AdminSubject, claims.Subject)
	assert.Equal(t, auth.RoleAdmin, claims.Role)
}

func TestLoginWrongPassword(t *testing.T) {
	_, err := newUseCase(t, "secret").Execute(context.Background(), LoginInput{Password: "battery staple"})
	assert.ErrorIs(t, err, apperror.ErrUnauthorized)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginDisabledWithoutSecret(t *testing.T) {
	_, err := newUseCase(t, "").Execute(context.Background(), LoginInput{Password: "correct horse"})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}
