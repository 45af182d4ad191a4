package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gostorefront/catalog/internal/service"
	"github.com/gostorefront/catalog/internal/tokens"
)

func newAuthService(t *testing.T) *service.AuthService {
	t.Helper()
	return &service.AuthService{
		Repo:      newTestRepo(t),
		JWTSecret: []byte("test-jwt-secret"),
	}
}

func TestAuthService_Register_SuccessAndConflict(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice@example.com", "Secret123", "Alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, user.PasswordHash)
	assert.NotEqual(t, "Secret123", user.PasswordHash)

	_, err = svc.Register(ctx, "alice@example.com", "Other456", "Alice Again")
	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrConflict)
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "Secret123", "")
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = svc.Register(ctx, "bob@example.com", "", "")
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestAuthService_Login_IssuesToken(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice@example.com", "Secret123", "Alice")
	require.NoError(t, err)

	res, err := svc.Login(ctx, "alice@example.com", "Secret123")
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	assert.True(t, res.AccessExp.After(time.Now()))

	claims, err := tokens.AccessClaimsFromToken(res.AccessToken, svc.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.Subject)
}

func TestAuthService_Login_InvalidCredentials(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "Secret123", "Alice")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, service.ErrUnauthorized)

	_, err = svc.Login(ctx, "nobody@example.com", "Secret123")
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}

func TestAuthService_VerifyPassword(t *testing.T) {
	svc := newAuthService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice@example.com", "Secret123", "Alice")
	require.NoError(t, err)

	user, err := svc.VerifyPassword(ctx, "alice@example.com", "Secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = svc.VerifyPassword(ctx, "alice@example.com", "Secret124")
	assert.ErrorIs(t, err, service.ErrUnauthorized)
}
