package service

import (
	"context"
	"testing"

	"linkmark-be/internal/apperror"
	"linkmark-be/internal/config"
	"linkmark-be/internal/dto"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthService(store *fakeStore) IAuthService {
	return NewAuthService(newFakeFactory(store), &config.AuthConfig{
		JWTSecret:        "test-secret",
		AccessTokenHours: 1,
		RefreshTokenDays: 7,
	})
}

func TestRegisterThenLogin(t *testing.T) {
	store := newFakeStore()
	svc := newAuthService(store)

	reg, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "reader@example.com",
		Password: "correct horse",
		FullName: "Reader",
	})
	require.NoError(t, err)

	res, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "reader@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	require.NotEmpty(t, res.RefreshToken)

	token, err := jwt.Parse(res.AccessToken, func(t *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	sub, err := token.Claims.GetSubject()
	require.NoError(t, err)
	assert.Equal(t, reg.Id.String(), sub)

	// stored rows never hold the raw refresh token
	for _, row := range store.tokens {
		assert.NotEqual(t, res.RefreshToken, row.TokenHash)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	store := newFakeStore()
	svc := newAuthService(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "reader@example.com",
		Password: "correct horse",
		FullName: "Reader",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "reader@example.com",
		Password: "wrong horse",
	})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeStore()
	svc := newAuthService(store)

	req := &dto.RegisterRequest{Email: "reader@example.com", Password: "correct horse", FullName: "Reader"}
	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}

func TestRefreshAndLogout(t *testing.T) {
	store := newFakeStore()
	svc := newAuthService(store)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Email:    "reader@example.com",
		Password: "correct horse",
		FullName: "Reader",
	})
	require.NoError(t, err)

	login, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "reader@example.com",
		Password: "correct horse",
	})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	require.NoError(t, svc.Logout(context.Background(), &dto.LogoutRequest{RefreshToken: login.RefreshToken}))

	// a revoked token no longer refreshes
	_, err = svc.Refresh(context.Background(), &dto.RefreshRequest{RefreshToken: login.RefreshToken})
	require.Error(t, err)
	assert.True(t, apperror.IsValidation(err))
}
