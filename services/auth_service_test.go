package services

import (
	"testing"
	"time"

	"newsbridge-api/config"
	"newsbridge-api/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testJWTConfig = config.JWTConfig{
	Secret:     []byte("test-secret"),
	Expiration: time.Hour,
}

func TestRegisterHashesPasswordAndDefaultsRole(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testJWTConfig)

	resp, err := svc.Register(models.RegisterRequest{
		Username: "writer",
		Email:    "writer@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleEditor, resp.User.Role)

	stored := repo.users["writer@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("secret123")))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testJWTConfig)

	_, err := svc.Register(models.RegisterRequest{
		Username: "one",
		Email:    "dup@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	_, err = svc.Register(models.RegisterRequest{
		Username: "two",
		Email:    "dup@example.com",
		Password: "secret456",
	})
	assert.ErrorIs(t, err, models.ErrUserExists)
}

func TestLogin(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewAuthService(repo, testJWTConfig)

	_, err := svc.Register(models.RegisterRequest{
		Username: "admin",
		Email:    "admin@example.com",
		Password: "secret123",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	resp, err := svc.Login(models.LoginRequest{Email: "admin@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.RoleAdmin, resp.User.Role)

	_, err = svc.Login(models.LoginRequest{Email: "admin@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)

	_, err = svc.Login(models.LoginRequest{Email: "missing@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, models.ErrInvalidCredentials)
}
