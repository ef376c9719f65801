package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"retrorank/internal/models"
	"retrorank/internal/storage"
)

func TestUserRepository_Create(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStore())
	ctx := context.Background()

	req := models.CreateUserRequest{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "123456",
	}

	t.Run("creates user with generated id and hashed password", func(t *testing.T) {
		user, err := repo.Create(ctx, req)
		require.NoError(t, err)

		assert.NotEmpty(t, user.ID)
		assert.Equal(t, "Ana", user.Name)
		assert.NotEqual(t, "123456", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("123456")))
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		_, err := repo.Create(ctx, req)
		assert.ErrorIs(t, err, models.ErrEmailTaken)
	})

	t.Run("email match is case-sensitive", func(t *testing.T) {
		upper := req
		upper.Email = "ANA@x.com"
		_, err := repo.Create(ctx, upper)
		assert.NoError(t, err)
	})
}

func TestUserRepository_RoundTrip(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStore())
	ctx := context.Background()

	created, err := repo.Create(ctx, models.CreateUserRequest{
		Name:     "Gamer Retro",
		Email:    "gamer@retro.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	byID, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, byID)

	byEmail, err := repo.GetByEmail(ctx, "gamer@retro.com")
	require.NoError(t, err)
	assert.Equal(t, created, byEmail)
}

func TestUserRepository_GetMissing(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStore())
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "no-such-id")
	assert.ErrorIs(t, err, models.ErrUserNotFound)

	_, err = repo.GetByEmail(ctx, "nobody@x.com")
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestUserRepository_VerifyPassword(t *testing.T) {
	repo := NewUserRepository(storage.NewMemoryStore())
	ctx := context.Background()

	created, err := repo.Create(ctx, models.CreateUserRequest{
		Name:     "Ana",
		Email:    "ana@x.com",
		Password: "123456",
	})
	require.NoError(t, err)

	t.Run("correct credentials", func(t *testing.T) {
		user, err := repo.VerifyPassword(ctx, "ana@x.com", "123456")
		require.NoError(t, err)
		assert.Equal(t, created.ID, user.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := repo.VerifyPassword(ctx, "ana@x.com", "wrong")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := repo.VerifyPassword(ctx, "ghost@x.com", "123456")
		assert.ErrorIs(t, err, models.ErrInvalidCredentials)
	})
}
