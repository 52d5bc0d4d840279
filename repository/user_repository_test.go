package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-express-backend/models"
	"food-express-backend/storage"
)

func TestUserCreateAndLookup(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(storage.NewMemoryStore())

	user := &models.User{ID: "u1", Name: "Priya", Email: "priya@example.com", Role: models.RoleUser}
	require.NoError(t, repo.Create(ctx, user))

	byEmail, err := repo.GetByEmail(ctx, "PRIYA@example.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	byID, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "priya@example.com", byID.Email)
}

func TestUserCreateRejectsDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(storage.NewMemoryStore())

	require.NoError(t, repo.Create(ctx, &models.User{ID: "u1", Email: "priya@example.com"}))
	err := repo.Create(ctx, &models.User{ID: "u2", Email: "Priya@Example.COM"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestUserLookupUnknown(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepository(storage.NewMemoryStore())

	_, err := repo.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}
