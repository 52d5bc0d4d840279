package repository

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"food-express-backend/models"
	"food-express-backend/storage"
)

// UserRepository persists registered accounts as a JSON array under the
// durable "users" key.
type UserRepository struct {
	store storage.Store
}

// NewUserRepository creates a new UserRepository over the durable store.
func NewUserRepository(store storage.Store) *UserRepository {
	return &UserRepository{store: store}
}

// Ensure UserRepository implements UserRepositoryInterface
var _ UserRepositoryInterface = (*UserRepository)(nil)

func (r *UserRepository) list(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if _, err := r.store.GetJSON(ctx, storage.KeyUsers, &users); err != nil {
		return nil, errors.Wrap(err, "failed to load users")
	}
	return users, nil
}

// Create stores a new account. Emails are unique, case-insensitively.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	users, err := r.list(ctx)
	if err != nil {
		return err
	}
	for _, existing := range users {
		if strings.EqualFold(existing.Email, user.Email) {
			return ErrEmailTaken
		}
	}
	users = append(users, *user)
	if err := r.store.SetJSON(ctx, storage.KeyUsers, users); err != nil {
		return errors.Wrap(err, "failed to create user")
	}
	return nil
}

// GetByEmail looks up an account by email, case-insensitively.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if strings.EqualFold(users[i].Email, email) {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}

// GetByID looks up an account by id.
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	users, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].ID == id {
			return &users[i], nil
		}
	}
	return nil, ErrUserNotFound
}
