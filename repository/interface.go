package repository

import (
	"context"

	"github.com/pkg/errors"

	"food-express-backend/models"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrDishNotFound  = errors.New("dish not found")
	ErrUserNotFound  = errors.New("user not found")
	ErrEmailTaken    = errors.New("email already registered")
)

// OrderRepositoryInterface defines the contract for the durable, append-only
// order collection. The local collection is authoritative; the remote
// directory only mirrors it.
type OrderRepositoryInterface interface {
	Append(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, orderID string) (*models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	ReplaceAll(ctx context.Context, orders []models.Order) error
}

// DishRepositoryInterface defines the contract for the dish catalog.
type DishRepositoryInterface interface {
	List(ctx context.Context) ([]models.Dish, error)
	GetByID(ctx context.Context, id string) (*models.Dish, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Save(ctx context.Context, dish *models.Dish) error
	Delete(ctx context.Context, id string) error
}

// UserRepositoryInterface defines the contract for registered accounts.
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
}
