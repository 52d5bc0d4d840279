package repository

import (
	"context"
	"strings"

	"github.com/pkg/errors"

	"food-express-backend/models"
	"food-express-backend/storage"
)

// DishRepository persists the dish catalog as a JSON array under the
// durable "dishes" key.
type DishRepository struct {
	store storage.Store
}

// NewDishRepository creates a new DishRepository over the durable store.
func NewDishRepository(store storage.Store) *DishRepository {
	return &DishRepository{store: store}
}

// Ensure DishRepository implements DishRepositoryInterface
var _ DishRepositoryInterface = (*DishRepository)(nil)

// List returns every dish in catalog order.
func (r *DishRepository) List(ctx context.Context) ([]models.Dish, error) {
	var dishes []models.Dish
	if _, err := r.store.GetJSON(ctx, storage.KeyDishes, &dishes); err != nil {
		return nil, errors.Wrap(err, "failed to load dishes")
	}
	return dishes, nil
}

// GetByID looks up a dish by id.
func (r *DishRepository) GetByID(ctx context.Context, id string) (*models.Dish, error) {
	dishes, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range dishes {
		if dishes[i].ID == id {
			return &dishes[i], nil
		}
	}
	return nil, ErrDishNotFound
}

// ExistsByName reports whether a dish with the given name is already in the
// catalog. Names are compared case-insensitively; the Drive sync uses this
// to skip files it has already imported.
func (r *DishRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	dishes, err := r.List(ctx)
	if err != nil {
		return false, err
	}
	for _, dish := range dishes {
		if strings.EqualFold(dish.Name, name) {
			return true, nil
		}
	}
	return false, nil
}

// Save inserts the dish, or replaces the existing entry with the same id.
func (r *DishRepository) Save(ctx context.Context, dish *models.Dish) error {
	dishes, err := r.List(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range dishes {
		if dishes[i].ID == dish.ID {
			dishes[i] = *dish
			replaced = true
			break
		}
	}
	if !replaced {
		dishes = append(dishes, *dish)
	}

	if err := r.store.SetJSON(ctx, storage.KeyDishes, dishes); err != nil {
		return errors.Wrap(err, "failed to save dish")
	}
	return nil
}

// Delete removes the dish with the given id.
func (r *DishRepository) Delete(ctx context.Context, id string) error {
	dishes, err := r.List(ctx)
	if err != nil {
		return err
	}

	kept := dishes[:0]
	found := false
	for _, dish := range dishes {
		if dish.ID == id {
			found = true
			continue
		}
		kept = append(kept, dish)
	}
	if !found {
		return ErrDishNotFound
	}

	if err := r.store.SetJSON(ctx, storage.KeyDishes, kept); err != nil {
		return errors.Wrap(err, "failed to delete dish")
	}
	return nil
}
