package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"food-express-backend/models"
	"food-express-backend/repository"
)

// MenuService serves the public menu and the admin dish management
// operations. The public listing only shows active dishes; dishes imported
// from Drive stay pending until an admin activates them.
type MenuService struct {
	dishes repository.DishRepositoryInterface
}

func NewMenuService(dishes repository.DishRepositoryInterface) *MenuService {
	return &MenuService{dishes: dishes}
}

// ListMenu returns the active dishes matching the filter. Dishes without a
// status are treated as active so hand-seeded catalogs keep working.
func (s *MenuService) ListMenu(ctx context.Context, filter models.MenuFilter) ([]models.Dish, error) {
	all, err := s.dishes.List(ctx)
	if err != nil {
		return nil, err
	}

	menu := make([]models.Dish, 0, len(all))
	for _, dish := range all {
		if dish.Status != "" && dish.Status != models.DishStatusActive {
			continue
		}
		if filter.Category != "" && !strings.EqualFold(dish.Category, filter.Category) {
			continue
		}
		if filter.MinPrice > 0 && dish.Price < filter.MinPrice {
			continue
		}
		if filter.MaxPrice > 0 && dish.Price > filter.MaxPrice {
			continue
		}
		menu = append(menu, dish)
	}

	switch filter.SortBy {
	case "price-low":
		sort.SliceStable(menu, func(i, j int) bool { return menu[i].Price < menu[j].Price })
	case "price-high":
		sort.SliceStable(menu, func(i, j int) bool { return menu[i].Price > menu[j].Price })
	}
	return menu, nil
}

// GetDish returns a single dish by id, or repository.ErrDishNotFound.
func (s *MenuService) GetDish(ctx context.Context, id string) (*models.Dish, error) {
	return s.dishes.GetByID(ctx, id)
}

// ListAllDishes returns every dish including pending ones, for the admin
// catalog view.
func (s *MenuService) ListAllDishes(ctx context.Context) ([]models.Dish, error) {
	return s.dishes.List(ctx)
}

// SaveDish creates or updates a dish. New dishes without a status start
// active since an admin is entering them deliberately.
func (s *MenuService) SaveDish(ctx context.Context, dish *models.Dish) error {
	if dish.ID == "" {
		dish.ID = uuid.NewString()
	}
	if dish.Status == "" {
		dish.Status = models.DishStatusActive
	}
	if err := s.dishes.Save(ctx, dish); err != nil {
		return err
	}
	log.Printf("✓ Saved dish %q (%s)", dish.Name, dish.ID)
	return nil
}

// ActivateDish moves a pending dish onto the public menu.
func (s *MenuService) ActivateDish(ctx context.Context, id string) (*models.Dish, error) {
	dish, err := s.dishes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	dish.Status = models.DishStatusActive
	if err := s.dishes.Save(ctx, dish); err != nil {
		return nil, err
	}
	log.Printf("✓ Activated dish %q", dish.Name)
	return dish, nil
}

// DeleteDish removes a dish from the catalog.
func (s *MenuService) DeleteDish(ctx context.Context, id string) error {
	return s.dishes.Delete(ctx, id)
}
