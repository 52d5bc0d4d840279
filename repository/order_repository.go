package repository

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"food-express-backend/models"
	"food-express-backend/storage"
)

// OrderRepository persists the order collection as a JSON array under the
// durable "orders" key, mirroring how the storefront keeps it.
type OrderRepository struct {
	store storage.Store
}

// NewOrderRepository creates a new OrderRepository over the durable store.
func NewOrderRepository(store storage.Store) *OrderRepository {
	return &OrderRepository{store: store}
}

// Ensure OrderRepository implements OrderRepositoryInterface
var _ OrderRepositoryInterface = (*OrderRepository)(nil)

// Append adds a new order to the collection. Orders are never rewritten
// after this point except through ReplaceAll.
func (r *OrderRepository) Append(ctx context.Context, order *models.Order) error {
	orders, err := r.ListAll(ctx)
	if err != nil {
		return err
	}
	orders = append(orders, *order)
	if err := r.store.SetJSON(ctx, storage.KeyOrders, orders); err != nil {
		return errors.Wrap(err, "failed to append order")
	}
	log.Printf("✓ Order %s appended to local collection (%d total)", order.OrderID, len(orders))
	return nil
}

// GetByID looks up an order by its id.
func (r *OrderRepository) GetByID(ctx context.Context, orderID string) (*models.Order, error) {
	orders, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].OrderID == orderID {
			return &orders[i], nil
		}
	}
	return nil, ErrOrderNotFound
}

// ListAll returns every stored order in insertion order.
func (r *OrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	if _, err := r.store.GetJSON(ctx, storage.KeyOrders, &orders); err != nil {
		return nil, errors.Wrap(err, "failed to load orders")
	}
	return orders, nil
}

// ReplaceAll overwrites the whole collection. Used by the admin bulk delete
// and by the remote-directory snapshot mirror.
func (r *OrderRepository) ReplaceAll(ctx context.Context, orders []models.Order) error {
	if err := r.store.SetJSON(ctx, storage.KeyOrders, orders); err != nil {
		return errors.Wrap(err, "failed to replace orders")
	}
	return nil
}
