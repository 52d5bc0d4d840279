package service

import (
	"context"
	"sort"
	"sync"

	log "github.com/sirupsen/logrus"

	"food-express-backend/models"
	"food-express-backend/repository"
)

// recentOrderCount is the length of the dashboard's recent-orders list.
const recentOrderCount = 5

// AdminService produces the admin dashboard views from the order collection
// and manages the live order feed from the remote directory. Customer
// records are not stored separately; they are rolled up from orders on
// every read so deleting a customer's orders removes the customer.
type AdminService struct {
	orders    repository.OrderRepositoryInterface
	dishes    repository.DishRepositoryInterface
	directory Directory

	mu     sync.Mutex
	cancel Unsubscribe
}

func NewAdminService(orders repository.OrderRepositoryInterface, dishes repository.DishRepositoryInterface, directory Directory) *AdminService {
	return &AdminService{orders: orders, dishes: dishes, directory: directory}
}

// ListOrders returns all orders, newest first.
func (s *AdminService) ListOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return orders, nil
}

// RecentOrders returns the latest orders for the dashboard.
func (s *AdminService) RecentOrders(ctx context.Context) ([]models.Order, error) {
	orders, err := s.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	if len(orders) > recentOrderCount {
		orders = orders[:recentOrderCount]
	}
	return orders, nil
}

// AggregateUsers groups the order collection by customer and returns one
// roll-up per customer, highest spender first. Ties keep first-order
// appearance order. Identity fields come from each customer's first seen
// order; the joined date is their earliest order date.
func (s *AdminService) AggregateUsers(ctx context.Context) ([]models.UserAggregate, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	byUser := make(map[string]*models.UserAggregate)
	var keys []string

	for _, order := range orders {
		key := aggregateKey(order)
		agg, ok := byUser[key]
		if !ok {
			agg = &models.UserAggregate{
				Name:       order.UserName,
				Email:      order.UserEmail,
				Phone:      order.Address.Phone,
				City:       order.Address.City,
				JoinedDate: order.OrderDate,
				UserID:     key,
			}
			byUser[key] = agg
			keys = append(keys, key)
		}
		agg.TotalOrders++
		agg.TotalSpent += order.Total
		if order.OrderDate.Before(agg.JoinedDate) {
			agg.JoinedDate = order.OrderDate
		}
	}

	aggregates := make([]models.UserAggregate, 0, len(keys))
	for _, key := range keys {
		aggregates = append(aggregates, *byUser[key])
	}
	sort.SliceStable(aggregates, func(i, j int) bool {
		return aggregates[i].TotalSpent > aggregates[j].TotalSpent
	})
	return aggregates, nil
}

// aggregateKey picks the grouping key for an order's customer: id, else
// email, else name, else "guest".
func aggregateKey(order models.Order) string {
	if order.UserID != "" {
		return order.UserID
	}
	if order.UserEmail != "" {
		return order.UserEmail
	}
	if order.UserName != "" {
		return order.UserName
	}
	return "guest"
}

// DeleteUser removes every order whose user id, email or name equals the
// identifier. Since customers only exist as roll-ups of their orders, this
// removes the customer from the admin views entirely.
func (s *AdminService) DeleteUser(ctx context.Context, identifier string) (int, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return 0, err
	}

	kept := orders[:0]
	removed := 0
	for _, order := range orders {
		if order.UserID == identifier || order.UserEmail == identifier || order.UserName == identifier {
			removed++
			continue
		}
		kept = append(kept, order)
	}
	if removed == 0 {
		return 0, nil
	}

	if err := s.orders.ReplaceAll(ctx, kept); err != nil {
		return 0, err
	}
	log.Printf("✓ Deleted %d orders for user %s", removed, identifier)
	return removed, nil
}

// Stats computes the dashboard headline numbers. Pending counts orders that
// have not started preparation yet.
func (s *AdminService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	orders, err := s.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	dishes, err := s.dishes.List(ctx)
	if err != nil {
		return nil, err
	}
	aggregates, err := s.AggregateUsers(ctx)
	if err != nil {
		return nil, err
	}

	stats := &models.DashboardStats{
		TotalOrders: len(orders),
		TotalUsers:  len(aggregates),
		TotalDishes: len(dishes),
	}
	for _, order := range orders {
		stats.TotalRevenue += order.Total
		if order.Status == models.StatusPending || order.Status == models.StatusConfirmed {
			stats.PendingOrders++
		}
	}
	return stats, nil
}

// StartOrderFeed subscribes to the remote directory's order collection and
// mirrors every snapshot into durable storage, so the admin views survive a
// restart even when orders were placed against another instance. A second
// call replaces the previous feed.
func (s *AdminService) StartOrderFeed(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	cancel, err := s.directory.Subscribe(ctx, CollectionOrders, "orderDate", true,
		func(orders []models.Order) {
			if err := s.orders.ReplaceAll(ctx, orders); err != nil {
				log.Printf("❌ Failed to mirror order snapshot: %v", err)
				return
			}
			log.Printf("📦 Order feed snapshot: %d orders", len(orders))
		},
		func(err error) {
			log.Printf("❌ Order feed error: %v", err)
		})
	if err != nil {
		return err
	}
	s.cancel = cancel
	return nil
}

// StopOrderFeed ends the live order feed, if one is running.
func (s *AdminService) StopOrderFeed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}
