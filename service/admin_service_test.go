package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-express-backend/models"
	"food-express-backend/repository"
	"food-express-backend/storage"
)

func newAdminFixture(t *testing.T) (*AdminService, repository.OrderRepositoryInterface, repository.DishRepositoryInterface) {
	t.Helper()
	store := storage.NewMemoryStore()
	orders := repository.NewOrderRepository(store)
	dishes := repository.NewDishRepository(store)
	return NewAdminService(orders, dishes, &fakeDirectory{}), orders, dishes
}

func adminOrder(id, userID, email, name string, total float64, placed time.Time) *models.Order {
	return &models.Order{
		OrderID:   id,
		UserID:    userID,
		UserEmail: email,
		UserName:  name,
		Total:     total,
		Status:    models.StatusConfirmed,
		OrderDate: placed,
		Address:   models.Address{Phone: "9876543210", City: "Bengaluru"},
	}
}

func TestAggregateUsers(t *testing.T) {
	ctx := context.Background()
	svc, orders, _ := newAdminFixture(t)
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, orders.Append(ctx, adminOrder("FE1", "u1", "priya@example.com", "Priya", 320, base)))
	require.NoError(t, orders.Append(ctx, adminOrder("FE2", "u1", "priya@example.com", "Priya", 180, base.Add(time.Hour))))
	require.NoError(t, orders.Append(ctx, adminOrder("FE3", "", "rahul@example.com", "Rahul", 900, base.Add(2*time.Hour))))
	require.NoError(t, orders.Append(ctx, adminOrder("FE4", "", "", "Walk-in", 100, base.Add(3*time.Hour))))

	aggs, err := svc.AggregateUsers(ctx)
	require.NoError(t, err)
	require.Len(t, aggs, 3)

	// Highest spender first; a customer without an id keys on email, then
	// on name.
	assert.Equal(t, "rahul@example.com", aggs[0].UserID)
	assert.Equal(t, 900.0, aggs[0].TotalSpent)

	assert.Equal(t, "u1", aggs[1].UserID)
	assert.Equal(t, 2, aggs[1].TotalOrders)
	assert.Equal(t, 500.0, aggs[1].TotalSpent)
	assert.Equal(t, base, aggs[1].JoinedDate)
	assert.Equal(t, "Bengaluru", aggs[1].City)

	assert.Equal(t, "Walk-in", aggs[2].UserID)
}

func TestAggregateUsersStableOnTies(t *testing.T) {
	ctx := context.Background()
	svc, orders, _ := newAdminFixture(t)
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	require.NoError(t, orders.Append(ctx, adminOrder("FE1", "u1", "a@example.com", "A", 100, base)))
	require.NoError(t, orders.Append(ctx, adminOrder("FE2", "u2", "b@example.com", "B", 100, base.Add(time.Minute))))

	aggs, err := svc.AggregateUsers(ctx)
	require.NoError(t, err)
	require.Len(t, aggs, 2)
	assert.Equal(t, "u1", aggs[0].UserID)
	assert.Equal(t, "u2", aggs[1].UserID)
}

func TestDeleteUserMatchesAllIdentifiers(t *testing.T) {
	ctx := context.Background()
	svc, orders, _ := newAdminFixture(t)
	base := time.Now()

	require.NoError(t, orders.Append(ctx, adminOrder("FE1", "u1", "priya@example.com", "Priya", 320, base)))
	require.NoError(t, orders.Append(ctx, adminOrder("FE2", "", "priya@example.com", "Priya", 180, base)))
	require.NoError(t, orders.Append(ctx, adminOrder("FE3", "", "", "Priya", 90, base)))
	require.NoError(t, orders.Append(ctx, adminOrder("FE4", "u2", "rahul@example.com", "Rahul", 500, base)))

	// Deleting by email removes the orders carrying that email.
	removed, err := svc.DeleteUser(ctx, "priya@example.com")
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	// Deleting by name catches the remaining order.
	removed, err = svc.DeleteUser(ctx, "Priya")
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	remaining, err := orders.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "FE4", remaining[0].OrderID)
}

func TestDeleteUserUnknownIdentifier(t *testing.T) {
	ctx := context.Background()
	svc, orders, _ := newAdminFixture(t)
	require.NoError(t, orders.Append(ctx, adminOrder("FE1", "u1", "a@example.com", "A", 100, time.Now())))

	removed, err := svc.DeleteUser(ctx, "nobody")
	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestDashboardStats(t *testing.T) {
	ctx := context.Background()
	svc, orders, dishes := newAdminFixture(t)
	base := time.Now()

	require.NoError(t, orders.Append(ctx, adminOrder("FE1", "u1", "a@example.com", "A", 320, base)))
	pending := adminOrder("FE2", "u2", "b@example.com", "B", 180, base)
	pending.Status = models.StatusPending
	require.NoError(t, orders.Append(ctx, pending))
	delivered := adminOrder("FE3", "u1", "a@example.com", "A", 500, base)
	delivered.Status = models.StatusDelivered
	require.NoError(t, orders.Append(ctx, delivered))

	require.NoError(t, dishes.Save(ctx, &models.Dish{ID: "d1", Name: "Paneer Tikka", Price: 249}))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalOrders)
	assert.Equal(t, 1000.0, stats.TotalRevenue)
	assert.Equal(t, 2, stats.TotalUsers)
	// Pending counts Pending plus Confirmed, not Delivered.
	assert.Equal(t, 2, stats.PendingOrders)
	assert.Equal(t, 1, stats.TotalDishes)
}

func TestRecentOrdersCapsAtFiveNewestFirst(t *testing.T) {
	ctx := context.Background()
	svc, orders, _ := newAdminFixture(t)
	base := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)

	for i := 0; i < 7; i++ {
		o := adminOrder("FE"+string(rune('A'+i)), "u1", "a@example.com", "A", 100, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, orders.Append(ctx, o))
	}

	recent, err := svc.RecentOrders(ctx)
	require.NoError(t, err)
	require.Len(t, recent, 5)
	assert.Equal(t, "FEG", recent[0].OrderID)
	assert.Equal(t, "FEC", recent[4].OrderID)
}

func TestOrderFeedLifecycle(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	orders := repository.NewOrderRepository(store)
	dishes := repository.NewDishRepository(store)
	dir := &fakeDirectory{}
	svc := NewAdminService(orders, dishes, dir)

	require.NoError(t, svc.StartOrderFeed(ctx))
	assert.Equal(t, 1, dir.subscribed)
	assert.Equal(t, 0, dir.unsubscribed)

	// Restarting the feed drops the previous subscription first.
	require.NoError(t, svc.StartOrderFeed(ctx))
	assert.Equal(t, 2, dir.subscribed)
	assert.Equal(t, 1, dir.unsubscribed)

	svc.StopOrderFeed()
	assert.Equal(t, 2, dir.unsubscribed)

	// Stopping an already-stopped feed is a no-op.
	svc.StopOrderFeed()
	assert.Equal(t, 2, dir.unsubscribed)
}
