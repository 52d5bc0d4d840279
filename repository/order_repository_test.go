package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-express-backend/models"
	"food-express-backend/storage"
)

func TestOrderAppendAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(storage.NewMemoryStore())

	order := &models.Order{
		OrderID:   "FE1700000000000001",
		UserID:    "u1",
		Total:     320,
		Status:    models.StatusConfirmed,
		OrderDate: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, repo.Append(ctx, order))

	got, err := repo.GetByID(ctx, order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, order.Total, got.Total)
	assert.Equal(t, order.Status, got.Status)
}

func TestOrderGetUnknown(t *testing.T) {
	repo := NewOrderRepository(storage.NewMemoryStore())
	_, err := repo.GetByID(context.Background(), "FE-missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestOrderListPreservesInsertionOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(storage.NewMemoryStore())

	for _, id := range []string{"FE1", "FE2", "FE3"} {
		require.NoError(t, repo.Append(ctx, &models.Order{OrderID: id}))
	}

	orders, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 3)
	assert.Equal(t, "FE1", orders[0].OrderID)
	assert.Equal(t, "FE3", orders[2].OrderID)
}

func TestOrderReplaceAll(t *testing.T) {
	ctx := context.Background()
	repo := NewOrderRepository(storage.NewMemoryStore())

	require.NoError(t, repo.Append(ctx, &models.Order{OrderID: "FE1"}))
	require.NoError(t, repo.ReplaceAll(ctx, []models.Order{{OrderID: "FE9"}}))

	orders, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, "FE9", orders[0].OrderID)

	_, err = repo.GetByID(ctx, "FE1")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}
