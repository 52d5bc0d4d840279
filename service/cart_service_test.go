package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-express-backend/models"
	"food-express-backend/storage"
)

func newTestSession(t *testing.T, name, email string) *storage.Session {
	t.Helper()
	sess := storage.NewSessionStore().Create()
	sess.Set(storage.SessionUserName, name)
	sess.Set(storage.SessionUserEmail, email)
	return sess
}

func TestCartAddItem(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewCartService(store)
	sess := newTestSession(t, "Priya", "priya@example.com")

	cart, err := svc.AddItem(ctx, sess, models.AddItemRequest{ItemID: "dish_1", Name: "Paneer Tikka", Price: 249})
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, defaultItemImage, cart[0].Image)
	assert.Equal(t, defaultRestaurant, cart[0].Restaurant)

	// Same id merges instead of duplicating.
	cart, err = svc.AddItem(ctx, sess, models.AddItemRequest{ItemID: "dish_1", Name: "Paneer Tikka", Price: 249})
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 2, cart[0].Quantity)

	// Same name without an id also merges.
	cart, err = svc.AddItem(ctx, sess, models.AddItemRequest{Name: "Paneer Tikka", Price: 249})
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, 3, cart[0].Quantity)
}

func TestCartAddItemRequiresLogin(t *testing.T) {
	svc := NewCartService(storage.NewMemoryStore())
	sess := storage.NewSessionStore().Create()

	_, err := svc.AddItem(context.Background(), sess, models.AddItemRequest{Name: "Dal Makhani", Price: 199})
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestCartAddItemGeneratesID(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(storage.NewMemoryStore())
	sess := newTestSession(t, "Priya", "priya@example.com")

	cart, err := svc.AddItem(ctx, sess, models.AddItemRequest{Name: "Masala Dosa", Price: 120})
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.NotEmpty(t, cart[0].ItemID)
}

func TestCartQuantityBounds(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(storage.NewMemoryStore())
	sess := newTestSession(t, "Priya", "priya@example.com")

	_, err := svc.AddItem(ctx, sess, models.AddItemRequest{ItemID: "dish_1", Name: "Paneer Tikka", Price: 249})
	require.NoError(t, err)

	cart, err := svc.IncreaseQuantity(ctx, sess, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, cart[0].Quantity)

	cart, err = svc.DecreaseQuantity(ctx, sess, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, cart[0].Quantity)

	// Decreasing past one removes the line entirely; quantity never hits zero.
	cart, err = svc.DecreaseQuantity(ctx, sess, 0)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCartIndexOutOfRangeIsNoOp(t *testing.T) {
	ctx := context.Background()
	svc := NewCartService(storage.NewMemoryStore())
	sess := newTestSession(t, "Priya", "priya@example.com")

	_, err := svc.AddItem(ctx, sess, models.AddItemRequest{ItemID: "dish_1", Name: "Paneer Tikka", Price: 249})
	require.NoError(t, err)

	cart, err := svc.RemoveItem(ctx, sess, 5)
	require.NoError(t, err)
	assert.Len(t, cart, 1)

	cart, err = svc.DecreaseQuantity(ctx, sess, -1)
	require.NoError(t, err)
	assert.Len(t, cart, 1)
}

func TestCartsAreIsolatedPerUser(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewCartService(store)

	priya := newTestSession(t, "Priya", "priya@example.com")
	rahul := newTestSession(t, "Rahul", "rahul@example.com")

	_, err := svc.AddItem(ctx, priya, models.AddItemRequest{ItemID: "dish_1", Name: "Paneer Tikka", Price: 249})
	require.NoError(t, err)

	cart, err := svc.Load(ctx, rahul)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestLegacyCartMigration(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewCartService(store)
	sess := newTestSession(t, "Priya", "priya@example.com")

	legacy := models.Cart{{ItemID: "dish_9", Name: "Biryani", Price: 180, Quantity: 2}}
	require.NoError(t, store.SetJSON(ctx, storage.KeyLegacyCart, legacy))

	cart, err := svc.Load(ctx, sess)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "Biryani", cart[0].Name)

	// Legacy key is consumed.
	has, err := store.Has(ctx, storage.KeyLegacyCart)
	require.NoError(t, err)
	assert.False(t, has)

	// Re-running the migration is a no-op.
	require.NoError(t, svc.MigrateLegacyCart(ctx, sess))
	cart, err = svc.Load(ctx, sess)
	require.NoError(t, err)
	assert.Len(t, cart, 1)
}

func TestLegacyCartNeverOverwritesUserCart(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewCartService(store)
	sess := newTestSession(t, "Priya", "priya@example.com")

	_, err := svc.AddItem(ctx, sess, models.AddItemRequest{ItemID: "dish_1", Name: "Paneer Tikka", Price: 249})
	require.NoError(t, err)

	legacy := models.Cart{{ItemID: "dish_9", Name: "Biryani", Price: 180, Quantity: 2}}
	require.NoError(t, store.SetJSON(ctx, storage.KeyLegacyCart, legacy))

	cart, err := svc.Load(ctx, sess)
	require.NoError(t, err)
	require.Len(t, cart, 1)
	assert.Equal(t, "Paneer Tikka", cart[0].Name)
}

func TestCartClearRemovesKey(t *testing.T) {
	ctx := context.Background()
	store := storage.NewMemoryStore()
	svc := NewCartService(store)
	sess := newTestSession(t, "Priya", "priya@example.com")

	_, err := svc.AddItem(ctx, sess, models.AddItemRequest{ItemID: "dish_1", Name: "Paneer Tikka", Price: 249})
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, sess))

	has, err := store.Has(ctx, storage.CartKey(sess.EffectiveUserID()))
	require.NoError(t, err)
	assert.False(t, has)
}
