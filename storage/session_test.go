package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffectiveUserIDFallback(t *testing.T) {
	store := NewSessionStore()

	sess := store.Create()
	assert.Equal(t, "guest", sess.EffectiveUserID())
	assert.False(t, sess.Authenticated())

	sess.Set(SessionUserEmail, "priya@example.com")
	assert.Equal(t, "priya@example.com", sess.EffectiveUserID())

	sess.Set(SessionUserID, "u1")
	assert.Equal(t, "u1", sess.EffectiveUserID())

	sess.Set(SessionUserName, "Priya")
	assert.True(t, sess.Authenticated())
}

func TestSessionStoreLifecycle(t *testing.T) {
	store := NewSessionStore()

	sess := store.Create()
	require.NotEmpty(t, sess.ID)
	assert.Same(t, sess, store.Get(sess.ID))

	store.Drop(sess.ID)
	assert.Nil(t, store.Get(sess.ID))
}

func TestSessionValues(t *testing.T) {
	sess := NewSessionStore().Create()

	sess.Set(SessionLastOrderID, "FE123")
	assert.True(t, sess.Has(SessionLastOrderID))
	assert.Equal(t, "FE123", sess.Get(SessionLastOrderID))

	sess.Delete(SessionLastOrderID)
	assert.False(t, sess.Has(SessionLastOrderID))
	assert.Empty(t, sess.Get(SessionLastOrderID))
}

func TestMemoryStoreCopiesValues(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	original := []string{"a", "b"}
	require.NoError(t, store.SetJSON(ctx, "k", original))
	original[0] = "mutated"

	var got []string
	found, err := store.GetJSON(ctx, "k", &got)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestStoreKeys(t *testing.T) {
	assert.Equal(t, "cart_u1", CartKey("u1"))
	assert.Equal(t, "address_priya@example.com", AddressKey("priya@example.com"))
}
