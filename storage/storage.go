package storage

import (
	"context"

	"github.com/pkg/errors"
)

// Durable keys. Values are UTF-8 JSON. Carts and addresses are scoped per
// user; KeyLegacyCart is the pre-migration unscoped cart key.
const (
	KeyDishes     = "dishes"
	KeyOrders     = "orders"
	KeyUsers      = "users"
	KeyLegacyCart = "cart"
)

// Session keys, cleared when the session ends.
const (
	SessionUserID            = "userId"
	SessionUserName          = "userName"
	SessionUserEmail         = "userEmail"
	SessionUserRole          = "userRole"
	SessionOrderSummary      = "orderSummary"
	SessionLastOrderID       = "lastOrderId"
	SessionLastOrderTotal    = "lastOrderTotal"
	SessionEstimatedDelivery = "estimatedDelivery"
)

// ErrNotFound is returned by typed getters when a key is absent.
var ErrNotFound = errors.New("key not found")

// CartKey returns the durable cart key for a user.
func CartKey(userID string) string { return "cart_" + userID }

// AddressKey returns the durable address key for a user.
func AddressKey(userID string) string { return "address_" + userID }

// Store is the durable per-origin key-value store: string keys, JSON values.
// It is the system of record; the remote directory is only a mirror.
type Store interface {
	// GetJSON unmarshals the value at key into dest. The bool reports
	// whether the key existed.
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	// SetJSON marshals value and writes it at key, replacing any previous
	// value.
	SetJSON(ctx context.Context, key string, value interface{}) error
	// Delete removes the key entirely. Deleting an absent key is a no-op.
	Delete(ctx context.Context, key string) error
	// Has reports whether the key exists.
	Has(ctx context.Context, key string) (bool, error)
}
