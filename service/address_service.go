package service

import (
	"context"
	"strings"

	"food-express-backend/models"
	"food-express-backend/storage"
)

// AddressService owns the single saved delivery address per user, stored
// under "address_{userId}". A new save overwrites the previous address.
type AddressService struct {
	store storage.Store
}

// NewAddressService creates a new AddressService over the durable store.
func NewAddressService(store storage.Store) *AddressService {
	return &AddressService{store: store}
}

// Save validates and stores the address. Missing required fields abort the
// save with a ValidationError naming them; nothing is written in that case.
func (s *AddressService) Save(ctx context.Context, sess *storage.Session, addr models.Address) error {
	var missing []string
	required := []struct {
		name  string
		value string
	}{
		{"fullName", addr.FullName},
		{"phone", addr.Phone},
		{"address", addr.Street},
		{"pincode", addr.Pincode},
		{"city", addr.City},
		{"state", addr.State},
	}
	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(missing) > 0 {
		return &ValidationError{Missing: missing}
	}

	if addr.Type == "" {
		addr.Type = models.AddressTypeHome
	}

	return s.store.SetJSON(ctx, storage.AddressKey(sess.EffectiveUserID()), addr)
}

// Get returns the saved address, or nil when none is stored.
func (s *AddressService) Get(ctx context.Context, sess *storage.Session) (*models.Address, error) {
	var addr models.Address
	found, err := s.store.GetJSON(ctx, storage.AddressKey(sess.EffectiveUserID()), &addr)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	return &addr, nil
}

// Delete removes the saved address.
func (s *AddressService) Delete(ctx context.Context, sess *storage.Session) error {
	return s.store.Delete(ctx, storage.AddressKey(sess.EffectiveUserID()))
}
