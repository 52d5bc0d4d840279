package service

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"food-express-backend/models"
	"food-express-backend/storage"
)

// Defaults applied when an added item is missing optional fields.
const (
	defaultItemImage  = "https://via.placeholder.com/100x100?text=Food"
	defaultRestaurant = "Food Express"
)

// CartService owns the per-user cart: a list of line items persisted
// write-through under "cart_{userId}" after every mutation. Quantity is
// always at least 1; a line whose last unit is removed is deleted, never
// stored at zero.
type CartService struct {
	store storage.Store
}

// NewCartService creates a new CartService over the durable store.
func NewCartService(store storage.Store) *CartService {
	return &CartService{store: store}
}

// Load returns the session user's cart, running the legacy-cart migration
// first so pre-login carts are not lost.
func (s *CartService) Load(ctx context.Context, sess *storage.Session) (models.Cart, error) {
	if err := s.MigrateLegacyCart(ctx, sess); err != nil {
		return nil, err
	}
	var cart models.Cart
	if _, err := s.store.GetJSON(ctx, storage.CartKey(sess.EffectiveUserID()), &cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) save(ctx context.Context, sess *storage.Session, cart models.Cart) error {
	return s.store.SetJSON(ctx, storage.CartKey(sess.EffectiveUserID()), cart)
}

// MigrateLegacyCart copies the old unscoped "cart" key to the user-scoped
// key, then removes the old key. Runs at most once per legacy cart: once the
// legacy key is gone, or a user-scoped cart exists, it is a no-op.
func (s *CartService) MigrateLegacyCart(ctx context.Context, sess *storage.Session) error {
	var legacy models.Cart
	found, err := s.store.GetJSON(ctx, storage.KeyLegacyCart, &legacy)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}

	userKey := storage.CartKey(sess.EffectiveUserID())
	hasUserCart, err := s.store.Has(ctx, userKey)
	if err != nil {
		return err
	}
	if !hasUserCart {
		if err := s.store.SetJSON(ctx, userKey, legacy); err != nil {
			return err
		}
		log.Printf("✓ Migrated legacy cart to %s", userKey)
	}
	return s.store.Delete(ctx, storage.KeyLegacyCart)
}

// AddItem adds a dish to the cart, merging with an existing line that has
// the same id (or, absent an id, the same name) by incrementing its
// quantity. Requires an authenticated session.
func (s *CartService) AddItem(ctx context.Context, sess *storage.Session, req models.AddItemRequest) (models.Cart, error) {
	if !sess.Authenticated() {
		return nil, ErrUnauthenticated
	}

	cart, err := s.Load(ctx, sess)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart {
		if (req.ItemID != "" && cart[i].ItemID == req.ItemID) || cart[i].Name == req.Name {
			cart[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		item := models.LineItem{
			ItemID:     req.ItemID,
			Name:       req.Name,
			Price:      req.Price,
			Image:      req.Image,
			Restaurant: req.Restaurant,
			Quantity:   1,
		}
		if item.ItemID == "" {
			item.ItemID = uuid.NewString()
		}
		if item.Image == "" {
			item.Image = defaultItemImage
		}
		if item.Restaurant == "" {
			item.Restaurant = defaultRestaurant
		}
		cart = append(cart, item)
	}

	if err := s.save(ctx, sess, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// IncreaseQuantity adds one unit at the given position. Out-of-range
// positions are a no-op.
func (s *CartService) IncreaseQuantity(ctx context.Context, sess *storage.Session, index int) (models.Cart, error) {
	cart, err := s.Load(ctx, sess)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(cart) {
		return cart, nil
	}
	cart[index].Quantity++
	if err := s.save(ctx, sess, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// DecreaseQuantity removes one unit at the given position; removing the
// last unit deletes the line. Out-of-range positions are a no-op.
func (s *CartService) DecreaseQuantity(ctx context.Context, sess *storage.Session, index int) (models.Cart, error) {
	cart, err := s.Load(ctx, sess)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(cart) {
		return cart, nil
	}
	if cart[index].Quantity > 1 {
		cart[index].Quantity--
		if err := s.save(ctx, sess, cart); err != nil {
			return nil, err
		}
		return cart, nil
	}
	return s.RemoveItem(ctx, sess, index)
}

// RemoveItem deletes the line at the given position. Out-of-range positions
// are a no-op.
func (s *CartService) RemoveItem(ctx context.Context, sess *storage.Session, index int) (models.Cart, error) {
	cart, err := s.Load(ctx, sess)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(cart) {
		return cart, nil
	}
	cart = append(cart[:index], cart[index+1:]...)
	if err := s.save(ctx, sess, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear removes the cart key entirely, not just its contents.
func (s *CartService) Clear(ctx context.Context, sess *storage.Session) error {
	return s.store.Delete(ctx, storage.CartKey(sess.EffectiveUserID()))
}
