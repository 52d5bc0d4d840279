package service

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"food-express-backend/models"
	"food-express-backend/pricing"
	"food-express-backend/repository"
	"food-express-backend/storage"
	"food-express-backend/utils"
)

const estimatedDeliveryWindow = 45 * time.Minute

// CheckoutService owns the two-step purchase flow: ProceedToCheckout builds
// an order summary from the live cart and saved address, PlaceOrder consumes
// that summary exactly once and appends the durable order.
type CheckoutService struct {
	cart      *CartService
	address   *AddressService
	orders    repository.OrderRepositoryInterface
	directory Directory

	// processingDelay simulates payment gateway latency. Zero in tests.
	processingDelay time.Duration
	now             func() time.Time
}

func NewCheckoutService(cart *CartService, address *AddressService,
	orders repository.OrderRepositoryInterface, directory Directory, processingDelay time.Duration) *CheckoutService {
	return &CheckoutService{
		cart:            cart,
		address:         address,
		orders:          orders,
		directory:       directory,
		processingDelay: processingDelay,
		now:             time.Now,
	}
}

// ProceedToCheckout validates the session is ready to buy and snapshots
// cart + address + freshly computed totals into the session. Preconditions
// are checked in order: login, then non-empty cart, then saved address.
//
// Example response:
//
//	{"items": [...], "subtotal": 300, "deliveryFee": 0, "platformFee": 5, "gst": 15, "total": 320, "address": {...}}
func (s *CheckoutService) ProceedToCheckout(ctx context.Context, sess *storage.Session) (*models.OrderSummary, error) {
	if !sess.Authenticated() {
		return nil, ErrUnauthenticated
	}

	cart, err := s.cart.Load(ctx, sess)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	addr, err := s.address.Get(ctx, sess)
	if err != nil {
		return nil, err
	}
	if addr == nil {
		return nil, ErrMissingAddress
	}

	totals := pricing.Compute(cart)
	summary := &models.OrderSummary{
		Items:       cart,
		Subtotal:    totals.Subtotal,
		DeliveryFee: totals.DeliveryFee,
		PlatformFee: totals.PlatformFee,
		GST:         totals.GST,
		Total:       totals.Total,
		Address:     *addr,
	}

	raw, err := json.Marshal(summary)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode order summary")
	}
	sess.Set(storage.SessionOrderSummary, string(raw))

	log.Printf("💰 Checkout summary ready for %s: total %.0f", sess.EffectiveUserID(), totals.Total)
	return summary, nil
}

// PlaceOrder validates the payment details, creates the order from the
// session's summary and appends it to durable storage. The remote directory
// mirror is best effort; a mirror failure never fails the order. On success
// the cart and summary are cleared and the confirmation keys are set on the
// session.
func (s *CheckoutService) PlaceOrder(ctx context.Context, sess *storage.Session, req models.PlaceOrderRequest) (*models.PlaceOrderResponse, error) {
	if !sess.Authenticated() {
		return nil, ErrUnauthenticated
	}

	// A missing summary means checkout never ran (or was already consumed):
	// there is nothing to buy.
	raw := sess.Get(storage.SessionOrderSummary)
	if raw == "" {
		return nil, ErrEmptyCart
	}
	var summary models.OrderSummary
	if err := json.Unmarshal([]byte(raw), &summary); err != nil {
		return nil, errors.Wrap(err, "failed to decode order summary")
	}
	if len(summary.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// The cart may have been emptied after checkout; a stale summary must
	// never turn into an order.
	cart, err := s.cart.Load(ctx, sess)
	if err != nil {
		return nil, err
	}
	if len(cart) == 0 {
		return nil, ErrEmptyCart
	}

	if err := validatePayment(req.PaymentMethod, req.Payment); err != nil {
		return nil, err
	}

	if s.processingDelay > 0 {
		select {
		case <-time.After(s.processingDelay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	now := s.now()
	order := &models.Order{
		OrderID:           utils.GenerateOrderID(),
		UserID:            sess.EffectiveUserID(),
		UserName:          sess.UserName(),
		UserEmail:         sess.UserEmail(),
		Items:             summary.Items,
		Address:           summary.Address,
		PaymentMethod:     req.PaymentMethod,
		Subtotal:          summary.Subtotal,
		DeliveryFee:       summary.DeliveryFee,
		PlatformFee:       summary.PlatformFee,
		GST:               summary.GST,
		Total:             summary.Total,
		Status:            models.StatusConfirmed,
		OrderDate:         now,
		EstimatedDelivery: now.Add(estimatedDeliveryWindow),
	}

	if err := s.orders.Append(ctx, order); err != nil {
		return nil, err
	}

	// Mirror write is best effort: the local collection is authoritative.
	if err := s.directory.SetDocument(ctx, CollectionOrders, order.OrderID, order); err != nil {
		log.Printf("❌ Remote mirror write failed for order %s: %v", order.OrderID, err)
	}

	if err := s.cart.Clear(ctx, sess); err != nil {
		return nil, err
	}
	sess.Delete(storage.SessionOrderSummary)
	sess.Set(storage.SessionLastOrderID, order.OrderID)
	sess.Set(storage.SessionLastOrderTotal, strconv.FormatFloat(order.Total, 'f', -1, 64))
	sess.Set(storage.SessionEstimatedDelivery, order.EstimatedDelivery.Format(time.RFC3339))

	log.Printf("✓ Order %s placed by %s via %s", order.OrderID, order.UserID, models.PaymentMethodLabel(req.PaymentMethod))
	return &models.PlaceOrderResponse{
		OrderID:           order.OrderID,
		Total:             order.Total,
		EstimatedDelivery: order.EstimatedDelivery,
	}, nil
}

// validatePayment checks the method-specific required fields. Only the
// fields for the chosen method are consulted; cash on delivery needs none.
func validatePayment(method string, p models.PaymentDetails) error {
	switch method {
	case models.PaymentMethodCOD:
		return nil

	case models.PaymentMethodUPI:
		if strings.TrimSpace(p.UPIID) == "" {
			return &PaymentValidationError{Field: "upiId", Reason: "required"}
		}
		if !strings.Contains(p.UPIID, "@") {
			return &PaymentValidationError{Field: "upiId", Reason: "must contain @"}
		}
		return nil

	case models.PaymentMethodCard:
		digits := strings.Map(func(r rune) rune {
			if r >= '0' && r <= '9' {
				return r
			}
			return -1
		}, p.CardNumber)
		if len(digits) < 16 {
			return &PaymentValidationError{Field: "cardNumber", Reason: "must have at least 16 digits"}
		}
		if strings.TrimSpace(p.CardName) == "" {
			return &PaymentValidationError{Field: "cardName", Reason: "required"}
		}
		if strings.TrimSpace(p.ExpiryDate) == "" {
			return &PaymentValidationError{Field: "expiryDate", Reason: "required"}
		}
		if len(strings.TrimSpace(p.CVV)) < 3 {
			return &PaymentValidationError{Field: "cvv", Reason: "must have at least 3 digits"}
		}
		return nil

	case models.PaymentMethodNetBanking:
		if strings.TrimSpace(p.Bank) == "" {
			return &PaymentValidationError{Field: "bank", Reason: "required"}
		}
		return nil
	}

	return &PaymentValidationError{Field: "paymentMethod", Reason: "unsupported method"}
}
