package service

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-express-backend/models"
	"food-express-backend/repository"
	"food-express-backend/storage"
)

// fakeDirectory records mirror writes and subscription lifecycles, and can
// be told to fail writes.
type fakeDirectory struct {
	writes       []string
	fail         bool
	subscribed   int
	unsubscribed int
}

var _ Directory = (*fakeDirectory)(nil)

func (d *fakeDirectory) SetDocument(_ context.Context, collection, id string, _ interface{}) error {
	if d.fail {
		return errors.New("directory down")
	}
	d.writes = append(d.writes, collection+"/"+id)
	return nil
}

func (d *fakeDirectory) GetDocument(context.Context, string, string, interface{}) error {
	return ErrRemoteUnavailable
}

func (d *fakeDirectory) QueryOrdered(context.Context, string, string, bool, interface{}) error {
	return ErrRemoteUnavailable
}

func (d *fakeDirectory) Subscribe(context.Context, string, string, bool,
	func([]models.Order), func(error)) (Unsubscribe, error) {
	d.subscribed++
	return func() { d.unsubscribed++ }, nil
}

type checkoutFixture struct {
	store     *storage.MemoryStore
	cart      *CartService
	address   *AddressService
	orders    repository.OrderRepositoryInterface
	directory *fakeDirectory
	svc       *CheckoutService
	sess      *storage.Session
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()
	store := storage.NewMemoryStore()
	f := &checkoutFixture{
		store:     store,
		cart:      NewCartService(store),
		address:   NewAddressService(store),
		orders:    repository.NewOrderRepository(store),
		directory: &fakeDirectory{},
		sess:      newTestSession(t, "Priya", "priya@example.com"),
	}
	f.svc = NewCheckoutService(f.cart, f.address, f.orders, f.directory, 0)
	return f
}

func (f *checkoutFixture) fillCartAndAddress(t *testing.T) {
	t.Helper()
	ctx := context.Background()
	_, err := f.cart.AddItem(ctx, f.sess, models.AddItemRequest{ItemID: "dish_1", Name: "Paneer Tikka", Price: 300})
	require.NoError(t, err)
	require.NoError(t, f.address.Save(ctx, f.sess, validAddress()))
}

func TestCheckoutPreconditions(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	// Login comes first.
	guest := storage.NewSessionStore().Create()
	_, err := f.svc.ProceedToCheckout(ctx, guest)
	assert.ErrorIs(t, err, ErrUnauthenticated)

	// Then a non-empty cart.
	_, err = f.svc.ProceedToCheckout(ctx, f.sess)
	assert.ErrorIs(t, err, ErrEmptyCart)

	// Then a saved address.
	_, err = f.cart.AddItem(ctx, f.sess, models.AddItemRequest{ItemID: "dish_1", Name: "Paneer Tikka", Price: 300})
	require.NoError(t, err)
	_, err = f.svc.ProceedToCheckout(ctx, f.sess)
	assert.ErrorIs(t, err, ErrMissingAddress)
}

func TestCheckoutComputesTotalsAndStoresSummary(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	f.fillCartAndAddress(t)

	summary, err := f.svc.ProceedToCheckout(ctx, f.sess)
	require.NoError(t, err)

	// 300 clears free delivery; gst = round((300+5)*0.05) = 15.
	assert.Equal(t, 300.0, summary.Subtotal)
	assert.Equal(t, 0.0, summary.DeliveryFee)
	assert.Equal(t, 5.0, summary.PlatformFee)
	assert.Equal(t, 15.0, summary.GST)
	assert.Equal(t, 320.0, summary.Total)
	assert.Equal(t, "Bengaluru", summary.Address.City)

	assert.True(t, f.sess.Has(storage.SessionOrderSummary))
}

func TestPlaceOrderWithoutSummary(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)

	// No checkout ran, so there is nothing to buy.
	_, err := f.svc.PlaceOrder(ctx, f.sess, models.PlaceOrderRequest{
		PaymentMethod: models.PaymentMethodCOD,
	})
	assert.ErrorIs(t, err, ErrEmptyCart)

	orders, err := f.orders.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrderEmptyCartNeverCreatesOrder(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	f.fillCartAndAddress(t)

	_, err := f.svc.ProceedToCheckout(ctx, f.sess)
	require.NoError(t, err)

	// Emptying the cart after checkout must invalidate the stale summary.
	require.NoError(t, f.cart.Clear(ctx, f.sess))

	_, err = f.svc.PlaceOrder(ctx, f.sess, models.PlaceOrderRequest{
		PaymentMethod: models.PaymentMethodCOD,
	})
	assert.ErrorIs(t, err, ErrEmptyCart)

	orders, err := f.orders.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestPlaceOrderSuccess(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	f.fillCartAndAddress(t)

	_, err := f.svc.ProceedToCheckout(ctx, f.sess)
	require.NoError(t, err)

	resp, err := f.svc.PlaceOrder(ctx, f.sess, models.PlaceOrderRequest{
		PaymentMethod: models.PaymentMethodUPI,
		Payment:       models.PaymentDetails{UPIID: "priya@paytm"},
	})
	require.NoError(t, err)
	assert.True(t, len(resp.OrderID) > 2 && resp.OrderID[:2] == "FE")
	assert.Equal(t, 320.0, resp.Total)
	assert.WithinDuration(t, time.Now().Add(45*time.Minute), resp.EstimatedDelivery, 5*time.Second)

	// Order persisted locally and mirrored remotely.
	order, err := f.orders.GetByID(ctx, resp.OrderID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusConfirmed, order.Status)
	assert.Equal(t, "priya@example.com", order.UserEmail)
	assert.Equal(t, []string{"orders/" + resp.OrderID}, f.directory.writes)

	// Cart and summary consumed, confirmation keys set.
	cart, err := f.cart.Load(ctx, f.sess)
	require.NoError(t, err)
	assert.Empty(t, cart)
	assert.False(t, f.sess.Has(storage.SessionOrderSummary))
	assert.Equal(t, resp.OrderID, f.sess.Get(storage.SessionLastOrderID))
	assert.Equal(t, "320", f.sess.Get(storage.SessionLastOrderTotal))
}

func TestPlaceOrderSurvivesMirrorFailure(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	f.fillCartAndAddress(t)
	f.directory.fail = true

	_, err := f.svc.ProceedToCheckout(ctx, f.sess)
	require.NoError(t, err)

	resp, err := f.svc.PlaceOrder(ctx, f.sess, models.PlaceOrderRequest{
		PaymentMethod: models.PaymentMethodCOD,
	})
	require.NoError(t, err)

	_, err = f.orders.GetByID(ctx, resp.OrderID)
	assert.NoError(t, err)
}

func TestPlaceOrderRejectsBadPayment(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	f.fillCartAndAddress(t)

	_, err := f.svc.ProceedToCheckout(ctx, f.sess)
	require.NoError(t, err)

	cases := []struct {
		name  string
		req   models.PlaceOrderRequest
		field string
	}{
		{"upi without @", models.PlaceOrderRequest{PaymentMethod: models.PaymentMethodUPI, Payment: models.PaymentDetails{UPIID: "priya.paytm"}}, "upiId"},
		{"upi empty", models.PlaceOrderRequest{PaymentMethod: models.PaymentMethodUPI}, "upiId"},
		{"card short number", models.PlaceOrderRequest{PaymentMethod: models.PaymentMethodCard, Payment: models.PaymentDetails{CardNumber: "4111 1111", CardName: "PRIYA", ExpiryDate: "12/27", CVV: "123"}}, "cardNumber"},
		{"card short cvv", models.PlaceOrderRequest{PaymentMethod: models.PaymentMethodCard, Payment: models.PaymentDetails{CardNumber: "4111 1111 1111 1111", CardName: "PRIYA", ExpiryDate: "12/27", CVV: "12"}}, "cvv"},
		{"netbanking without bank", models.PlaceOrderRequest{PaymentMethod: models.PaymentMethodNetBanking}, "bank"},
		{"unknown method", models.PlaceOrderRequest{PaymentMethod: "crypto"}, "paymentMethod"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.svc.PlaceOrder(ctx, f.sess, tc.req)
			var perr *PaymentValidationError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tc.field, perr.Field)

			// Failed validation must not consume the summary.
			assert.True(t, f.sess.Has(storage.SessionOrderSummary))
		})
	}
}

func TestPlaceOrderAcceptsSpacedCardNumber(t *testing.T) {
	ctx := context.Background()
	f := newCheckoutFixture(t)
	f.fillCartAndAddress(t)

	_, err := f.svc.ProceedToCheckout(ctx, f.sess)
	require.NoError(t, err)

	_, err = f.svc.PlaceOrder(ctx, f.sess, models.PlaceOrderRequest{
		PaymentMethod: models.PaymentMethodCard,
		Payment: models.PaymentDetails{
			CardNumber: "4111 1111 1111 1111",
			CardName:   "PRIYA SHARMA",
			ExpiryDate: "12/27",
			CVV:        "123",
		},
	})
	assert.NoError(t, err)
}
