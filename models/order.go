package models

import "time"

// Payment methods accepted at checkout.
const (
	PaymentMethodCOD        = "cod"
	PaymentMethodUPI        = "upi"
	PaymentMethodCard       = "card"
	PaymentMethodNetBanking = "netbanking"
)

// Order statuses. An order is created as Confirmed and only ever advances.
const (
	StatusPending        = "Pending"
	StatusConfirmed      = "Confirmed"
	StatusPreparing      = "Preparing"
	StatusOutForDelivery = "Out for Delivery"
	StatusDelivered      = "Delivered"
)

// Totals is the computed price breakdown of a cart. All fields except the
// line unit prices are whole currency units; GST is rounded half away from
// zero at the unit level.
type Totals struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	PlatformFee float64 `json:"platformFee"`
	GST         float64 `json:"gst"`
	Total       float64 `json:"total"`
}

// OrderSummary is the ephemeral snapshot of cart + address + totals produced
// by checkout and consumed exactly once by PlaceOrder. It lives only in the
// session store, never in durable storage.
type OrderSummary struct {
	Items       Cart    `json:"items"`
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	PlatformFee float64 `json:"platformFee"`
	GST         float64 `json:"gst"`
	Total       float64 `json:"total"`
	Address     Address `json:"address"`
}

// Order is the durable order record, appended to the "orders" collection and
// optionally mirrored to the remote directory. Immutable once created except
// for Status.
type Order struct {
	OrderID           string    `json:"orderId"`
	UserID            string    `json:"userId"`
	UserName          string    `json:"userName"`
	UserEmail         string    `json:"userEmail"`
	Items             Cart      `json:"items"`
	Address           Address   `json:"address"`
	PaymentMethod     string    `json:"paymentMethod"`
	Subtotal          float64   `json:"subtotal"`
	DeliveryFee       float64   `json:"deliveryFee"`
	PlatformFee       float64   `json:"platformFee"`
	GST               float64   `json:"gst"`
	Total             float64   `json:"total"`
	Status            string    `json:"status"`
	OrderDate         time.Time `json:"orderDate"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

// PaymentDetails carries the method-specific fields submitted with
// PlaceOrder. Only the fields for the chosen method are consulted.
// Example (upi): {"upiId": "priya@paytm"}
// Example (card): {"cardNumber": "4111 1111 1111 1111", "cardName": "PRIYA SHARMA", "expiryDate": "12/27", "cvv": "123"}
type PaymentDetails struct {
	UPIID      string `json:"upiId,omitempty"`
	CardNumber string `json:"cardNumber,omitempty"`
	CardName   string `json:"cardName,omitempty"`
	ExpiryDate string `json:"expiryDate,omitempty"`
	CVV        string `json:"cvv,omitempty"`
	Bank       string `json:"bank,omitempty"`
}

// PlaceOrderRequest represents the request body for placing an order.
// Example: {"paymentMethod": "upi", "payment": {"upiId": "priya@paytm"}}
type PlaceOrderRequest struct {
	PaymentMethod string         `json:"paymentMethod"`
	Payment       PaymentDetails `json:"payment"`
}

// PlaceOrderResponse is returned once the order has been persisted locally.
type PlaceOrderResponse struct {
	OrderID           string    `json:"orderId"`
	Total             float64   `json:"total"`
	EstimatedDelivery time.Time `json:"estimatedDelivery"`
}

// PaymentMethodLabel returns the human-readable label for a payment method
// code; unknown codes are returned as-is.
func PaymentMethodLabel(method string) string {
	switch method {
	case PaymentMethodCOD:
		return "Cash on Delivery"
	case PaymentMethodUPI:
		return "UPI Payment"
	case PaymentMethodCard:
		return "Card Payment"
	case PaymentMethodNetBanking:
		return "Net Banking"
	}
	return method
}
