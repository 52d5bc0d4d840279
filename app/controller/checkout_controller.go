package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"food-express-backend/models"
	"food-express-backend/service"
)

// CheckoutController handles HTTP requests for checkout and order placement.
type CheckoutController struct {
	checkout *service.CheckoutService
	resolver *SessionResolver
}

// NewCheckoutController creates a new CheckoutController.
func NewCheckoutController(checkout *service.CheckoutService, resolver *SessionResolver) *CheckoutController {
	return &CheckoutController{checkout: checkout, resolver: resolver}
}

// ProceedToCheckout handles POST /checkout
// Snapshots cart + address + totals into the session and returns the
// summary the order confirmation page shows.
func (c *CheckoutController) ProceedToCheckout(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ProceedToCheckout: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	summary, err := c.checkout.ProceedToCheckout(r.Context(), c.resolver.FromRequest(r))
	if err != nil {
		log.Printf("❌ ProceedToCheckout: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, summary)
}

// PlaceOrder handles POST /orders
// Example request: {"paymentMethod": "upi", "payment": {"upiId": "priya@paytm"}}
func (c *CheckoutController) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 PlaceOrder: Received %s request to %s", r.Method, r.URL.Path)

	var req models.PlaceOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	resp, err := c.checkout.PlaceOrder(r.Context(), c.resolver.FromRequest(r), req)
	if err != nil {
		log.Printf("❌ PlaceOrder: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}
