package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"food-express-backend/models"
	"food-express-backend/pricing"
	"food-express-backend/service"
)

// CartController handles HTTP requests for the cart.
type CartController struct {
	cart     *service.CartService
	resolver *SessionResolver
}

// NewCartController creates a new CartController.
func NewCartController(cart *service.CartService, resolver *SessionResolver) *CartController {
	return &CartController{cart: cart, resolver: resolver}
}

// cartResponse pairs the cart with its recomputed totals and item count.
func cartResponse(cart models.Cart) models.CartResponse {
	totals := pricing.Compute(cart)
	return models.CartResponse{
		Items:  cart,
		Totals: &totals,
		Count:  cart.TotalQuantity(),
	}
}

// GetCart handles GET /cart
func (c *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetCart: Received %s request to %s", r.Method, r.URL.Path)

	cart, err := c.cart.Load(r.Context(), c.resolver.FromRequest(r))
	if err != nil {
		log.Printf("❌ GetCart: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse(cart))
}

// AddItem handles POST /cart/items
// Example request: {"id": "dish_42", "name": "Paneer Tikka", "price": 249}
func (c *CartController) AddItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 AddItem: Received %s request to %s", r.Method, r.URL.Path)

	var req models.AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		http.Error(w, "name cannot be empty", http.StatusBadRequest)
		return
	}

	cart, err := c.cart.AddItem(r.Context(), c.resolver.FromRequest(r), req)
	if err != nil {
		log.Printf("❌ AddItem: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse(cart))
}

// UpdateItem handles POST /cart/items/{index}/increase, POST
// /cart/items/{index}/decrease and DELETE /cart/items/{index}.
func (c *CartController) UpdateItem(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 UpdateItem: Received %s request to %s", r.Method, r.URL.Path)

	path := strings.TrimPrefix(r.URL.Path, "/cart/items/")
	sess := c.resolver.FromRequest(r)
	ctx := r.Context()

	var (
		cart models.Cart
		err  error
	)
	switch {
	case strings.HasSuffix(path, "/increase") && r.Method == http.MethodPost:
		index, perr := parseIndex(strings.TrimSuffix(path, "/increase"))
		if perr != nil {
			http.Error(w, perr.Error(), http.StatusBadRequest)
			return
		}
		cart, err = c.cart.IncreaseQuantity(ctx, sess, index)

	case strings.HasSuffix(path, "/decrease") && r.Method == http.MethodPost:
		index, perr := parseIndex(strings.TrimSuffix(path, "/decrease"))
		if perr != nil {
			http.Error(w, perr.Error(), http.StatusBadRequest)
			return
		}
		cart, err = c.cart.DecreaseQuantity(ctx, sess, index)

	case r.Method == http.MethodDelete:
		index, perr := parseIndex(path)
		if perr != nil {
			http.Error(w, perr.Error(), http.StatusBadRequest)
			return
		}
		cart, err = c.cart.RemoveItem(ctx, sess, index)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err != nil {
		log.Printf("❌ UpdateItem: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse(cart))
}

// ClearCart handles DELETE /cart
func (c *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ClearCart: Received %s request to %s", r.Method, r.URL.Path)

	if err := c.cart.Clear(r.Context(), c.resolver.FromRequest(r)); err != nil {
		log.Printf("❌ ClearCart: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cartResponse(nil))
}

func parseIndex(raw string) (int, error) {
	index, err := strconv.Atoi(strings.Trim(raw, "/"))
	if err != nil {
		return 0, fmt.Errorf("invalid item index: %s", raw)
	}
	return index, nil
}
