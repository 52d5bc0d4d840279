package controller

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"food-express-backend/service"
)

// OrderController handles HTTP requests for order lookup and tracking.
type OrderController struct {
	tracking *service.TrackingService
}

// NewOrderController creates a new OrderController.
func NewOrderController(tracking *service.TrackingService) *OrderController {
	return &OrderController{tracking: tracking}
}

// Handle routes GET /orders/{orderId} and GET /orders/{orderId}/track.
func (c *OrderController) Handle(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Order: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/orders/"), "/")

	if strings.HasSuffix(path, "/track") {
		orderID := strings.TrimSuffix(path, "/track")
		info, err := c.tracking.Track(r.Context(), orderID)
		if err != nil {
			log.Printf("❌ Order: %v", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, info)
		return
	}

	order, err := c.tracking.GetOrder(r.Context(), path)
	if err != nil {
		log.Printf("❌ Order: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
