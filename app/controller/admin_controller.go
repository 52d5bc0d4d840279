package controller

import (
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"

	"food-express-backend/service"
)

// AdminController handles HTTP requests for the admin dashboard.
type AdminController struct {
	admin *service.AdminService
}

// NewAdminController creates a new AdminController.
func NewAdminController(admin *service.AdminService) *AdminController {
	return &AdminController{admin: admin}
}

// ListOrders handles GET /admin/orders
func (c *AdminController) ListOrders(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListOrders: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orders, err := c.admin.ListOrders(r.Context())
	if err != nil {
		log.Printf("❌ ListOrders: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// RecentOrders handles GET /admin/orders/recent
func (c *AdminController) RecentOrders(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 RecentOrders: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	orders, err := c.admin.RecentOrders(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}

// Users handles GET /admin/users and DELETE /admin/users/{identifier}.
// The identifier matches a customer's id, email or name.
func (c *AdminController) Users(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Users: Received %s request to %s", r.Method, r.URL.Path)

	switch r.Method {
	case http.MethodGet:
		aggregates, err := c.admin.AggregateUsers(r.Context())
		if err != nil {
			log.Printf("❌ Users: %v", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, aggregates)

	case http.MethodDelete:
		identifier := strings.Trim(strings.TrimPrefix(r.URL.Path, "/admin/users/"), "/")
		if decoded, err := url.PathUnescape(identifier); err == nil {
			identifier = decoded
		}
		if identifier == "" {
			http.Error(w, "identifier cannot be empty", http.StatusBadRequest)
			return
		}

		removed, err := c.admin.DeleteUser(r.Context(), identifier)
		if err != nil {
			log.Printf("❌ Users: %v", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"removedOrders": removed})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// Stats handles GET /admin/stats
func (c *AdminController) Stats(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Stats: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	stats, err := c.admin.Stats(r.Context())
	if err != nil {
		log.Printf("❌ Stats: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
