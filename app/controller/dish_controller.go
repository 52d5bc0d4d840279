package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"food-express-backend/models"
	"food-express-backend/service"
)

// DishController handles HTTP requests for admin dish management.
type DishController struct {
	menu *service.MenuService
	sync service.SyncServiceInterface
}

// NewDishController creates a new DishController. sync may be nil when no
// Drive credentials are configured; the sync endpoint then returns 503.
func NewDishController(menu *service.MenuService, sync service.SyncServiceInterface) *DishController {
	return &DishController{menu: menu, sync: sync}
}

// Dishes handles GET /admin/dishes and POST /admin/dishes.
func (c *DishController) Dishes(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Dishes: Received %s request to %s", r.Method, r.URL.Path)

	switch r.Method {
	case http.MethodGet:
		dishes, err := c.menu.ListAllDishes(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dishes)

	case http.MethodPost:
		var dish models.Dish
		if err := json.NewDecoder(r.Body).Decode(&dish); err != nil {
			http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(dish.Name) == "" {
			http.Error(w, "name cannot be empty", http.StatusBadRequest)
			return
		}
		if dish.Price <= 0 {
			http.Error(w, "price must be greater than 0", http.StatusBadRequest)
			return
		}
		if err := c.menu.SaveDish(r.Context(), &dish); err != nil {
			log.Printf("❌ Dishes: %v", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, dish)

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// DishByID handles PUT /admin/dishes/{id}/activate and DELETE
// /admin/dishes/{id}.
func (c *DishController) DishByID(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 DishByID: Received %s request to %s", r.Method, r.URL.Path)

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/admin/dishes/"), "/")

	if strings.HasSuffix(path, "/activate") && r.Method == http.MethodPut {
		dish, err := c.menu.ActivateDish(r.Context(), strings.TrimSuffix(path, "/activate"))
		if err != nil {
			log.Printf("❌ DishByID: %v", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, dish)
		return
	}

	if r.Method == http.MethodDelete {
		if err := c.menu.DeleteDish(r.Context(), path); err != nil {
			log.Printf("❌ DishByID: %v", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
		return
	}

	http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
}

// SyncMenu handles GET /admin/dishes/sync?folderId=YOUR_FOLDER_ID
// Imports menu images from the configured Drive folder.
func (c *DishController) SyncMenu(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 SyncMenu: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if c.sync == nil {
		http.Error(w, "Drive sync not configured", http.StatusServiceUnavailable)
		return
	}

	folderID := r.URL.Query().Get("folderId")
	if folderID == "" {
		http.Error(w, "folderId query parameter is required", http.StatusBadRequest)
		return
	}

	dishes, stats, err := c.sync.SyncMenu(r.Context(), folderID, r.URL.Query().Get("status"))
	if err != nil {
		log.Printf("❌ SyncMenu: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"dishes": dishes,
		"stats":  stats,
	})
}
