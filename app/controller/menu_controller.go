package controller

import (
	"net/http"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"

	"food-express-backend/models"
	"food-express-backend/service"
)

// MenuController handles HTTP requests for the public menu.
type MenuController struct {
	menu  *service.MenuService
	drive service.DriveServiceInterface
}

// NewMenuController creates a new MenuController. drive may be nil when no
// Drive credentials are configured; the image endpoint then returns 404.
func NewMenuController(menu *service.MenuService, drive service.DriveServiceInterface) *MenuController {
	return &MenuController{menu: menu, drive: drive}
}

// ListMenu handles GET /menu?category=&minPrice=&maxPrice=&sortBy=
func (c *MenuController) ListMenu(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 ListMenu: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := models.MenuFilter{
		Category: r.URL.Query().Get("category"),
		SortBy:   r.URL.Query().Get("sortBy"),
	}
	if raw := r.URL.Query().Get("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = v
		}
	}
	if raw := r.URL.Query().Get("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = v
		}
	}

	menu, err := c.menu.ListMenu(r.Context(), filter)
	if err != nil {
		log.Printf("❌ ListMenu: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

// GetDish handles GET /menu/{id} and GET /menu/{id}/image?size=thumb|medium
func (c *MenuController) GetDish(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 GetDish: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	path := strings.Trim(strings.TrimPrefix(r.URL.Path, "/menu/"), "/")

	if strings.HasSuffix(path, "/image") {
		c.serveImage(w, r, strings.TrimSuffix(path, "/image"))
		return
	}

	dish, err := c.menu.GetDish(r.Context(), path)
	if err != nil {
		log.Printf("❌ GetDish: %v", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dish)
}

// serveImage serves an optimized dish image, downloading from Drive and
// caching the optimized JPEG on first request.
func (c *MenuController) serveImage(w http.ResponseWriter, r *http.Request, dishID string) {
	if c.drive == nil {
		http.Error(w, "Image service not configured", http.StatusNotFound)
		return
	}

	dish, err := c.menu.GetDish(r.Context(), dishID)
	if err != nil {
		writeError(w, err)
		return
	}

	size := r.URL.Query().Get("size")
	if size == "" {
		size = "medium"
	}

	cachePath := service.GetCachePath(dish.ID, size)
	if service.CacheExists(cachePath) {
		data, err := service.ReadFromCache(cachePath)
		if err == nil {
			w.Header().Set("Content-Type", "image/jpeg")
			w.Write(data)
			return
		}
		log.Printf("⚠️  Cache read failed for %s: %v", cachePath, err)
	}

	raw, err := c.drive.DownloadImage(dish.ID)
	if err != nil {
		log.Printf("❌ GetDish: image download failed: %v", err)
		http.Error(w, "Failed to fetch image", http.StatusBadGateway)
		return
	}

	optimized, err := service.OptimizeImage(raw, size)
	if err != nil {
		log.Printf("❌ GetDish: image optimization failed: %v", err)
		http.Error(w, "Failed to optimize image", http.StatusInternalServerError)
		return
	}
	if err := service.SaveToCache(cachePath, optimized); err != nil {
		log.Printf("⚠️  Cache write failed for %s: %v", cachePath, err)
	}

	w.Header().Set("Content-Type", "image/jpeg")
	w.Write(optimized)
}
