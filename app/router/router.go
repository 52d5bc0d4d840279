package router

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"food-express-backend/app/controller"
	"food-express-backend/models"
	"food-express-backend/service"
)

type Controllers struct {
	Auth     *controller.AuthController
	Menu     *controller.MenuController
	Cart     *controller.CartController
	Address  *controller.AddressController
	Checkout *controller.CheckoutController
	Order    *controller.OrderController
	Admin    *controller.AdminController
	Dish     *controller.DishController

	// AuthService verifies bearer tokens for the admin routes.
	AuthService *service.AuthService
}

// pingHandler handles GET /ping
func pingHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

// adminOnly wraps a handler with bearer-token verification and an admin
// role check.
func adminOnly(auth *service.AuthService, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token := strings.TrimPrefix(header, "Bearer ")
		if token == "" || token == header {
			http.Error(w, "Authorization header required", http.StatusUnauthorized)
			return
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			log.Printf("❌ Admin auth failed: %v", err)
			http.Error(w, "Invalid or expired token", http.StatusUnauthorized)
			return
		}
		if claims.Role != models.RoleAdmin {
			http.Error(w, "Admin access required", http.StatusForbidden)
			return
		}

		next(w, r)
	}
}

func SetupRoutes(controllers *Controllers) {
	// Ping endpoint
	http.HandleFunc("/ping", pingHandler)

	// Auth routes
	http.HandleFunc("/auth/register", controllers.Auth.Register)
	http.HandleFunc("/auth/login", controllers.Auth.Login)
	http.HandleFunc("/auth/logout", controllers.Auth.Logout)

	// Public menu
	http.HandleFunc("/menu", controllers.Menu.ListMenu)
	http.HandleFunc("/menu/", controllers.Menu.GetDish)

	// Cart routes
	http.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			controllers.Cart.GetCart(w, r)
		case http.MethodDelete:
			controllers.Cart.ClearCart(w, r)
		default:
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		}
	})
	http.HandleFunc("/cart/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Cart.AddItem(w, r)
	})
	http.HandleFunc("/cart/items/", controllers.Cart.UpdateItem)

	// Delivery address
	http.HandleFunc("/address", controllers.Address.Handle)

	// Checkout and orders
	http.HandleFunc("/checkout", controllers.Checkout.ProceedToCheckout)
	http.HandleFunc("/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		controllers.Checkout.PlaceOrder(w, r)
	})
	http.HandleFunc("/orders/", controllers.Order.Handle)

	// Admin dashboard routes
	auth := controllers.AuthService
	http.HandleFunc("/admin/orders", adminOnly(auth, controllers.Admin.ListOrders))
	http.HandleFunc("/admin/orders/recent", adminOnly(auth, controllers.Admin.RecentOrders))
	http.HandleFunc("/admin/users", adminOnly(auth, controllers.Admin.Users))
	http.HandleFunc("/admin/users/", adminOnly(auth, controllers.Admin.Users))
	http.HandleFunc("/admin/stats", adminOnly(auth, controllers.Admin.Stats))

	// Admin dish management
	http.HandleFunc("/admin/dishes", adminOnly(auth, controllers.Dish.Dishes))
	http.HandleFunc("/admin/dishes/sync", adminOnly(auth, controllers.Dish.SyncMenu))
	http.HandleFunc("/admin/dishes/", adminOnly(auth, controllers.Dish.DishByID))
}
