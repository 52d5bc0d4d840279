package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"food-express-backend/models"
	"food-express-backend/service"
)

// AuthController handles HTTP requests for registration, login and logout.
type AuthController struct {
	auth     *service.AuthService
	resolver *SessionResolver
}

// NewAuthController creates a new AuthController.
func NewAuthController(auth *service.AuthService, resolver *SessionResolver) *AuthController {
	return &AuthController{auth: auth, resolver: resolver}
}

// Register handles POST /auth/register
// Example request: {"name": "Priya Sharma", "email": "priya@example.com", "password": "Secret12"}
func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Register: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	user, err := c.auth.Register(r.Context(), req)
	if err != nil {
		log.Printf("❌ Register: %v", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login handles POST /auth/login
// On success the response carries the bearer token and the session id in
// the X-Session-Id header; subsequent requests must send that header back.
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Login: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return
	}

	resp, sess, err := c.auth.Login(r.Context(), req)
	if err != nil {
		log.Printf("❌ Login: %v", err)
		writeError(w, err)
		return
	}

	w.Header().Set(SessionHeader, sess.ID)
	writeJSON(w, http.StatusOK, resp)
}

// Logout handles POST /auth/logout
// Drops the session and all its checkout scratch state.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Logout: Received %s request to %s", r.Method, r.URL.Path)

	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	c.auth.Logout(c.resolver.FromRequest(r))
	writeJSON(w, http.StatusOK, map[string]string{"status": "logged out"})
}
