package controller

import (
	"encoding/json"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"food-express-backend/models"
	"food-express-backend/service"
)

// AddressController handles HTTP requests for the delivery address.
type AddressController struct {
	address  *service.AddressService
	resolver *SessionResolver
}

// NewAddressController creates a new AddressController.
func NewAddressController(address *service.AddressService, resolver *SessionResolver) *AddressController {
	return &AddressController{address: address, resolver: resolver}
}

// Handle routes GET, POST/PUT and DELETE /address.
func (c *AddressController) Handle(w http.ResponseWriter, r *http.Request) {
	log.Printf("📥 Address: Received %s request to %s", r.Method, r.URL.Path)

	sess := c.resolver.FromRequest(r)
	ctx := r.Context()

	switch r.Method {
	case http.MethodGet:
		addr, err := c.address.Get(ctx, sess)
		if err != nil {
			writeError(w, err)
			return
		}
		if addr == nil {
			writeJSON(w, http.StatusOK, map[string]interface{}{"address": nil})
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"address": addr})

	case http.MethodPost, http.MethodPut:
		var addr models.Address
		if err := json.NewDecoder(r.Body).Decode(&addr); err != nil {
			http.Error(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
			return
		}
		if err := c.address.Save(ctx, sess, addr); err != nil {
			log.Printf("❌ Address: %v", err)
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})

	case http.MethodDelete:
		if err := c.address.Delete(ctx, sess); err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})

	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}
