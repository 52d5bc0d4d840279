package controller

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"food-express-backend/repository"
	"food-express-backend/service"
)

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("❌ Error encoding response: %v", err)
	}
}

// writeError maps domain errors onto HTTP statuses and writes the message.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError

	var verr *service.ValidationError
	var perr *service.PaymentValidationError

	switch {
	case errors.Is(err, service.ErrUnauthenticated),
		errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidToken):
		status = http.StatusUnauthorized
	case errors.Is(err, repository.ErrOrderNotFound),
		errors.Is(err, repository.ErrDishNotFound),
		errors.Is(err, repository.ErrUserNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrEmailTaken):
		status = http.StatusConflict
	case errors.As(err, &verr),
		errors.As(err, &perr),
		errors.Is(err, service.ErrEmptyCart),
		errors.Is(err, service.ErrMissingAddress),
		errors.Is(err, service.ErrWeakPassword):
		status = http.StatusBadRequest
	}

	writeJSON(w, status, map[string]string{"error": err.Error()})
}
