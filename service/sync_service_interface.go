package service

import (
	"context"

	"food-express-backend/models"
)

// SyncServiceInterface defines the contract for menu synchronization.
type SyncServiceInterface interface {
	// SyncMenu imports menu images from the Drive folder into the dish
	// catalog. New dishes are created with the given status; dishes whose
	// name is already known are skipped.
	SyncMenu(ctx context.Context, folderID, status string) ([]models.Dish, models.SyncStats, error)
}
