package service

import "food-express-backend/models"

// DriveServiceInterface defines the contract for Google Drive operations.
type DriveServiceInterface interface {
	ListMenuImages(folderID string) ([]models.Dish, error)
	DownloadImage(fileID string) ([]byte, error)
}
