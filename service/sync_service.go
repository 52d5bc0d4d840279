package service

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"food-express-backend/models"
	"food-express-backend/repository"
)

// SyncService imports menu images from Google Drive into the dish catalog.
type SyncService struct {
	driveService DriveServiceInterface
	dishes       repository.DishRepositoryInterface
}

func NewSyncService(driveService DriveServiceInterface, dishes repository.DishRepositoryInterface) *SyncService {
	return &SyncService{driveService: driveService, dishes: dishes}
}

var _ SyncServiceInterface = (*SyncService)(nil)

// SyncMenu lists the Drive folder and inserts every new dish, skipping ones
// whose name already exists in the catalog. New dishes get the given status
// (default "pending") so an admin can complete and activate them.
func (s *SyncService) SyncMenu(ctx context.Context, folderID, status string) ([]models.Dish, models.SyncStats, error) {
	log.Printf("🔄 Starting menu sync for folder: %s, status: %s", folderID, status)

	if status == "" {
		status = models.DishStatusPending
	}

	driveDishes, err := s.driveService.ListMenuImages(folderID)
	if err != nil {
		return nil, models.SyncStats{}, errors.Wrap(err, "failed to list menu images from Drive")
	}

	stats := models.SyncStats{Total: len(driveDishes)}
	log.Printf("📦 Processing %d menu images from Google Drive", len(driveDishes))

	for _, dish := range driveDishes {
		exists, err := s.dishes.ExistsByName(ctx, dish.Name)
		if err != nil {
			log.Printf("❌ Error checking existence for dish %q: %v", dish.Name, err)
			continue
		}
		if exists {
			log.Printf("⏭️  Skipping %q (already in catalog)", dish.Name)
			stats.Skipped++
			continue
		}

		dish.Status = status
		if err := s.dishes.Save(ctx, &dish); err != nil {
			log.Printf("❌ Error inserting dish %q: %v", dish.Name, err)
			continue
		}
		log.Printf("✅ Imported dish %q (%s, %.0f)", dish.Name, dish.Category, dish.Price)
		stats.Inserted++
	}

	log.Printf("🎉 Menu sync completed: %d inserted, %d skipped, %d total", stats.Inserted, stats.Skipped, stats.Total)
	return driveDishes, stats, nil
}
