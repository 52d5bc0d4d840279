package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-express-backend/models"
	"food-express-backend/repository"
	"food-express-backend/storage"
)

type fakeDriveService struct {
	dishes []models.Dish
}

var _ DriveServiceInterface = (*fakeDriveService)(nil)

func (f *fakeDriveService) ListMenuImages(string) ([]models.Dish, error) {
	return f.dishes, nil
}

func (f *fakeDriveService) DownloadImage(string) ([]byte, error) {
	return nil, nil
}

func TestSyncMenuInsertsNewSkipsKnown(t *testing.T) {
	ctx := context.Background()
	dishes := repository.NewDishRepository(storage.NewMemoryStore())

	require.NoError(t, dishes.Save(ctx, &models.Dish{
		ID: "existing", Name: "Paneer Tikka", Category: "starters", Price: 249,
	}))

	drive := &fakeDriveService{dishes: []models.Dish{
		{ID: "file1", Name: "Paneer Tikka", Category: "starters", Price: 249},
		{ID: "file2", Name: "Masala Dosa", Category: "mains", Price: 120},
	}}

	svc := NewSyncService(drive, dishes)
	_, stats, err := svc.SyncMenu(ctx, "folder", "")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStats{Inserted: 1, Skipped: 1, Total: 2}, stats)

	// The new dish lands as pending until an admin activates it.
	dosa, err := dishes.GetByID(ctx, "file2")
	require.NoError(t, err)
	assert.Equal(t, models.DishStatusPending, dosa.Status)
}

func TestSyncMenuIsIdempotent(t *testing.T) {
	ctx := context.Background()
	dishes := repository.NewDishRepository(storage.NewMemoryStore())
	drive := &fakeDriveService{dishes: []models.Dish{
		{ID: "file1", Name: "Paneer Tikka", Category: "starters", Price: 249},
	}}

	svc := NewSyncService(drive, dishes)
	_, first, err := svc.SyncMenu(ctx, "folder", "")
	require.NoError(t, err)
	assert.Equal(t, 1, first.Inserted)

	_, second, err := svc.SyncMenu(ctx, "folder", "")
	require.NoError(t, err)
	assert.Equal(t, models.SyncStats{Inserted: 0, Skipped: 1, Total: 1}, second)
}
