package service

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"food-express-backend/models"
	"food-express-backend/utils"
)

// DriveService lists and downloads menu images from a shared Google Drive
// folder. Filenames carry the dish metadata (CATEGORY_DISH-NAME_PRICE.EXT).
type DriveService struct {
	client *drive.Service
}

// NewDriveService creates a new DriveService instance.
// credentialsPath should be the path to the Service Account JSON file.
func NewDriveService(credentialsPath string) (*DriveService, error) {
	ctx := context.Background()

	driveService, err := drive.NewService(ctx, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create drive service")
	}

	return &DriveService{client: driveService}, nil
}

var _ DriveServiceInterface = (*DriveService)(nil)

// ListMenuImages lists all image files in a Drive folder and parses each
// filename into a dish. Files that are not images or do not match the
// naming pattern are skipped with a warning.
func (ds *DriveService) ListMenuImages(folderID string) ([]models.Dish, error) {
	query := fmt.Sprintf("'%s' in parents and trashed=false", folderID)

	var allFiles []*drive.File
	pageToken := ""
	for {
		call := ds.client.Files.List().
			Q(query).
			Fields("nextPageToken, files(id, name, mimeType)")

		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		r, err := call.Do()
		if err != nil {
			return nil, errors.Wrap(err, "failed to list files")
		}

		allFiles = append(allFiles, r.Files...)
		pageToken = r.NextPageToken

		if pageToken == "" {
			break
		}
	}

	imageMimeTypes := map[string]bool{
		"image/png":  true,
		"image/jpeg": true,
		"image/jpg":  true,
		"image/webp": true,
	}

	var dishes []models.Dish
	for _, file := range allFiles {
		if !imageMimeTypes[strings.ToLower(file.MimeType)] {
			continue
		}

		dish, err := utils.ParseDishFileName(file.Name)
		if err != nil {
			log.Printf("⚠️  Skipping %s: %v", file.Name, err)
			continue
		}

		dish.ID = file.Id
		dish.Image = fmt.Sprintf("https://drive.google.com/uc?id=%s", file.Id)
		dishes = append(dishes, *dish)
	}

	return dishes, nil
}

// DownloadImage downloads the raw bytes of a Drive file.
func (ds *DriveService) DownloadImage(fileID string) ([]byte, error) {
	resp, err := ds.client.Files.Get(fileID).Download()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download file %s", fileID)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read file %s", fileID)
	}
	return data, nil
}
