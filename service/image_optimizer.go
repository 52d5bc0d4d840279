package service

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	cacheDir = "cache/images"
	// Quality settings
	qualityThumb  = 60
	qualityMedium = 75
	// Size settings (max dimension)
	maxSizeThumb  = 300
	maxSizeMedium = 800
)

// EnsureCacheDir ensures the image cache directory exists.
func EnsureCacheDir() error {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return errors.Wrap(err, "failed to create cache directory")
	}
	return nil
}

// GetCachePath returns the cache file path for a dish image at a size.
func GetCachePath(dishID, size string) string {
	filename := fmt.Sprintf("dish_%s_%s.jpg", dishID, size)
	return filepath.Join(cacheDir, filename)
}

// CacheExists checks if a cached image exists.
func CacheExists(cachePath string) bool {
	_, err := os.Stat(cachePath)
	return err == nil
}

// ReadFromCache reads an optimized image from the cache.
func ReadFromCache(cachePath string) ([]byte, error) {
	data, err := os.ReadFile(cachePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read from cache")
	}
	return data, nil
}

// SaveToCache writes an optimized image to the cache.
func SaveToCache(cachePath string, imageData []byte) error {
	if err := os.MkdirAll(filepath.Dir(cachePath), 0755); err != nil {
		return errors.Wrap(err, "failed to create cache directory")
	}
	if err := os.WriteFile(cachePath, imageData, 0644); err != nil {
		return errors.Wrap(err, "failed to write to cache")
	}
	log.Printf("✓ Image cached: %s", cachePath)
	return nil
}

// OptimizeImage converts an image to JPEG and resizes it for the given
// size ("thumb" or "medium"), preserving aspect ratio.
// Note: JPEG instead of WebP to avoid a CGO dependency.
func OptimizeImage(imageData []byte, size string) ([]byte, error) {
	img, format, err := image.Decode(bytes.NewReader(imageData))
	if err != nil {
		return nil, errors.Wrap(err, "failed to decode image")
	}

	log.Printf("📸 Image decoded: format=%s, bounds=%v", format, img.Bounds())

	var maxDim, quality int
	switch size {
	case "thumb":
		maxDim = maxSizeThumb
		quality = qualityThumb
	case "medium":
		maxDim = maxSizeMedium
		quality = qualityMedium
	default:
		maxDim = maxSizeMedium
		quality = qualityMedium
		log.Printf("⚠️  Unknown size '%s', defaulting to medium", size)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	var resized image.Image = img
	if width > maxDim || height > maxDim {
		var newWidth, newHeight int
		if width > height {
			newWidth = maxDim
			newHeight = int(float64(height) * float64(maxDim) / float64(width))
		} else {
			newHeight = maxDim
			newWidth = int(float64(width) * float64(maxDim) / float64(height))
		}
		log.Printf("🔄 Resizing image: %dx%d -> %dx%d", width, height, newWidth, newHeight)
		resized = imaging.Resize(img, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, resized, &jpeg.Options{Quality: quality}); err != nil {
		return nil, errors.Wrap(err, "failed to encode to JPEG")
	}

	optimized := buf.Bytes()
	log.Printf("✓ Image optimized: size=%s, quality=%d, output_size=%d bytes", size, quality, len(optimized))
	return optimized, nil
}
