package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"food-express-backend/models"
)

var (
	imageExtRegex = regexp.MustCompile(`(?i)\.(png|jpg|jpeg|webp)$`)
	priceRegex    = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// ParseDishFileName parses a menu image filename following the pattern:
// CATEGORY_DISH-NAME_PRICE.EXT
// Example: Starters_Paneer-Tikka_249.jpg
// Hyphens in the dish name become spaces; the category is lower-cased.
func ParseDishFileName(filename string) (*models.Dish, error) {
	if !imageExtRegex.MatchString(filename) {
		return nil, fmt.Errorf("not an image file: %s", filename)
	}
	nameWithoutExt := imageExtRegex.ReplaceAllString(filename, "")

	parts := strings.Split(nameWithoutExt, "_")
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid filename format: expected CATEGORY_DISH-NAME_PRICE, got %d parts", len(parts))
	}

	category := strings.ToLower(strings.TrimSpace(parts[0]))
	if category == "" {
		return nil, fmt.Errorf("invalid filename format: empty category in %s", filename)
	}

	name := strings.TrimSpace(strings.ReplaceAll(parts[1], "-", " "))
	if name == "" {
		return nil, fmt.Errorf("invalid filename format: empty dish name in %s", filename)
	}

	if !priceRegex.MatchString(parts[2]) {
		return nil, fmt.Errorf("invalid price in filename: expected a number, got %s", parts[2])
	}
	price, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return nil, fmt.Errorf("invalid price in filename: %w", err)
	}

	return &models.Dish{
		Name:     name,
		Category: category,
		Price:    price,
		Status:   models.DishStatusPending,
	}, nil
}
