package pricing

import (
	"math"

	"food-express-backend/models"
)

// Fee schedule for the storefront. Delivery is free once the subtotal
// reaches FreeDeliveryThreshold; GST is charged on subtotal plus the
// platform fee, never on the delivery fee.
const (
	FreeDeliveryThreshold = 299.0
	DeliveryFee           = 40.0
	PlatformFee           = 5.0
	GSTRate               = 0.05
)

// Compute calculates the price breakdown for a cart. It is a pure function:
// the same cart always yields the same totals. GST is rounded half away from
// zero to whole currency units.
func Compute(cart models.Cart) models.Totals {
	var subtotal float64
	for _, item := range cart {
		subtotal += item.Price * float64(item.Quantity)
	}

	deliveryFee := DeliveryFee
	if subtotal >= FreeDeliveryThreshold {
		deliveryFee = 0
	}

	gst := math.Round((subtotal + PlatformFee) * GSTRate)

	return models.Totals{
		Subtotal:    subtotal,
		DeliveryFee: deliveryFee,
		PlatformFee: PlatformFee,
		GST:         gst,
		Total:       subtotal + deliveryFee + PlatformFee + gst,
	}
}
