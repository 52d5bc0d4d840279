package service

import (
	"context"
	"time"

	"food-express-backend/models"
	"food-express-backend/repository"
)

// Delays after order placement at which the displayed status advances. The
// stored status is never rewritten; the progression is simulated from the
// order date so the tracking page always shows movement.
const (
	preparingAfter      = 5 * time.Second
	outForDeliveryAfter = 30 * time.Second
	deliveredAfter      = estimatedDeliveryWindow
)

// statusRank orders statuses so display status never moves backwards past
// a further-along stored status.
var statusRank = map[string]int{
	models.StatusPending:        0,
	models.StatusConfirmed:      1,
	models.StatusPreparing:      2,
	models.StatusOutForDelivery: 3,
	models.StatusDelivered:      4,
}

// TimelineStep is one row of the tracking page timeline.
type TimelineStep struct {
	Status    string `json:"status"`
	Completed bool   `json:"completed"`
	Current   bool   `json:"current"`
}

// TrackingInfo is the tracking view of a single order.
type TrackingInfo struct {
	Order         *models.Order  `json:"order"`
	DisplayStatus string         `json:"displayStatus"`
	Timeline      []TimelineStep `json:"timeline"`
}

// TrackingService resolves orders for the tracking page and simulates their
// status progression.
type TrackingService struct {
	orders repository.OrderRepositoryInterface
	now    func() time.Time
}

func NewTrackingService(orders repository.OrderRepositoryInterface) *TrackingService {
	return &TrackingService{orders: orders, now: time.Now}
}

// GetOrder returns the stored order, or ErrOrderNotFound.
func (s *TrackingService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	return s.orders.GetByID(ctx, orderID)
}

// Track returns the order together with its simulated display status and
// the four-step timeline.
func (s *TrackingService) Track(ctx context.Context, orderID string) (*TrackingInfo, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	display := s.displayStatus(order)
	steps := []string{
		models.StatusConfirmed,
		models.StatusPreparing,
		models.StatusOutForDelivery,
		models.StatusDelivered,
	}

	timeline := make([]TimelineStep, 0, len(steps))
	rank := statusRank[display]
	for _, status := range steps {
		timeline = append(timeline, TimelineStep{
			Status:    status,
			Completed: statusRank[status] <= rank,
			Current:   status == display,
		})
	}

	return &TrackingInfo{Order: order, DisplayStatus: display, Timeline: timeline}, nil
}

// displayStatus derives the shown status from the elapsed time since the
// order was placed, never behind the stored status.
func (s *TrackingService) displayStatus(order *models.Order) string {
	elapsed := s.now().Sub(order.OrderDate)

	derived := models.StatusConfirmed
	switch {
	case elapsed >= deliveredAfter:
		derived = models.StatusDelivered
	case elapsed >= outForDeliveryAfter:
		derived = models.StatusOutForDelivery
	case elapsed >= preparingAfter:
		derived = models.StatusPreparing
	}

	if statusRank[order.Status] > statusRank[derived] {
		return order.Status
	}
	return derived
}
