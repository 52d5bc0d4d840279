package service

import (
	"context"
	"sort"
	"time"

	log "github.com/sirupsen/logrus"

	"food-express-backend/models"
	"food-express-backend/repository"
)

// LocalDirectory serves directory queries from local order storage when no
// remote mirror is configured. Writes are no-ops because local storage is
// already the system of record; subscriptions poll instead of streaming.
type LocalDirectory struct {
	orders       repository.OrderRepositoryInterface
	pollInterval time.Duration
}

func NewLocalDirectory(orders repository.OrderRepositoryInterface, pollInterval time.Duration) *LocalDirectory {
	if pollInterval <= 0 {
		pollInterval = 10 * time.Second
	}
	return &LocalDirectory{orders: orders, pollInterval: pollInterval}
}

var _ Directory = (*LocalDirectory)(nil)

func (d *LocalDirectory) SetDocument(ctx context.Context, collection, id string, record interface{}) error {
	log.Printf("📦 Local directory: skipping mirror write %s/%s", collection, id)
	return nil
}

func (d *LocalDirectory) GetDocument(ctx context.Context, collection, id string, dest interface{}) error {
	if collection != CollectionOrders {
		return ErrRemoteUnavailable
	}
	order, err := d.orders.GetByID(ctx, id)
	if err != nil {
		return err
	}
	return fromDocument(order, dest)
}

func (d *LocalDirectory) QueryOrdered(ctx context.Context, collection, orderBy string, descending bool, dest interface{}) error {
	if collection != CollectionOrders {
		return ErrRemoteUnavailable
	}
	orders, err := d.queryOrders(ctx, descending)
	if err != nil {
		return err
	}
	return fromDocument(orders, dest)
}

// Subscribe polls local storage at the configured interval and emits a
// snapshot each tick, starting immediately.
func (d *LocalDirectory) Subscribe(ctx context.Context, collection, orderBy string, descending bool,
	onSnapshot func(orders []models.Order), onError func(error)) (Unsubscribe, error) {

	if collection != CollectionOrders {
		return nil, ErrRemoteUnavailable
	}

	pollCtx, cancel := context.WithCancel(ctx)

	emit := func() {
		orders, err := d.queryOrders(pollCtx, descending)
		if err != nil {
			if pollCtx.Err() == nil {
				onError(err)
			}
			return
		}
		onSnapshot(orders)
	}

	go func() {
		ticker := time.NewTicker(d.pollInterval)
		defer ticker.Stop()

		emit()
		for {
			select {
			case <-pollCtx.Done():
				return
			case <-ticker.C:
				emit()
			}
		}
	}()

	return func() { cancel() }, nil
}

func (d *LocalDirectory) queryOrders(ctx context.Context, descending bool) ([]models.Order, error) {
	orders, err := d.orders.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(orders, func(i, j int) bool {
		if descending {
			return orders[i].OrderDate.After(orders[j].OrderDate)
		}
		return orders[i].OrderDate.Before(orders[j].OrderDate)
	})
	return orders, nil
}
