package service

import (
	"context"

	"github.com/pkg/errors"

	"food-express-backend/models"
)

// Remote directory collections.
const (
	CollectionOrders = "orders"
	CollectionUsers  = "users"
)

// ErrRemoteUnavailable is returned by directory operations that have no
// backing service in the current deployment.
var ErrRemoteUnavailable = errors.New("remote directory not available")

// Unsubscribe stops a live query. Consumers must call it on logout so the
// subscription does not leak.
type Unsubscribe func()

// Directory is the optional external document-collection service used as a
// best-effort mirror of the order collection. The durable local store stays
// authoritative: directory write failures are logged and absorbed, never
// surfaced to the ordering user.
//
// Subscribe delivers a complete snapshot of the ordered collection on every
// change; consumers replace their whole view per emission rather than
// patching it.
type Directory interface {
	SetDocument(ctx context.Context, collection, id string, record interface{}) error
	GetDocument(ctx context.Context, collection, id string, dest interface{}) error
	QueryOrdered(ctx context.Context, collection, orderBy string, descending bool, dest interface{}) error
	Subscribe(ctx context.Context, collection, orderBy string, descending bool,
		onSnapshot func(orders []models.Order), onError func(error)) (Unsubscribe, error)
}
