package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"food-express-backend/models"
)

// MongoDirectory is the remote-backed Directory implementation. Documents
// are stored one per order/user with the id as _id; live queries use change
// streams, re-reading the full ordered collection on every event so
// subscribers always see a complete snapshot.
type MongoDirectory struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoDirectory connects to the directory service. The connection is
// verified up front so startup can fall back to the local-only directory
// when the mirror is unreachable.
func NewMongoDirectory(ctx context.Context, uri, database string) (*MongoDirectory, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to remote directory")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(err, "failed to ping remote directory")
	}

	return &MongoDirectory{
		client: client,
		db:     client.Database(database),
	}, nil
}

var _ Directory = (*MongoDirectory)(nil)

// Close disconnects from the directory service.
func (d *MongoDirectory) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// SetDocument upserts the record under the given id.
func (d *MongoDirectory) SetDocument(ctx context.Context, collection, id string, record interface{}) error {
	doc, err := toDocument(record)
	if err != nil {
		return err
	}
	doc["_id"] = id

	_, err = d.db.Collection(collection).ReplaceOne(ctx,
		bson.M{"_id": id}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return errors.Wrapf(err, "failed to set document %s/%s", collection, id)
	}
	return nil
}

// GetDocument reads the record with the given id into dest.
func (d *MongoDirectory) GetDocument(ctx context.Context, collection, id string, dest interface{}) error {
	var doc bson.M
	err := d.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		return errors.Wrapf(err, "failed to get document %s/%s", collection, id)
	}
	return fromDocument(doc, dest)
}

// QueryOrdered reads the whole collection ordered by a field into dest.
func (d *MongoDirectory) QueryOrdered(ctx context.Context, collection, orderBy string, descending bool, dest interface{}) error {
	dir := 1
	if descending {
		dir = -1
	}

	cursor, err := d.db.Collection(collection).Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: orderBy, Value: dir}}))
	if err != nil {
		return errors.Wrapf(err, "failed to query %s", collection)
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return errors.Wrapf(err, "failed to read %s cursor", collection)
	}
	return fromDocument(docs, dest)
}

// Subscribe watches the collection and delivers a full re-queried snapshot
// on every change, starting with the current state. The returned handle
// stops the watch.
func (d *MongoDirectory) Subscribe(ctx context.Context, collection, orderBy string, descending bool,
	onSnapshot func(orders []models.Order), onError func(error)) (Unsubscribe, error) {

	stream, err := d.db.Collection(collection).Watch(ctx, mongo.Pipeline{})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to watch %s", collection)
	}

	watchCtx, cancel := context.WithCancel(ctx)

	emit := func() {
		var orders []models.Order
		if err := d.QueryOrdered(watchCtx, collection, orderBy, descending, &orders); err != nil {
			onError(err)
			return
		}
		onSnapshot(orders)
	}

	go func() {
		defer stream.Close(context.Background())

		emit()
		for stream.Next(watchCtx) {
			emit()
		}
		if err := stream.Err(); err != nil && watchCtx.Err() == nil {
			log.Printf("❌ Directory watch on %s ended: %v", collection, err)
			onError(err)
		}
	}()

	return func() { cancel() }, nil
}

func toDocument(record interface{}) (bson.M, error) {
	raw, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode directory record")
	}
	var doc bson.M
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrap(err, "failed to build directory document")
	}
	return doc, nil
}

func fromDocument(doc interface{}, dest interface{}) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "failed to encode directory document")
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return errors.Wrap(err, "failed to decode directory document")
	}
	return nil
}
