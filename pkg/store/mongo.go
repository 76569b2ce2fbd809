package store

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/AndySiamas/LayoutLens/pkg/cache"
	"github.com/AndySiamas/LayoutLens/pkg/errors"
)

// Defaults for MongoStore.
const (
	DefaultDatabase   = "layoutlens"
	DefaultCollection = "validation_reports"

	// disconnectTimeout bounds Close.
	disconnectTimeout = 5 * time.Second
)

// MongoStore keeps one document per run, keyed by run id.
type MongoStore struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoStore connects to uri and pings the primary. An empty database
// uses DefaultDatabase.
func NewMongoStore(ctx context.Context, uri, database string) (*MongoStore, error) {
	if database == "" {
		database = DefaultDatabase
	}
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(errors.ErrCodeNetwork, err, "ping mongodb")
	}
	return &MongoStore{
		client: client,
		coll:   client.Database(database).Collection(DefaultCollection),
	}, nil
}

// Save inserts rec. Network errors and timeouts are retried with backoff;
// a duplicate run id is not.
func (s *MongoStore) Save(ctx context.Context, rec Record) error {
	if !validRunID(rec.RunID) {
		return errors.New(errors.ErrCodeInvalidInput, "invalid run id %q", rec.RunID)
	}
	err := cache.RetryWithBackoff(ctx, func() error {
		_, err := s.coll.InsertOne(ctx, rec)
		return classify(err)
	})
	if err != nil {
		return fmt.Errorf("save run %s: %w", rec.RunID, err)
	}
	return nil
}

// Get loads a run by id.
func (s *MongoStore) Get(ctx context.Context, runID string) (*Record, error) {
	var rec Record
	err := cache.RetryWithBackoff(ctx, func() error {
		return classify(s.coll.FindOne(ctx, bson.M{"_id": runID}).Decode(&rec))
	})
	if err == mongo.ErrNoDocuments {
		return nil, errors.New(errors.ErrCodeNotFound, "run %q not found", runID)
	}
	if err != nil {
		return nil, fmt.Errorf("load run %s: %w", runID, err)
	}
	return &rec, nil
}

// Close disconnects the client.
func (s *MongoStore) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), disconnectTimeout)
	defer cancel()
	return s.client.Disconnect(ctx)
}

// classify marks transient driver errors as retryable.
func classify(err error) error {
	if err == nil || err == mongo.ErrNoDocuments {
		return err
	}
	if mongo.IsDuplicateKeyError(err) {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "run already saved")
	}
	if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
		return cache.Retryable(errors.Wrap(errors.ErrCodeNetwork, err, "mongodb"))
	}
	return err
}

var _ Store = (*MongoStore)(nil)
