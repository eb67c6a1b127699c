package mongo

import (
	"context"
	"fmt"

	"github.com/logistics-id/simplemongo/common"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// Store is a typed handle over one collection. It is immutable once connected and
// safe for concurrent use.
type Store[T any, P common.Record[T]] struct {
	options    Options
	client     *mongo.Client
	database   *mongo.Database
	collection *Collection[T]
	logger     *zap.Logger
}

// Connect establishes the client, binds the database and collection named in opts,
// and runs a no-filter find as a liveness check. The returned store keeps a copy of
// opts with the credentials already spliced into the URI.
func Connect[T any, P common.Record[T]](ctx context.Context, opts Options, l *zap.Logger) (*Store[T, P], error) {
	if l == nil {
		l = zap.NewNop()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	opts.setDefault()

	logger := l.With(
		zap.String("component", "ds.mongodb"),
		zap.String("dsn", opts.URI),
		zap.String("database", opts.DatabaseName),
		zap.String("collection", opts.CollectionPath),
	)

	if opts.Credentials != nil {
		uri, err := AddCredentialsToURL(opts.URI, opts.Credentials.Username, opts.Credentials.Password)
		if err != nil {
			logger.Error("MGO/CONN FAILED", zap.Error(err))
			return nil, err
		}
		opts.URI = uri
	}

	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetMonitor(newCommandMonitor(logger))

	if err := clientOpts.Validate(); err != nil {
		logger.Error("MGO/CONN FAILED", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", common.ErrConnection, err)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.CtxTimeout)
		defer cancel()
	}

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		logger.Error("MGO/CONN FAILED", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", common.ErrConnection, err)
	}

	db := client.Database(opts.DatabaseName)
	s := newStore[T, P](opts, client, db, db.Collection(opts.CollectionPath), logger)

	if err := s.collection.Reachable(ctx); err != nil {
		logger.Error("MGO/CONN FAILURE", zap.Error(err))
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("%w: %w", common.ErrConnection, err)
	}

	logger.Info("MGO/CONN CONNECTED")

	return s, nil
}

func newStore[T any, P common.Record[T]](opts Options, client *mongo.Client, db *mongo.Database, coll *mongo.Collection, l *zap.Logger) *Store[T, P] {
	opts.setDefault()
	if l == nil {
		l = zap.NewNop()
	}

	return &Store[T, P]{
		options:    opts,
		client:     client,
		database:   db,
		collection: newCollection[T](coll, opts.IDField),
		logger:     l,
	}
}

// Options returns the options the store was connected with, credentials spliced.
func (s *Store[T, P]) Options() Options {
	return s.options
}

func (s *Store[T, P]) Database() *mongo.Database {
	return s.database
}

func (s *Store[T, P]) Collection() *Collection[T] {
	return s.collection
}

// New constructs a record with a fresh identifier and the given display name.
func (s *Store[T, P]) New(name string) T {
	return common.NewObject[T, P](name)
}

// Disconnect releases the underlying client.
func (s *Store[T, P]) Disconnect(ctx context.Context) error {
	if s.client == nil {
		return nil
	}

	s.logger.Info("MGO/CONN CLOSED")

	return s.client.Disconnect(ctx)
}

// ListAll returns every record in the collection, in the order the server yields them.
func (s *Store[T, P]) ListAll(ctx context.Context) ([]T, error) {
	records, err := s.collection.All(ctx)
	if err != nil {
		return nil, s.fail(ctx, "list all", err)
	}
	return records, nil
}

// FindOneByID returns the record with the given id, or nil when there is none.
// An invalid id fails before anything is sent to the server.
func (s *Store[T, P]) FindOneByID(ctx context.Context, id string) (*T, error) {
	pid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	record, err := s.collection.Show(ctx, pid)
	if err != nil {
		return nil, s.fail(ctx, "find one", err)
	}
	return record, nil
}

// InsertOne stores record and returns the copy read back from the collection.
// The record must already carry a valid id; otherwise nothing is written. The id
// is stored in canonical form so the read back and later lookups match it.
func (s *Store[T, P]) InsertOne(ctx context.Context, record T) (*T, error) {
	pid, err := ParseID(common.IDOf[T, P](record))
	if err != nil {
		return nil, err
	}

	if err := s.collection.Create(ctx, common.WithID[T, P](record, pid)); err != nil {
		return nil, s.fail(ctx, "insert one", err)
	}

	stored, err := s.collection.Show(ctx, pid)
	if err != nil {
		return nil, s.fail(ctx, "insert one", err)
	}
	return stored, nil
}

// RemoveOneByID deletes the record with the given id and returns what it held,
// or nil when nothing matched.
func (s *Store[T, P]) RemoveOneByID(ctx context.Context, id string) (*T, error) {
	pid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	record, err := s.collection.Destroy(ctx, pid)
	if err != nil {
		return nil, s.fail(ctx, "remove one", err)
	}
	return record, nil
}

// UpdateOneByID overwrites the record with the given id using every field of
// update. The identifier of update is ignored; the result always carries id.
// Nil is returned when nothing was modified, which covers both a missing record
// and an update identical to what is stored.
func (s *Store[T, P]) UpdateOneByID(ctx context.Context, id string, update T) (*T, error) {
	pid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	item := common.WithID[T, P](update, pid)

	doc, err := toSetDocument(item, s.collection.IDField())
	if err != nil {
		return nil, s.fail(ctx, "update one", err)
	}

	modified, err := s.collection.Set(ctx, pid, doc)
	if err != nil {
		return nil, s.fail(ctx, "update one", err)
	}
	if modified == 0 {
		return nil, nil
	}

	return &item, nil
}

// Clear deletes every document and reports whether the collection is now empty.
func (s *Store[T, P]) Clear(ctx context.Context) (bool, error) {
	if _, err := s.collection.Truncate(ctx); err != nil {
		return false, s.fail(ctx, "clear", err)
	}

	n, err := s.Count(ctx)
	if err != nil {
		return false, err
	}
	return n == 0, nil
}

// Count returns the number of documents in the collection.
func (s *Store[T, P]) Count(ctx context.Context) (int64, error) {
	n, err := s.collection.Count(ctx)
	if err != nil {
		return 0, s.fail(ctx, "count", err)
	}
	return n, nil
}

func (s *Store[T, P]) fail(ctx context.Context, op string, err error) error {
	s.logger.Error("MGO/OP FAILED",
		zap.String("request_id", common.GetContextRequestID(ctx)),
		zap.String("op", op),
		zap.Error(err),
	)
	return fmt.Errorf("mongo: %s: %w", op, err)
}
