package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection wraps a MongoDB collection bound to documents of type T.
// All id arguments are expected to be canonical already.
type Collection[T any] struct {
	*mongo.Collection
	idField string
}

func newCollection[T any](c *mongo.Collection, idField string) *Collection[T] {
	if idField == "" {
		idField = ID
	}
	return &Collection[T]{Collection: c, idField: idField}
}

// IDField returns the document field used for identity lookups.
func (c *Collection[T]) IDField() string {
	return c.idField
}

func (c *Collection[T]) byID(id string) bson.M {
	return bson.M{c.idField: id}
}

// Reachable runs a no-filter find and closes the cursor.
func (c *Collection[T]) Reachable(ctx context.Context) error {
	cur, err := c.Find(ctx, bson.D{})
	if err != nil {
		return err
	}
	return cur.Close(ctx)
}

// All decodes every document in arrival order. The result is never nil.
func (c *Collection[T]) All(ctx context.Context) ([]T, error) {
	cur, err := c.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	results := make([]T, 0)
	for cur.Next(ctx) {
		var elem T
		if err := cur.Decode(&elem); err != nil {
			return nil, err
		}
		results = append(results, elem)
	}

	return results, cur.Err()
}

// Show finds the document with the given id. A missing document yields nil, nil.
func (c *Collection[T]) Show(ctx context.Context, id string) (*T, error) {
	return decodeOne[T](c.FindOne(ctx, c.byID(id)))
}

// Create inserts record as a new document.
func (c *Collection[T]) Create(ctx context.Context, record T) error {
	_, err := c.InsertOne(ctx, record)
	return err
}

// Destroy atomically removes the document with the given id and returns its
// previous content, or nil when nothing matched.
func (c *Collection[T]) Destroy(ctx context.Context, id string) (*T, error) {
	return decodeOne[T](c.FindOneAndDelete(ctx, c.byID(id)))
}

// Set applies a $set of doc to the document with the given id and returns the
// number of modified documents.
func (c *Collection[T]) Set(ctx context.Context, id string, doc bson.M) (int64, error) {
	res, err := c.UpdateOne(ctx, c.byID(id), bson.M{"$set": doc})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// Truncate deletes every document and returns how many were removed.
func (c *Collection[T]) Truncate(ctx context.Context) (int64, error) {
	res, err := c.DeleteMany(ctx, bson.D{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// Count returns the number of documents in the collection.
func (c *Collection[T]) Count(ctx context.Context) (int64, error) {
	return c.CountDocuments(ctx, bson.D{})
}

func decodeOne[T any](res *mongo.SingleResult) (*T, error) {
	var out T
	if err := res.Decode(&out); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &out, nil
}
