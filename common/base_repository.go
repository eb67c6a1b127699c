package common

import "context"

// Repository defines the typed CRUD behaviors a datastore offers for one record type.
//
// Absence is reported as a nil record with a nil error; a non-nil error always means
// the operation failed.
type Repository[T any] interface {
	ListAll(ctx context.Context) ([]T, error)
	FindOneByID(ctx context.Context, id string) (*T, error)
	InsertOne(ctx context.Context, record T) (*T, error)
	RemoveOneByID(ctx context.Context, id string) (*T, error)
	UpdateOneByID(ctx context.Context, id string, update T) (*T, error)
	Clear(ctx context.Context) (bool, error)
}
