// Package store defines the document store capabilities the domains depend on.
// The MongoDB implementation lives in infras/mongo; tests use the gomock version in store/mocks.
package store

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=./mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrNotFound is returned by FindOne when no document matches. It is distinct from
// lookup failures, which carry the driver error.
var ErrNotFound = errors.New("document not found")

type FindOptions struct {
	Projection bson.M
	Sort       bson.D
	Skip       int64
	Limit      int64
}

type Collection interface {
	Find(ctx context.Context, filter bson.M, opts FindOptions, results any) error
	FindOne(ctx context.Context, filter bson.M, projection bson.M, result any) error
	Distinct(ctx context.Context, field string, filter bson.M) ([]any, error)
	InsertOne(ctx context.Context, document any) (any, error)
}

type Store interface {
	Collection(name string) Collection
	// Close disconnects from the database. The store is unusable afterwards.
	Close(ctx context.Context) error
}
