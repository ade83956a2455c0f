package repository

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"stayfinder/infras/otel"
	"stayfinder/shared/constant"
	"stayfinder/shared/dto"
	"stayfinder/shared/logger"
	"stayfinder/shared/store"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	errRequiredFilter = errors.New("required filter")
)

// Repository is a typed view over one collection. The projection is derived from the bson
// tags of T; a `projection` tag overrides the path for nested fields.
type Repository[T any] struct {
	collection store.Collection
	otel       otel.Otel
	entity     string
	projection bson.M
}

func NewRepository[T any](entityName, collectionName string, db store.Store, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		collection: db.Collection(collectionName),
		otel:       otl,
		entity:     entityName,
		projection: getProjection(reflect.TypeOf(zero)),
	}
}

func (repo *Repository[T]) spanName(op string) string {
	return fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, repo.entity, op)
}

// Insert stores model and returns its identifier as a string (hex for ObjectIDs).
func (repo *Repository[T]) Insert(ctx context.Context, model T) (string, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Insert"))
	defer scope.End()

	insertedID, err := repo.collection.InsertOne(ctx, model)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return constant.Empty, fmt.Errorf("failed to insert data (%s): %w", repo.entity, err)
	}

	switch id := insertedID.(type) {
	case primitive.ObjectID:
		return id.Hex(), nil
	case string:
		return id, nil
	default:
		return fmt.Sprintf("%v", id), nil
	}
}

// Get returns the first matching document, or the zero value of T when nothing matches.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Get"))
	defer scope.End()

	var model T

	query := filter.GetQuery()
	if len(query) == 0 {
		return model, errRequiredFilter
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	err := repo.collection.FindOne(ctx, query, repo.projection, &model)
	if errors.Is(err, store.ErrNotFound) {
		return model, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model, fmt.Errorf("failed to get data (%s): %w", repo.entity, err)
	}

	return model, nil
}

func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("GetAll"))
	defer scope.End()

	query := filter.GetQuery()
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	models := []T{}

	err := repo.collection.Find(ctx, query, params.FindOptions(repo.projection), &models)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get all data (%s): %w", repo.entity, err)
	}

	return models, nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Exist"))
	defer scope.End()

	query := filter.GetQuery()
	if len(query) == 0 {
		return false, errRequiredFilter
	}

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var found bson.M

	err := repo.collection.FindOne(ctx, query, bson.M{constant.FieldID: 1}, &found)
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to check exist data (%s): %w", repo.entity, err)
	}

	return true, nil
}

func (repo *Repository[T]) Distinct(ctx context.Context, field string, filter dto.FilterGroup) ([]any, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, repo.spanName("Distinct"))
	defer scope.End()

	values, err := repo.collection.Distinct(ctx, field, filter.GetQuery())
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get distinct %s (%s): %w", field, repo.entity, err)
	}

	return values, nil
}

func getProjection(reflectType reflect.Type) bson.M {
	projection := bson.M{}

	for i := range reflectType.NumField() {
		field := reflectType.Field(i)
		bsonTag, _, _ := strings.Cut(field.Tag.Get("bson"), ",")

		if field.Anonymous && field.Type.Kind() == reflect.Struct && bsonTag == "" {
			for key, value := range getProjection(field.Type) {
				projection[key] = value
			}

			continue
		}

		if bsonTag == "" || bsonTag == "-" {
			continue
		}

		if path := field.Tag.Get("projection"); path != "" {
			bsonTag = path
		}

		projection[bsonTag] = 1
	}

	return projection
}
