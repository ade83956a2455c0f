package repository_test

import (
	"context"
	"errors"
	"stayfinder/infras/otel/mocks"
	"stayfinder/shared/dto"
	"stayfinder/shared/repository"
	"stayfinder/shared/store"
	storeMocks "stayfinder/shared/store/mocks"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

type room struct {
	ID      string `bson:"_id"`
	Name    string `bson:"name"`
	Ignored string `bson:"-"`
	Score   struct {
		Rating int `bson:"rating"`
	} `bson:"score" projection:"score.rating"`
}

const collectionName = "rooms"

func setup(t *testing.T) (*storeMocks.MockCollection, repository.Repository[room]) {
	t.Helper()

	ctrl := gomock.NewController(t)

	collection := storeMocks.NewMockCollection(ctrl)
	db := storeMocks.NewMockStore(ctrl)
	db.EXPECT().Collection(collectionName).Return(collection)

	return collection, repository.NewRepository[room]("room", collectionName, db, mocks.NewOtel())
}

func TestRepository_Insert(t *testing.T) {
	ctx := context.Background()
	objectID := primitive.NewObjectID()

	tests := []struct {
		name      string
		inserted  any
		insertErr error
		wantID    string
		wantErr   bool
	}{
		{name: "object id", inserted: objectID, wantID: objectID.Hex()},
		{name: "string id", inserted: "10006546", wantID: "10006546"},
		{name: "store error", insertErr: errors.New("connection reset"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collection, repo := setup(t)
			collection.EXPECT().InsertOne(ctx, gomock.Any()).Return(tt.inserted, tt.insertErr)

			id, err := repo.Insert(ctx, room{Name: "loft"})
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.insertErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, id)
		})
	}
}

func TestRepository_Get(t *testing.T) {
	ctx := context.Background()
	filter := dto.FilterGroup{Filters: []any{dto.Filter{Field: "_id", Value: "1", Operator: dto.FilterOperatorEq}}}
	projection := bson.M{"_id": 1, "name": 1, "score.rating": 1}

	t.Run("found", func(t *testing.T) {
		collection, repo := setup(t)
		collection.EXPECT().
			FindOne(ctx, bson.M{"_id": "1"}, projection, gomock.Any()).
			DoAndReturn(func(_ context.Context, _, _ bson.M, result any) error {
				r, _ := result.(*room)
				r.ID = "1"
				r.Name = "loft"

				return nil
			})

		got, err := repo.Get(ctx, filter)
		require.NoError(t, err)
		assert.Equal(t, "loft", got.Name)
	})

	t.Run("not found yields zero value", func(t *testing.T) {
		collection, repo := setup(t)
		collection.EXPECT().FindOne(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(store.ErrNotFound)

		got, err := repo.Get(ctx, filter)
		require.NoError(t, err)
		assert.Empty(t, got.ID)
	})

	t.Run("store error", func(t *testing.T) {
		collection, repo := setup(t)
		collection.EXPECT().FindOne(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("timeout"))

		_, err := repo.Get(ctx, filter)
		assert.Error(t, err)
	})

	t.Run("empty filter", func(t *testing.T) {
		_, repo := setup(t)

		_, err := repo.Get(ctx, dto.FilterGroup{})
		assert.Error(t, err)
	})
}

func TestRepository_GetAll(t *testing.T) {
	ctx := context.Background()
	params := dto.QueryParams{Page: 2, Limit: 5}

	collection, repo := setup(t)
	collection.EXPECT().
		Find(ctx, bson.M{}, store.FindOptions{
			Projection: bson.M{"_id": 1, "name": 1, "score.rating": 1},
			Skip:       5,
			Limit:      5,
		}, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ bson.M, _ store.FindOptions, results any) error {
			r, _ := results.(*[]room)
			*r = append(*r, room{ID: "1"}, room{ID: "2"})

			return nil
		})

	got, err := repo.GetAll(ctx, params, dto.FilterGroup{})
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestRepository_Exist(t *testing.T) {
	ctx := context.Background()
	filter := dto.FilterGroup{Filters: []any{dto.Filter{Field: "_id", Value: "1", Operator: dto.FilterOperatorEq}}}

	tests := []struct {
		name    string
		findErr error
		want    bool
		wantErr bool
	}{
		{name: "exists", want: true},
		{name: "missing", findErr: store.ErrNotFound, want: false},
		{name: "store error", findErr: errors.New("timeout"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collection, repo := setup(t)
			collection.EXPECT().FindOne(ctx, bson.M{"_id": "1"}, bson.M{"_id": 1}, gomock.Any()).Return(tt.findErr)

			got, err := repo.Exist(ctx, filter)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepository_Distinct(t *testing.T) {
	ctx := context.Background()

	collection, repo := setup(t)
	collection.EXPECT().Distinct(ctx, "name", bson.M{}).Return([]any{"loft", "villa"}, nil)

	got, err := repo.Distinct(ctx, "name", dto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, []any{"loft", "villa"}, got)
}
