package mongo

import (
	"context"
	"errors"
	"fmt"
	"stayfinder/config"
	"stayfinder/infras/otel"
	"stayfinder/shared/constant"
	"stayfinder/shared/store"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
	otel     otel.Otel
	timeout  time.Duration
}

// New connects to MongoDB, retrying MaxRetry times, and exits the process when no attempt succeeds.
func New(cfg *config.Config, otl otel.Otel) *Connection {
	mongoCfg := cfg.DB.Mongo
	timeout := time.Duration(mongoCfg.TimeoutSeconds) * time.Second

	for retry := range max(mongoCfg.MaxRetry, 1) {
		client, err := connect(mongoCfg.URI, timeout)
		if err == nil {
			log.Info().Str("database", mongoCfg.Database).Msg("Connected to MongoDB")

			return &Connection{
				Client:   client,
				Database: client.Database(mongoCfg.Database),
				otel:     otl,
				timeout:  timeout,
			}
		}

		log.Error().
			Err(err).
			Str("database", mongoCfg.Database).
			Int("attempt", retry+1).
			Msg("Failed connecting to MongoDB, retrying")

		time.Sleep(time.Duration(mongoCfg.RetryWaitTime) * time.Second)
	}

	log.Fatal().Str("database", mongoCfg.Database).Msg("Could not connect to MongoDB")

	return nil
}

func connect(uri string, timeout time.Duration) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	if err = client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())

		return nil, fmt.Errorf("failed to ping: %w", err)
	}

	return client, nil
}

func (c *Connection) Collection(name string) store.Collection {
	return &collection{
		coll:    c.Database.Collection(name),
		otel:    c.otel,
		timeout: c.timeout,
	}
}

func (c *Connection) Close(ctx context.Context) error {
	return c.Client.Disconnect(ctx) //nolint:wrapcheck
}

type collection struct {
	coll    *mongo.Collection
	otel    otel.Otel
	timeout time.Duration
}

// scope opens the operation span and bounds the operation by the configured timeout.
// The caller must call cancel.
func (c *collection) scope(ctx context.Context, op string, filter any) (context.Context, context.CancelFunc, otel.Scope) {
	cancel := context.CancelFunc(func() {})
	if c.timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
	}

	ctx, scope := c.otel.NewScope(ctx, constant.OtelStoreScopeName, constant.OtelStoreScopeName+"."+op)
	scope.SetAttributes(map[string]any{
		constant.OtelCollectionAttributeKey: c.coll.Name(),
		constant.OtelQueryAttributeKey:      filter,
	})

	return ctx, cancel, scope
}

func orEmpty(filter bson.M) bson.M {
	if filter == nil {
		return bson.M{}
	}

	return filter
}

func (c *collection) Find(ctx context.Context, filter bson.M, opts store.FindOptions, results any) (err error) {
	ctx, cancel, scope := c.scope(ctx, "Find", filter)
	defer cancel()
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	findOpts := options.Find()
	if opts.Projection != nil {
		findOpts.SetProjection(opts.Projection)
	}

	if len(opts.Sort) > 0 {
		findOpts.SetSort(opts.Sort)
	}

	if opts.Skip > 0 {
		findOpts.SetSkip(opts.Skip)
	}

	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := c.coll.Find(ctx, orEmpty(filter), findOpts)
	if err != nil {
		return fmt.Errorf("find on %s: %w", c.coll.Name(), err)
	}

	if err = cursor.All(ctx, results); err != nil {
		return fmt.Errorf("decode cursor on %s: %w", c.coll.Name(), err)
	}

	return nil
}

func (c *collection) FindOne(ctx context.Context, filter bson.M, projection bson.M, result any) (err error) {
	ctx, cancel, scope := c.scope(ctx, "FindOne", filter)
	defer cancel()
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	findOpts := options.FindOne()
	if projection != nil {
		findOpts.SetProjection(projection)
	}

	err = c.coll.FindOne(ctx, orEmpty(filter), findOpts).Decode(result)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}

	if err != nil {
		return fmt.Errorf("find one on %s: %w", c.coll.Name(), err)
	}

	return nil
}

func (c *collection) Distinct(ctx context.Context, field string, filter bson.M) (values []any, err error) {
	ctx, cancel, scope := c.scope(ctx, "Distinct", filter)
	defer cancel()
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	values, err = c.coll.Distinct(ctx, field, orEmpty(filter))
	if err != nil {
		return nil, fmt.Errorf("distinct %s on %s: %w", field, c.coll.Name(), err)
	}

	return values, nil
}

func (c *collection) InsertOne(ctx context.Context, document any) (id any, err error) {
	ctx, cancel, scope := c.scope(ctx, "InsertOne", nil)
	defer cancel()
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	result, err := c.coll.InsertOne(ctx, document)
	if err != nil {
		return nil, fmt.Errorf("insert on %s: %w", c.coll.Name(), err)
	}

	return result.InsertedID, nil
}
