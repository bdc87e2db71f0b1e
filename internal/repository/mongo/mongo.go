package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/events-directory/internal/config"
	"github.com/events-directory/internal/pkg/errors"
)

// Имена коллекций
const (
	collCities     = "cities"
	collVenueTypes = "venue_types"
	collEventTypes = "event_types"
	collVenues     = "venues"
	collEvents     = "events"
	collUsers      = "users"
)

// DB оборачивает подключение к MongoDB
type DB struct {
	client *mongo.Client
	db     *mongo.Database
	logger *zap.Logger
}

// New подключается к MongoDB и проверяет соединение
func New(ctx context.Context, cfg *config.MongoConfig, logger *zap.Logger) (*DB, error) {
	connectCtx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	client, err := mongo.Connect(connectCtx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(connectCtx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	logger.Info("Connected to MongoDB", zap.String("database", cfg.DBName))

	return &DB{
		client: client,
		db:     client.Database(cfg.DBName),
		logger: logger,
	}, nil
}

// Health проверяет доступность базы
func (d *DB) Health(ctx context.Context) error {
	return d.client.Ping(ctx, nil)
}

// Database возвращает низкоуровневый дескриптор базы
func (d *DB) Database() *mongo.Database {
	return d.db
}

// Close закрывает подключение
func (d *DB) Close(ctx context.Context) error {
	return d.client.Disconnect(ctx)
}

// EnsureIndexes создает уникальные и поисковые индексы всех коллекций
func (d *DB) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)

	indexes := map[string][]mongo.IndexModel{
		collCities: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "name_en", Value: 1}}, Options: unique},
		},
		collVenueTypes: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "name_en", Value: 1}}, Options: unique},
		},
		collEventTypes: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "name_en", Value: 1}}, Options: unique},
		},
		collVenues: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "city", Value: 1}}},
			{Keys: bson.D{{Key: "venue_type", Value: 1}}},
			{Keys: bson.D{{Key: "location", Value: "2dsphere"}}},
		},
		collEvents: {
			{Keys: bson.D{{Key: "slug", Value: 1}}, Options: unique},
			{Keys: bson.D{{Key: "venue", Value: 1}}},
			{Keys: bson.D{{Key: "event_type", Value: 1}}},
			{Keys: bson.D{{Key: "start_date", Value: 1}}},
			{Keys: bson.D{{Key: "end_date", Value: 1}, {Key: "is_active", Value: 1}}},
		},
		collUsers: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		},
	}

	for coll, models := range indexes {
		if _, err := d.db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("failed to create indexes for %s: %w", coll, err)
		}
	}

	d.logger.Info("MongoDB indexes ensured")
	return nil
}

// wrapWriteErr переводит ошибки записи в ошибки приложения
func wrapWriteErr(err error, entity string) error {
	if err == nil {
		return nil
	}
	if mongo.IsDuplicateKeyError(err) {
		return errors.Conflict("%s with the same unique field already exists", entity)
	}
	return errors.ErrDatabaseError
}
