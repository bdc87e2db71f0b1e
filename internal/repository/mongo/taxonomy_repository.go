package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/domain/repository"
	"github.com/events-directory/internal/pkg/errors"
)

type venueTypeRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewVenueTypeRepository создает репозиторий типов площадок
func NewVenueTypeRepository(db *DB, logger *zap.Logger) repository.VenueTypeRepository {
	return &venueTypeRepository{
		coll:   db.db.Collection(collVenueTypes),
		logger: logger,
	}
}

func (r *venueTypeRepository) Create(ctx context.Context, vt *domain.VenueType) error {
	if vt.ID.IsZero() {
		vt.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, vt); err != nil {
		r.logger.Error("Failed to insert venue type", zap.Error(err))
		return wrapWriteErr(err, "Venue type")
	}
	return nil
}

func (r *venueTypeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.VenueType, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *venueTypeRepository) GetBySlug(ctx context.Context, slug string) (*domain.VenueType, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *venueTypeRepository) GetByName(ctx context.Context, name string) (*domain.VenueType, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"name_en": name},
		bson.M{"name_ru": name},
		bson.M{"name_he": name},
	}})
}

func (r *venueTypeRepository) findOne(ctx context.Context, filter bson.M) (*domain.VenueType, error) {
	var vt domain.VenueType
	err := r.coll.FindOne(ctx, filter).Decode(&vt)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NotFound("Venue type not found")
	}
	if err != nil {
		r.logger.Error("Failed to find venue type", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &vt, nil
}

func (r *venueTypeRepository) List(ctx context.Context) ([]*domain.VenueType, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name_en", Value: 1}}))
	if err != nil {
		r.logger.Error("Failed to list venue types", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer cursor.Close(ctx)

	types := make([]*domain.VenueType, 0)
	if err := cursor.All(ctx, &types); err != nil {
		return nil, errors.ErrDatabaseError
	}
	return types, nil
}

func (r *venueTypeRepository) Update(ctx context.Context, vt *domain.VenueType) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": vt.ID}, vt)
	if err != nil {
		r.logger.Error("Failed to update venue type", zap.Error(err))
		return wrapWriteErr(err, "Venue type")
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Venue type not found")
	}
	return nil
}

func (r *venueTypeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("Failed to delete venue type", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Venue type not found")
	}
	return nil
}

type eventTypeRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewEventTypeRepository создает репозиторий типов событий
func NewEventTypeRepository(db *DB, logger *zap.Logger) repository.EventTypeRepository {
	return &eventTypeRepository{
		coll:   db.db.Collection(collEventTypes),
		logger: logger,
	}
}

func (r *eventTypeRepository) Create(ctx context.Context, et *domain.EventType) error {
	if et.ID.IsZero() {
		et.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, et); err != nil {
		r.logger.Error("Failed to insert event type", zap.Error(err))
		return wrapWriteErr(err, "Event type")
	}
	return nil
}

func (r *eventTypeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.EventType, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *eventTypeRepository) GetBySlug(ctx context.Context, slug string) (*domain.EventType, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *eventTypeRepository) GetByName(ctx context.Context, name string) (*domain.EventType, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"name_en": name},
		bson.M{"name_ru": name},
		bson.M{"name_he": name},
	}})
}

func (r *eventTypeRepository) findOne(ctx context.Context, filter bson.M) (*domain.EventType, error) {
	var et domain.EventType
	err := r.coll.FindOne(ctx, filter).Decode(&et)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NotFound("Event type not found")
	}
	if err != nil {
		r.logger.Error("Failed to find event type", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &et, nil
}

func (r *eventTypeRepository) List(ctx context.Context) ([]*domain.EventType, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name_en", Value: 1}}))
	if err != nil {
		r.logger.Error("Failed to list event types", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer cursor.Close(ctx)

	types := make([]*domain.EventType, 0)
	if err := cursor.All(ctx, &types); err != nil {
		return nil, errors.ErrDatabaseError
	}
	return types, nil
}

func (r *eventTypeRepository) Update(ctx context.Context, et *domain.EventType) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": et.ID}, et)
	if err != nil {
		r.logger.Error("Failed to update event type", zap.Error(err))
		return wrapWriteErr(err, "Event type")
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Event type not found")
	}
	return nil
}

func (r *eventTypeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("Failed to delete event type", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Event type not found")
	}
	return nil
}
