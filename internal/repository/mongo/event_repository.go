package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/domain/repository"
	"github.com/events-directory/internal/pkg/errors"
)

type eventRepository struct {
	coll   *mongo.Collection
	venues *mongo.Collection
	logger *zap.Logger
}

// NewEventRepository создает репозиторий событий
func NewEventRepository(db *DB, logger *zap.Logger) repository.EventRepository {
	return &eventRepository{
		coll:   db.db.Collection(collEvents),
		venues: db.db.Collection(collVenues),
		logger: logger,
	}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	if event.ID.IsZero() {
		event.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		r.logger.Error("Failed to insert event", zap.Error(err))
		return wrapWriteErr(err, "Event")
	}
	return nil
}

func (r *eventRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Event, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *eventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *eventRepository) findOne(ctx context.Context, filter bson.M) (*domain.Event, error) {
	var event domain.Event
	err := r.coll.FindOne(ctx, filter).Decode(&event)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NotFound("Event not found")
	}
	if err != nil {
		r.logger.Error("Failed to find event", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &event, nil
}

func (r *eventRepository) List(ctx context.Context, filter repository.EventFilter) ([]*domain.Event, error) {
	query := bson.M{}
	if filter.VenueID != nil {
		query["venue"] = *filter.VenueID
	}
	if filter.EventTypeID != nil {
		query["event_type"] = *filter.EventTypeID
	}
	if filter.CityID != nil {
		// Город хранится на площадке, фильтруем через список её ID
		venueIDs, err := r.venueIDsByCity(ctx, *filter.CityID)
		if err != nil {
			return nil, err
		}
		query["venue"] = bson.M{"$in": venueIDs}
	}
	if filter.From != nil || filter.To != nil {
		dates := bson.M{}
		if filter.From != nil {
			dates["$gte"] = *filter.From
		}
		if filter.To != nil {
			dates["$lte"] = *filter.To
		}
		query["start_date"] = dates
	}
	if filter.ActiveOnly {
		query["is_active"] = true
	}

	return r.find(ctx, query)
}

func (r *eventRepository) venueIDsByCity(ctx context.Context, cityID primitive.ObjectID) ([]primitive.ObjectID, error) {
	cursor, err := r.venues.Find(ctx, bson.M{"city": cityID},
		options.Find().SetProjection(bson.M{"_id": 1}))
	if err != nil {
		r.logger.Error("Failed to resolve venues by city", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID primitive.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.ErrDatabaseError
	}

	ids := make([]primitive.ObjectID, len(docs))
	for i, doc := range docs {
		ids[i] = doc.ID
	}
	return ids, nil
}

func (r *eventRepository) ListByVenue(ctx context.Context, venueID primitive.ObjectID) ([]*domain.Event, error) {
	return r.find(ctx, bson.M{"venue": venueID})
}

func (r *eventRepository) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Event, error) {
	if len(ids) == 0 {
		return []*domain.Event{}, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *eventRepository) find(ctx context.Context, query bson.M) ([]*domain.Event, error) {
	cursor, err := r.coll.Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "start_date", Value: 1}}))
	if err != nil {
		r.logger.Error("Failed to list events", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer cursor.Close(ctx)

	events := make([]*domain.Event, 0)
	if err := cursor.All(ctx, &events); err != nil {
		return nil, errors.ErrDatabaseError
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, event *domain.Event) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": event.ID}, event)
	if err != nil {
		r.logger.Error("Failed to update event", zap.Error(err))
		return wrapWriteErr(err, "Event")
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Event not found")
	}
	return nil
}

func (r *eventRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("Failed to delete event", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Event not found")
	}
	return nil
}

func (r *eventRepository) DeleteByVenue(ctx context.Context, venueID primitive.ObjectID) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{"venue": venueID})
	if err != nil {
		r.logger.Error("Failed to delete events by venue", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return result.DeletedCount, nil
}

func (r *eventRepository) CountByEventType(ctx context.Context, eventTypeID primitive.ObjectID) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"event_type": eventTypeID})
	if err != nil {
		r.logger.Error("Failed to count events by type", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}

func (r *eventRepository) DeactivatePast(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.coll.UpdateMany(ctx,
		bson.M{"end_date": bson.M{"$lt": cutoff}, "is_active": true},
		bson.M{"$set": bson.M{"is_active": false}})
	if err != nil {
		r.logger.Error("Failed to deactivate past events", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return result.ModifiedCount, nil
}
