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

type venueRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewVenueRepository создает репозиторий площадок
func NewVenueRepository(db *DB, logger *zap.Logger) repository.VenueRepository {
	return &venueRepository{
		coll:   db.db.Collection(collVenues),
		logger: logger,
	}
}

func (r *venueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	if venue.ID.IsZero() {
		venue.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, venue); err != nil {
		r.logger.Error("Failed to insert venue", zap.Error(err))
		return wrapWriteErr(err, "Venue")
	}
	return nil
}

func (r *venueRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Venue, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *venueRepository) GetBySlug(ctx context.Context, slug string) (*domain.Venue, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *venueRepository) GetByName(ctx context.Context, name string) (*domain.Venue, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"name_en": name},
		bson.M{"name_ru": name},
		bson.M{"name_he": name},
	}})
}

func (r *venueRepository) findOne(ctx context.Context, filter bson.M) (*domain.Venue, error) {
	var venue domain.Venue
	err := r.coll.FindOne(ctx, filter).Decode(&venue)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NotFound("Venue not found")
	}
	if err != nil {
		r.logger.Error("Failed to find venue", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &venue, nil
}

func (r *venueRepository) List(ctx context.Context, filter repository.VenueFilter) ([]*domain.Venue, error) {
	query := bson.M{}
	if filter.CityID != nil {
		query["city"] = *filter.CityID
	}
	if filter.VenueTypeID != nil {
		query["venue_type"] = *filter.VenueTypeID
	}
	if filter.ActiveOnly {
		query["is_active"] = true
	}

	cursor, err := r.coll.Find(ctx, query,
		options.Find().SetSort(bson.D{{Key: "name_en", Value: 1}}))
	if err != nil {
		r.logger.Error("Failed to list venues", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer cursor.Close(ctx)

	venues := make([]*domain.Venue, 0)
	if err := cursor.All(ctx, &venues); err != nil {
		return nil, errors.ErrDatabaseError
	}
	return venues, nil
}

func (r *venueRepository) Update(ctx context.Context, venue *domain.Venue) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": venue.ID}, venue)
	if err != nil {
		r.logger.Error("Failed to update venue", zap.Error(err))
		return wrapWriteErr(err, "Venue")
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("Venue not found")
	}
	return nil
}

func (r *venueRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("Failed to delete venue", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("Venue not found")
	}
	return nil
}

func (r *venueRepository) CountByCity(ctx context.Context, cityID primitive.ObjectID) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"city": cityID})
	if err != nil {
		r.logger.Error("Failed to count venues by city", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}

func (r *venueRepository) CountByVenueType(ctx context.Context, venueTypeID primitive.ObjectID) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"venue_type": venueTypeID})
	if err != nil {
		r.logger.Error("Failed to count venues by type", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return count, nil
}
