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

type cityRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewCityRepository создает репозиторий городов
func NewCityRepository(db *DB, logger *zap.Logger) repository.CityRepository {
	return &cityRepository{
		coll:   db.db.Collection(collCities),
		logger: logger,
	}
}

func (r *cityRepository) Create(ctx context.Context, city *domain.City) error {
	if city.ID.IsZero() {
		city.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, city)
	if err != nil {
		r.logger.Error("Failed to insert city", zap.Error(err))
		return wrapWriteErr(err, "City")
	}
	return nil
}

func (r *cityRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.City, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *cityRepository) GetBySlug(ctx context.Context, slug string) (*domain.City, error) {
	return r.findOne(ctx, bson.M{"slug": slug})
}

func (r *cityRepository) GetByName(ctx context.Context, name string) (*domain.City, error) {
	return r.findOne(ctx, bson.M{"$or": bson.A{
		bson.M{"name_en": name},
		bson.M{"name_ru": name},
		bson.M{"name_he": name},
	}})
}

func (r *cityRepository) findOne(ctx context.Context, filter bson.M) (*domain.City, error) {
	var city domain.City
	err := r.coll.FindOne(ctx, filter).Decode(&city)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NotFound("City not found")
	}
	if err != nil {
		r.logger.Error("Failed to find city", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &city, nil
}

func (r *cityRepository) List(ctx context.Context) ([]*domain.City, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "name_en", Value: 1}}))
	if err != nil {
		r.logger.Error("Failed to list cities", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer cursor.Close(ctx)

	cities := make([]*domain.City, 0)
	if err := cursor.All(ctx, &cities); err != nil {
		return nil, errors.ErrDatabaseError
	}
	return cities, nil
}

func (r *cityRepository) Update(ctx context.Context, city *domain.City) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": city.ID}, city)
	if err != nil {
		r.logger.Error("Failed to update city", zap.Error(err))
		return wrapWriteErr(err, "City")
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("City not found")
	}
	return nil
}

func (r *cityRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("Failed to delete city", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("City not found")
	}
	return nil
}
