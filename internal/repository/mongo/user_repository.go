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

type userRepository struct {
	coll   *mongo.Collection
	logger *zap.Logger
}

// NewUserRepository создает репозиторий пользователей
func NewUserRepository(db *DB, logger *zap.Logger) repository.UserRepository {
	return &userRepository{
		coll:   db.db.Collection(collUsers),
		logger: logger,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := r.coll.InsertOne(ctx, user); err != nil {
		r.logger.Error("Failed to insert user", zap.Error(err))
		if mongo.IsDuplicateKeyError(err) {
			return errors.Conflict("User with this email already exists")
		}
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"_id": id})
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *userRepository) GetByConfirmationToken(ctx context.Context, token string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email_confirmation_token": token})
}

func (r *userRepository) GetByResetToken(ctx context.Context, token string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"password_reset_token": token})
}

func (r *userRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	var user domain.User
	err := r.coll.FindOne(ctx, filter).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, errors.NotFound("User not found")
	}
	if err != nil {
		r.logger.Error("Failed to find user", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &user, nil
}

func (r *userRepository) List(ctx context.Context) ([]*domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.M{},
		options.Find().SetSort(bson.D{{Key: "email", Value: 1}}))
	if err != nil {
		r.logger.Error("Failed to list users", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer cursor.Close(ctx)

	users := make([]*domain.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errors.ErrDatabaseError
	}
	return users, nil
}

func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	result, err := r.coll.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		r.logger.Error("Failed to update user", zap.Error(err))
		if mongo.IsDuplicateKeyError(err) {
			return errors.Conflict("User with this email already exists")
		}
		return errors.ErrDatabaseError
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("User not found")
	}
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		r.logger.Error("Failed to delete user", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if result.DeletedCount == 0 {
		return errors.NotFound("User not found")
	}
	return nil
}

func (r *userRepository) AddFavorite(ctx context.Context, userID, eventID primitive.ObjectID) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$addToSet": bson.M{"favorite_events": eventID}})
	if err != nil {
		r.logger.Error("Failed to add favorite", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("User not found")
	}
	return nil
}

func (r *userRepository) RemoveFavorite(ctx context.Context, userID, eventID primitive.ObjectID) error {
	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": userID},
		bson.M{"$pull": bson.M{"favorite_events": eventID}})
	if err != nil {
		r.logger.Error("Failed to remove favorite", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if result.MatchedCount == 0 {
		return errors.NotFound("User not found")
	}
	return nil
}

func (r *userRepository) PullFavoriteFromAll(ctx context.Context, eventID primitive.ObjectID) (int64, error) {
	result, err := r.coll.UpdateMany(ctx,
		bson.M{"favorite_events": eventID},
		bson.M{"$pull": bson.M{"favorite_events": eventID}})
	if err != nil {
		r.logger.Error("Failed to pull favorite from users", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return result.ModifiedCount, nil
}

func (r *userRepository) DeleteUnconfirmedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := r.coll.DeleteMany(ctx, bson.M{
		"is_active":                        false,
		"email_confirmation_token":         bson.M{"$ne": nil},
		"email_confirmation_token_created": bson.M{"$lt": cutoff},
	})
	if err != nil {
		r.logger.Error("Failed to delete unconfirmed users", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return result.DeletedCount, nil
}
