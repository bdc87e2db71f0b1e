package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/events-directory/internal/domain"
)

// UserRepository определяет методы для работы с пользователями
type UserRepository interface {
	// Create сохраняет нового пользователя
	Create(ctx context.Context, user *domain.User) error

	// GetByID возвращает пользователя по ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)

	// GetByEmail возвращает пользователя по почте
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByConfirmationToken возвращает пользователя по токену подтверждения почты
	GetByConfirmationToken(ctx context.Context, token string) (*domain.User, error)

	// GetByResetToken возвращает пользователя по токену сброса пароля
	GetByResetToken(ctx context.Context, token string) (*domain.User, error)

	// List возвращает всех пользователей
	List(ctx context.Context) ([]*domain.User, error)

	// Update сохраняет изменённого пользователя
	Update(ctx context.Context, user *domain.User) error

	// Delete удаляет пользователя по ID
	Delete(ctx context.Context, id primitive.ObjectID) error

	// AddFavorite добавляет событие в избранное без дублей
	AddFavorite(ctx context.Context, userID, eventID primitive.ObjectID) error

	// RemoveFavorite убирает событие из избранного пользователя
	RemoveFavorite(ctx context.Context, userID, eventID primitive.ObjectID) error

	// PullFavoriteFromAll убирает событие из избранного у всех пользователей,
	// возвращает число затронутых документов
	PullFavoriteFromAll(ctx context.Context, eventID primitive.ObjectID) (int64, error)

	// DeleteUnconfirmedBefore удаляет неактивные аккаунты с токеном подтверждения
	// старше cutoff и возвращает число удалённых
	DeleteUnconfirmedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
