package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/events-directory/internal/domain"
)

// CityRepository определяет методы для работы с городами
type CityRepository interface {
	// Create сохраняет новый город
	Create(ctx context.Context, city *domain.City) error

	// GetByID возвращает город по ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.City, error)

	// GetBySlug возвращает город по слагу
	GetBySlug(ctx context.Context, slug string) (*domain.City, error)

	// GetByName возвращает город по названию на любом из языков
	GetByName(ctx context.Context, name string) (*domain.City, error)

	// List возвращает все города, отсортированные по английскому названию
	List(ctx context.Context) ([]*domain.City, error)

	// Update сохраняет изменённый город
	Update(ctx context.Context, city *domain.City) error

	// Delete удаляет город по ID
	Delete(ctx context.Context, id primitive.ObjectID) error
}
