package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/events-directory/internal/domain"
)

// VenueTypeRepository определяет методы для работы с типами площадок
type VenueTypeRepository interface {
	// Create сохраняет новый тип площадки
	Create(ctx context.Context, vt *domain.VenueType) error

	// GetByID возвращает тип площадки по ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.VenueType, error)

	// GetBySlug возвращает тип площадки по слагу
	GetBySlug(ctx context.Context, slug string) (*domain.VenueType, error)

	// GetByName возвращает тип площадки по названию на любом из языков
	GetByName(ctx context.Context, name string) (*domain.VenueType, error)

	// List возвращает все типы площадок
	List(ctx context.Context) ([]*domain.VenueType, error)

	// Update сохраняет изменённый тип площадки
	Update(ctx context.Context, vt *domain.VenueType) error

	// Delete удаляет тип площадки по ID
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// EventTypeRepository определяет методы для работы с типами событий
type EventTypeRepository interface {
	// Create сохраняет новый тип события
	Create(ctx context.Context, et *domain.EventType) error

	// GetByID возвращает тип события по ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.EventType, error)

	// GetBySlug возвращает тип события по слагу
	GetBySlug(ctx context.Context, slug string) (*domain.EventType, error)

	// GetByName возвращает тип события по названию на любом из языков
	GetByName(ctx context.Context, name string) (*domain.EventType, error)

	// List возвращает все типы событий
	List(ctx context.Context) ([]*domain.EventType, error)

	// Update сохраняет изменённый тип события
	Update(ctx context.Context, et *domain.EventType) error

	// Delete удаляет тип события по ID
	Delete(ctx context.Context, id primitive.ObjectID) error
}
