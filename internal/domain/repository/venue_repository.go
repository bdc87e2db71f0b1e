package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/events-directory/internal/domain"
)

// VenueFilter - параметры фильтрации списка площадок
type VenueFilter struct {
	CityID      *primitive.ObjectID
	VenueTypeID *primitive.ObjectID
	ActiveOnly  bool
}

// VenueRepository определяет методы для работы с площадками
type VenueRepository interface {
	// Create сохраняет новую площадку
	Create(ctx context.Context, venue *domain.Venue) error

	// GetByID возвращает площадку по ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Venue, error)

	// GetBySlug возвращает площадку по слагу
	GetBySlug(ctx context.Context, slug string) (*domain.Venue, error)

	// GetByName возвращает площадку по названию на любом из языков
	GetByName(ctx context.Context, name string) (*domain.Venue, error)

	// List возвращает площадки по фильтру
	List(ctx context.Context, filter VenueFilter) ([]*domain.Venue, error)

	// Update сохраняет изменённую площадку
	Update(ctx context.Context, venue *domain.Venue) error

	// Delete удаляет площадку по ID
	Delete(ctx context.Context, id primitive.ObjectID) error

	// CountByCity возвращает число площадок, привязанных к городу
	CountByCity(ctx context.Context, cityID primitive.ObjectID) (int64, error)

	// CountByVenueType возвращает число площадок заданного типа
	CountByVenueType(ctx context.Context, venueTypeID primitive.ObjectID) (int64, error)
}
