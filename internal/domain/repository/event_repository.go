package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/events-directory/internal/domain"
)

// EventFilter - параметры фильтрации списка событий
type EventFilter struct {
	VenueID     *primitive.ObjectID
	EventTypeID *primitive.ObjectID
	CityID      *primitive.ObjectID
	From        *time.Time
	To          *time.Time
	ActiveOnly  bool
}

// EventRepository определяет методы для работы с событиями
type EventRepository interface {
	// Create сохраняет новое событие
	Create(ctx context.Context, event *domain.Event) error

	// GetByID возвращает событие по ID
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Event, error)

	// GetBySlug возвращает событие по слагу
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)

	// List возвращает события по фильтру, отсортированные по дате начала
	List(ctx context.Context, filter EventFilter) ([]*domain.Event, error)

	// ListByVenue возвращает все события площадки
	ListByVenue(ctx context.Context, venueID primitive.ObjectID) ([]*domain.Event, error)

	// ListByIDs возвращает события по списку ID, пропуская отсутствующие
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Event, error)

	// Update сохраняет изменённое событие
	Update(ctx context.Context, event *domain.Event) error

	// Delete удаляет событие по ID
	Delete(ctx context.Context, id primitive.ObjectID) error

	// DeleteByVenue удаляет все события площадки, возвращает их число
	DeleteByVenue(ctx context.Context, venueID primitive.ObjectID) (int64, error)

	// CountByEventType возвращает число событий заданного типа
	CountByEventType(ctx context.Context, eventTypeID primitive.ObjectID) (int64, error)

	// DeactivatePast снимает флаг активности с событий, закончившихся до cutoff,
	// и возвращает число изменённых документов
	DeactivatePast(ctx context.Context, cutoff time.Time) (int64, error)
}
