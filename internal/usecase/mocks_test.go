package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/domain/repository"
)

// MockCityRepository is a mock of CityRepository
type MockCityRepository struct {
	mock.Mock
}

func (m *MockCityRepository) Create(ctx context.Context, city *domain.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockCityRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.City, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockCityRepository) GetBySlug(ctx context.Context, slug string) (*domain.City, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockCityRepository) GetByName(ctx context.Context, name string) (*domain.City, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.City), args.Error(1)
}

func (m *MockCityRepository) List(ctx context.Context) ([]*domain.City, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.City), args.Error(1)
}

func (m *MockCityRepository) Update(ctx context.Context, city *domain.City) error {
	args := m.Called(ctx, city)
	return args.Error(0)
}

func (m *MockCityRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVenueTypeRepository is a mock of VenueTypeRepository
type MockVenueTypeRepository struct {
	mock.Mock
}

func (m *MockVenueTypeRepository) Create(ctx context.Context, vt *domain.VenueType) error {
	args := m.Called(ctx, vt)
	return args.Error(0)
}

func (m *MockVenueTypeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.VenueType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VenueType), args.Error(1)
}

func (m *MockVenueTypeRepository) GetBySlug(ctx context.Context, slug string) (*domain.VenueType, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VenueType), args.Error(1)
}

func (m *MockVenueTypeRepository) GetByName(ctx context.Context, name string) (*domain.VenueType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VenueType), args.Error(1)
}

func (m *MockVenueTypeRepository) List(ctx context.Context) ([]*domain.VenueType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.VenueType), args.Error(1)
}

func (m *MockVenueTypeRepository) Update(ctx context.Context, vt *domain.VenueType) error {
	args := m.Called(ctx, vt)
	return args.Error(0)
}

func (m *MockVenueTypeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockEventTypeRepository is a mock of EventTypeRepository
type MockEventTypeRepository struct {
	mock.Mock
}

func (m *MockEventTypeRepository) Create(ctx context.Context, et *domain.EventType) error {
	args := m.Called(ctx, et)
	return args.Error(0)
}

func (m *MockEventTypeRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.EventType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventType), args.Error(1)
}

func (m *MockEventTypeRepository) GetBySlug(ctx context.Context, slug string) (*domain.EventType, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventType), args.Error(1)
}

func (m *MockEventTypeRepository) GetByName(ctx context.Context, name string) (*domain.EventType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventType), args.Error(1)
}

func (m *MockEventTypeRepository) List(ctx context.Context) ([]*domain.EventType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.EventType), args.Error(1)
}

func (m *MockEventTypeRepository) Update(ctx context.Context, et *domain.EventType) error {
	args := m.Called(ctx, et)
	return args.Error(0)
}

func (m *MockEventTypeRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockVenueRepository is a mock of VenueRepository
type MockVenueRepository struct {
	mock.Mock
}

func (m *MockVenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Venue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) GetBySlug(ctx context.Context, slug string) (*domain.Venue, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) GetByName(ctx context.Context, name string) (*domain.Venue, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) List(ctx context.Context, filter repository.VenueFilter) ([]*domain.Venue, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Venue), args.Error(1)
}

func (m *MockVenueRepository) Update(ctx context.Context, venue *domain.Venue) error {
	args := m.Called(ctx, venue)
	return args.Error(0)
}

func (m *MockVenueRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVenueRepository) CountByCity(ctx context.Context, cityID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, cityID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVenueRepository) CountByVenueType(ctx context.Context, venueTypeID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, venueTypeID)
	return args.Get(0).(int64), args.Error(1)
}

// MockEventRepository is a mock of EventRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Event, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context, filter repository.EventFilter) ([]*domain.Event, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListByVenue(ctx context.Context, venueID primitive.ObjectID) ([]*domain.Event, error) {
	args := m.Called(ctx, venueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Event), args.Error(1)
}

func (m *MockEventRepository) ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]*domain.Event, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Event), args.Error(1)
}

func (m *MockEventRepository) Update(ctx context.Context, event *domain.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventRepository) DeleteByVenue(ctx context.Context, venueID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, venueID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepository) CountByEventType(ctx context.Context, eventTypeID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, eventTypeID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEventRepository) DeactivatePast(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepository is a mock of UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByConfirmationToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByResetToken(ctx context.Context, token string) (*domain.User, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) AddFavorite(ctx context.Context, userID, eventID primitive.ObjectID) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

func (m *MockUserRepository) RemoveFavorite(ctx context.Context, userID, eventID primitive.ObjectID) error {
	args := m.Called(ctx, userID, eventID)
	return args.Error(0)
}

func (m *MockUserRepository) PullFavoriteFromAll(ctx context.Context, eventID primitive.ObjectID) (int64, error) {
	args := m.Called(ctx, eventID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) DeleteUnconfirmedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockTranslator is a mock of TranslatorRepository
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	args := m.Called(ctx, text, sourceLang, targetLang)
	return args.String(0), args.Error(1)
}

// MockGeocoder is a mock of GeocoderRepository
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, query string) (*repository.GeocodeResult, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.GeocodeResult), args.Error(1)
}

// MockGeoDirectory is a mock of GeoDirectoryRepository
type MockGeoDirectory struct {
	mock.Mock
}

func (m *MockGeoDirectory) LookupCity(ctx context.Context, nameEn string) (*repository.CityNames, error) {
	args := m.Called(ctx, nameEn)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.CityNames), args.Error(1)
}

// MockAssetStore is a mock of AssetStoreRepository
type MockAssetStore struct {
	mock.Mock
}

func (m *MockAssetStore) SaveImage(ctx context.Context, kind, slug string, data []byte) (string, error) {
	args := m.Called(ctx, kind, slug, data)
	return args.String(0), args.Error(1)
}

func (m *MockAssetStore) RenameFolder(ctx context.Context, kind, oldSlug, newSlug string) (string, error) {
	args := m.Called(ctx, kind, oldSlug, newSlug)
	return args.String(0), args.Error(1)
}

func (m *MockAssetStore) DeleteFolder(ctx context.Context, kind, slug string) error {
	args := m.Called(ctx, kind, slug)
	return args.Error(0)
}

func (m *MockAssetStore) DefaultPath(kind string) string {
	args := m.Called(kind)
	return args.String(0)
}
