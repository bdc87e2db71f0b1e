package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/domain/repository"
	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/usecase"
	"github.com/events-directory/internal/usecase/diff"
	"github.com/events-directory/internal/usecase/dto"
)

type venueFixture struct {
	venueRepo  *MockVenueRepository
	eventRepo  *MockEventRepository
	cityRepo   *MockCityRepository
	typeRepo   *MockVenueTypeRepository
	userRepo   *MockUserRepository
	translator *MockTranslator
	geocoder   *MockGeocoder
	assets     *MockAssetStore
	uc         *usecase.VenueUseCase
}

func newVenueFixture(t *testing.T) *venueFixture {
	t.Helper()
	logger, _ := zap.NewDevelopment()

	f := &venueFixture{
		venueRepo:  new(MockVenueRepository),
		eventRepo:  new(MockEventRepository),
		cityRepo:   new(MockCityRepository),
		typeRepo:   new(MockVenueTypeRepository),
		userRepo:   new(MockUserRepository),
		translator: new(MockTranslator),
		geocoder:   new(MockGeocoder),
		assets:     new(MockAssetStore),
	}
	f.uc = usecase.NewVenueUseCase(
		f.venueRepo, f.eventRepo, f.cityRepo, f.typeRepo, f.userRepo,
		usecase.NewAutoFiller(f.translator, logger),
		usecase.NewAddressResolver(f.translator, f.geocoder, logger),
		f.assets, nil, 5*time.Minute, logger,
	)
	return f
}

func existingVenue() *domain.Venue {
	return &domain.Venue{
		ID:            primitive.NewObjectID(),
		NameEn:        "Barby",
		NameRu:        "Барби",
		NameHe:        "בארבי",
		AddressEn:     "Kibbutz Galuyot 52, Tel Aviv",
		AddressRu:     "Кибуц Галуйот 52, Тель-Авив",
		AddressHe:     "קיבוץ גלויות 52, תל אביב",
		DescriptionEn: "Legendary live music club in south Tel Aviv.",
		DescriptionRu: "Легендарный клуб живой музыки на юге Тель-Авива.",
		DescriptionHe: "מועדון מוזיקה חיה אגדי בדרום תל אביב.",
		VenueTypeID:   primitive.NewObjectID(),
		CityID:        primitive.NewObjectID(),
		Location:      domain.NewGeoPoint(34.7722, 32.0504),
		IsActive:      true,
		ImagePath:     "/uploads/img/venues/barby/barby.png",
		Slug:          "barby",
	}
}

func (f *venueFixture) expectResponseLookups(venue *domain.Venue) {
	f.typeRepo.On("GetByID", mock.Anything, venue.VenueTypeID).
		Return(&domain.VenueType{ID: venue.VenueTypeID, NameEn: "club"}, nil)
	f.cityRepo.On("GetByID", mock.Anything, venue.CityID).
		Return(&domain.City{ID: venue.CityID, NameEn: "Tel Aviv"}, nil)
}

func TestVenueUseCase_UpdateNoChanges(t *testing.T) {
	f := newVenueFixture(t)
	ctx := context.Background()
	venue := existingVenue()

	f.venueRepo.On("GetBySlug", ctx, "barby").Return(venue, nil)
	f.expectResponseLookups(venue)

	sameName := venue.NameEn
	sameAddress := venue.AddressEn
	result, err := f.uc.Update(ctx, "barby", dto.UpdateVenueRequest{
		NameEn:    &sameName,
		AddressEn: &sameAddress,
	})
	require.NoError(t, err)

	assert.Equal(t, diff.NoChangesMessage, result.Message)
	// Nothing written, no external calls made
	f.venueRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.translator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
	f.assets.AssertNotCalled(t, "RenameFolder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVenueUseCase_UpdateAddressTriggersSingleGeocode(t *testing.T) {
	f := newVenueFixture(t)
	ctx := context.Background()
	venue := existingVenue()

	f.venueRepo.On("GetBySlug", ctx, "barby").Return(venue, nil)
	f.venueRepo.On("Update", ctx, venue).Return(nil)
	f.expectResponseLookups(venue)

	f.translator.On("Translate", ctx, "HaArba'a 12, Tel Aviv", "en", "he").
		Return("הארבעה 12, תל אביב", nil).Once()
	f.geocoder.On("Geocode", ctx, "הארבעה 12, תל אביב").
		Return(&repository.GeocodeResult{
			Label:    "הארבעה 12, תל אביב-יפו",
			Location: domain.NewGeoPoint(34.7800, 32.0700),
		}, nil).Once()
	f.translator.On("Translate", ctx, "הארבעה 12, תל אביב-יפו", "he", "ru").
		Return("ХаАрбаа 12, Тель-Авив-Яффо", nil).Once()

	newAddress := "HaArba'a 12, Tel Aviv"
	result, err := f.uc.Update(ctx, "barby", dto.UpdateVenueRequest{
		AddressEn: &newAddress,
	})
	require.NoError(t, err)

	assert.Contains(t, result.Message, "address_en")
	assert.Contains(t, result.Message, "location")
	assert.Equal(t, []float64{34.7800, 32.0700}, venue.Location.Coordinates)
	assert.Equal(t, "הארבעה 12, תל אביב-יפו", venue.AddressHe)

	// Geocode fired exactly once for one address change
	f.geocoder.AssertNumberOfCalls(t, "Geocode", 1)
	// Slug untouched: the name did not change
	assert.Equal(t, "barby", venue.Slug)
	f.assets.AssertNotCalled(t, "RenameFolder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestVenueUseCase_UpdateAddressReportsDerivedTranslations(t *testing.T) {
	f := newVenueFixture(t)
	ctx := context.Background()
	venue := existingVenue()

	f.venueRepo.On("GetBySlug", ctx, "barby").Return(venue, nil)
	f.venueRepo.On("Update", ctx, venue).Return(nil)
	f.expectResponseLookups(venue)

	f.translator.On("Translate", ctx, "HaArba'a 12, Tel Aviv", "en", "he").
		Return("הארבעה 12, תל אביב", nil).Once()
	f.geocoder.On("Geocode", ctx, "הארבעה 12, תל אביב").
		Return(&repository.GeocodeResult{
			Label:    "הארבעה 12, תל אביב-יפו",
			Location: domain.NewGeoPoint(34.7800, 32.0700),
		}, nil).Once()
	f.translator.On("Translate", ctx, "הארבעה 12, תל אביב-יפו", "he", "ru").
		Return("ХаАрбаа 12, Тель-Авив-Яффо", nil).Once()

	newAddress := "HaArba'a 12, Tel Aviv"
	result, err := f.uc.Update(ctx, "barby", dto.UpdateVenueRequest{
		AddressEn: &newAddress,
	})
	require.NoError(t, err)

	// Производные переводы адреса попадают в отчёт наравне с location
	assert.Contains(t, result.Message, "address_ru")
	assert.Contains(t, result.Message, "address_he")
	assert.Equal(t, "ХаАрбаа 12, Тель-Авив-Яффо", venue.AddressRu)
	assert.Equal(t, "הארבעה 12, תל אביב-יפו", venue.AddressHe)
}

func TestVenueUseCase_UpdateAddressKeepsClientTranslation(t *testing.T) {
	f := newVenueFixture(t)
	ctx := context.Background()
	venue := existingVenue()

	f.venueRepo.On("GetBySlug", ctx, "barby").Return(venue, nil)
	f.venueRepo.On("Update", ctx, venue).Return(nil)
	f.expectResponseLookups(venue)

	f.translator.On("Translate", ctx, "HaArba'a 12, Tel Aviv", "en", "he").
		Return("הארבעה 12, תל אביב", nil).Once()
	f.geocoder.On("Geocode", ctx, "הארבעה 12, תל אביב").
		Return(&repository.GeocodeResult{
			Label:    "הארבעה 12, תל אביב-יפו",
			Location: domain.NewGeoPoint(34.7800, 32.0700),
		}, nil).Once()
	f.translator.On("Translate", ctx, "הארבעה 12, תל אביב-יפו", "he", "ru").
		Return("ХаАрбаа 12, Тель-Авив-Яффо", nil).Once()

	newAddress := "HaArba'a 12, Tel Aviv"
	clientRu := "улица ХаАрбаа 12, Тель-Авив"
	result, err := f.uc.Update(ctx, "barby", dto.UpdateVenueRequest{
		AddressEn: &newAddress,
		AddressRu: &clientRu,
	})
	require.NoError(t, err)

	// Русский адрес из запроса не затирается производным от геокодера
	assert.Equal(t, clientRu, venue.AddressRu)
	assert.Contains(t, result.Message, "address_ru")
	// Иврит клиент не присылал - берётся метка геокодера
	assert.Equal(t, "הארבעה 12, תל אביב-יפו", venue.AddressHe)
}

func TestVenueUseCase_UpdateSameAddressSkipsGeocode(t *testing.T) {
	f := newVenueFixture(t)
	ctx := context.Background()
	venue := existingVenue()

	f.venueRepo.On("GetBySlug", ctx, "barby").Return(venue, nil)
	f.venueRepo.On("Update", ctx, venue).Return(nil)
	f.expectResponseLookups(venue)

	sameAddress := venue.AddressEn
	newDescription := "Renovated legendary live music club in south Tel Aviv."
	result, err := f.uc.Update(ctx, "barby", dto.UpdateVenueRequest{
		AddressEn:     &sameAddress,
		DescriptionEn: &newDescription,
	})
	require.NoError(t, err)

	assert.Contains(t, result.Message, "Updated fields: description_en.")
	assert.Contains(t, result.Message, "address_en")
	f.geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
}

func TestVenueUseCase_UpdateNameRenamesSlugAndAssets(t *testing.T) {
	f := newVenueFixture(t)
	ctx := context.Background()
	venue := existingVenue()

	f.venueRepo.On("GetBySlug", ctx, "barby").Return(venue, nil)
	f.venueRepo.On("Update", ctx, venue).Return(nil)
	f.assets.On("RenameFolder", ctx, "venues", "barby", "barby-club").
		Return("/uploads/img/venues/barby-club/barby-club.png", nil).Once()
	f.expectResponseLookups(venue)

	newName := "Barby Club"
	result, err := f.uc.Update(ctx, "barby", dto.UpdateVenueRequest{NameEn: &newName})
	require.NoError(t, err)

	assert.Equal(t, "barby-club", venue.Slug)
	assert.Equal(t, "/uploads/img/venues/barby-club/barby-club.png", venue.ImagePath)
	assert.Contains(t, result.Message, "name_en")
	assert.Contains(t, result.Message, "slug")
	f.assets.AssertNumberOfCalls(t, "RenameFolder", 1)
	f.geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
}

func TestVenueUseCase_DeactivateBlockedByActiveEvents(t *testing.T) {
	f := newVenueFixture(t)
	ctx := context.Background()
	venue := existingVenue()

	f.venueRepo.On("GetBySlug", ctx, "barby").Return(venue, nil)
	f.eventRepo.On("ListByVenue", ctx, venue.ID).Return([]*domain.Event{
		{ID: primitive.NewObjectID(), IsActive: true},
		{ID: primitive.NewObjectID(), IsActive: false},
	}, nil)

	inactive := false
	_, err := f.uc.Update(ctx, "barby", dto.UpdateVenueRequest{IsActive: &inactive})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeConflict))
	assert.True(t, venue.IsActive, "guard must fire before the flag is applied")
	f.venueRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestVenueUseCase_DeleteBlockedByActiveEvents(t *testing.T) {
	f := newVenueFixture(t)
	ctx := context.Background()
	venue := existingVenue()

	f.venueRepo.On("GetBySlug", ctx, "barby").Return(venue, nil)
	f.eventRepo.On("ListByVenue", ctx, venue.ID).Return([]*domain.Event{
		{ID: primitive.NewObjectID(), IsActive: true},
	}, nil)

	err := f.uc.Delete(ctx, "barby")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeConflict))
	f.venueRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	f.eventRepo.AssertNotCalled(t, "DeleteByVenue", mock.Anything, mock.Anything)
}

func TestVenueUseCase_DeleteCascades(t *testing.T) {
	f := newVenueFixture(t)
	ctx := context.Background()
	venue := existingVenue()
	event := &domain.Event{
		ID:        primitive.NewObjectID(),
		IsActive:  false,
		ImagePath: "/uploads/img/events/gig-2026-01-10-20-00/gig-2026-01-10-20-00.png",
		Slug:      "gig-2026-01-10-20-00",
	}

	f.venueRepo.On("GetBySlug", ctx, "barby").Return(venue, nil)
	f.eventRepo.On("ListByVenue", ctx, venue.ID).Return([]*domain.Event{event}, nil)
	f.eventRepo.On("DeleteByVenue", ctx, venue.ID).Return(int64(1), nil)
	f.userRepo.On("PullFavoriteFromAll", ctx, event.ID).Return(int64(3), nil)
	f.assets.On("DeleteFolder", ctx, "events", event.Slug).Return(nil)
	f.venueRepo.On("Delete", ctx, venue.ID).Return(nil)
	f.assets.On("DeleteFolder", ctx, "venues", venue.Slug).Return(nil)

	require.NoError(t, f.uc.Delete(ctx, "barby"))

	f.eventRepo.AssertExpectations(t)
	f.userRepo.AssertExpectations(t)
	f.assets.AssertExpectations(t)
	f.venueRepo.AssertExpectations(t)
}
