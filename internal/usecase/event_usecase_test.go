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
	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/usecase"
	"github.com/events-directory/internal/usecase/diff"
	"github.com/events-directory/internal/usecase/dto"
)

type eventFixture struct {
	eventRepo  *MockEventRepository
	venueRepo  *MockVenueRepository
	typeRepo   *MockEventTypeRepository
	cityRepo   *MockCityRepository
	userRepo   *MockUserRepository
	translator *MockTranslator
	assets     *MockAssetStore
	loc        *time.Location
	uc         *usecase.EventUseCase
}

func newEventFixture(t *testing.T) *eventFixture {
	t.Helper()
	logger, _ := zap.NewDevelopment()
	loc, err := time.LoadLocation("Asia/Jerusalem")
	require.NoError(t, err)

	f := &eventFixture{
		eventRepo:  new(MockEventRepository),
		venueRepo:  new(MockVenueRepository),
		typeRepo:   new(MockEventTypeRepository),
		cityRepo:   new(MockCityRepository),
		userRepo:   new(MockUserRepository),
		translator: new(MockTranslator),
		assets:     new(MockAssetStore),
		loc:        loc,
	}
	f.uc = usecase.NewEventUseCase(
		f.eventRepo, f.venueRepo, f.typeRepo, f.cityRepo, f.userRepo,
		usecase.NewAutoFiller(f.translator, logger),
		f.assets, nil, 5*time.Minute, loc, logger,
	)
	return f
}

func existingEvent(loc *time.Location) *domain.Event {
	start := time.Date(2026, 6, 1, 20, 0, 0, 0, loc).UTC()
	return &domain.Event{
		ID:            primitive.NewObjectID(),
		NameEn:        "Jazz Night",
		NameRu:        "Джазовый вечер",
		NameHe:        "ערב ג'אז",
		DescriptionEn: "An evening of modern jazz with a live quartet.",
		DescriptionRu: "Вечер современного джаза с живым квартетом.",
		DescriptionHe: "ערב של ג'אז מודרני עם רביעייה חיה.",
		VenueID:       primitive.NewObjectID(),
		EventTypeID:   primitive.NewObjectID(),
		StartDate:     start,
		EndDate:       start.Add(3 * time.Hour),
		PriceType:     domain.PriceFixed,
		PriceAmount:   intPtr(120),
		IsActive:      true,
		ImagePath:     "/uploads/img/events/jazz-night-2026-06-01-20-00/jazz-night-2026-06-01-20-00.png",
		Slug:          "jazz-night-2026-06-01-20-00",
	}
}

func intPtr(v int) *int { return &v }

func (f *eventFixture) expectResponseLookups(event *domain.Event) {
	f.venueRepo.On("GetByID", mock.Anything, event.VenueID).
		Return(&domain.Venue{ID: event.VenueID, NameEn: "Barby"}, nil)
	f.typeRepo.On("GetByID", mock.Anything, event.EventTypeID).
		Return(&domain.EventType{ID: event.EventTypeID, NameEn: "concert"}, nil)
}

func TestEventUseCase_CreatePriceValidation(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	venue := &domain.Venue{ID: primitive.NewObjectID(), NameEn: "Barby", Slug: "barby"}
	eventType := &domain.EventType{ID: primitive.NewObjectID(), NameEn: "concert", Slug: "concert"}
	f.venueRepo.On("GetBySlug", ctx, "barby").Return(venue, nil)
	f.typeRepo.On("GetBySlug", ctx, "concert").Return(eventType, nil)

	// fixed price without an amount never reaches the translator
	_, err := f.uc.Create(ctx, dto.CreateEventRequest{
		NameEn:        "Jazz Night",
		DescriptionEn: "An evening of modern jazz with a live quartet.",
		Venue:         "barby",
		EventType:     "concert",
		StartDate:     "2026-06-01 20:00",
		EndDate:       "2026-06-01 23:00",
		PriceType:     domain.PriceFixed,
	})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeValidation))
	f.translator.AssertNotCalled(t, "Translate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.eventRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestEventUseCase_CreateSlugIncludesLocalStart(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()

	venue := &domain.Venue{ID: primitive.NewObjectID(), NameEn: "Barby", Slug: "barby"}
	eventType := &domain.EventType{ID: primitive.NewObjectID(), NameEn: "concert", Slug: "concert"}
	f.venueRepo.On("GetBySlug", ctx, "barby").Return(venue, nil)
	f.typeRepo.On("GetBySlug", ctx, "concert").Return(eventType, nil)

	f.translator.On("Translate", ctx, "Jazz Night", "en", "he").Return("ערב ג'אז", nil)
	f.translator.On("Translate", ctx, "Jazz Night", "en", "ru").Return("Джазовый вечер", nil)
	f.translator.On("Translate", ctx, mock.Anything, "en", "he").Return("ערב של ג'אז מודרני.", nil)
	f.translator.On("Translate", ctx, mock.Anything, "en", "ru").Return("Вечер современного джаза.", nil)
	f.assets.On("DefaultPath", "events").Return("/uploads/img/events/default.png")

	var created *domain.Event
	f.eventRepo.On("Create", ctx, mock.AnythingOfType("*domain.Event")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.Event)
		}).Return(nil)

	resp, err := f.uc.Create(ctx, dto.CreateEventRequest{
		NameEn:        "Jazz Night",
		DescriptionEn: "An evening of modern jazz with a live quartet.",
		Venue:         "barby",
		EventType:     "concert",
		StartDate:     "2026-06-01 20:00",
		EndDate:       "2026-06-01 23:00",
		PriceType:     domain.PriceFree,
	})
	require.NoError(t, err)
	require.NotNil(t, created)

	// Slug carries the local start date, storage is UTC
	assert.Equal(t, "jazz-night-2026-06-01-20-00", created.Slug)
	assert.Equal(t, time.Date(2026, 6, 1, 17, 0, 0, 0, time.UTC), created.StartDate)
	assert.True(t, created.IsActive)
	assert.True(t, domain.LocalizedText{
		En: created.NameEn, Ru: created.NameRu, He: created.NameHe,
	}.IsComplete())
	assert.Equal(t, "2026-06-01 20:00", resp.StartDate)
}

func TestEventUseCase_UpdateStartDateRecomputesSlug(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()
	event := existingEvent(f.loc)

	f.eventRepo.On("GetBySlug", ctx, event.Slug).Return(event, nil)
	f.eventRepo.On("Update", ctx, event).Return(nil)
	f.assets.On("RenameFolder", ctx, "events",
		"jazz-night-2026-06-01-20-00", "jazz-night-2026-06-02-21-00").
		Return("/uploads/img/events/jazz-night-2026-06-02-21-00/jazz-night-2026-06-02-21-00.png", nil).Once()
	f.expectResponseLookups(event)

	newStart := "2026-06-02 21:00"
	newEnd := "2026-06-03 00:30"
	result, err := f.uc.Update(ctx, "jazz-night-2026-06-01-20-00", dto.UpdateEventRequest{
		StartDate: &newStart,
		EndDate:   &newEnd,
	})
	require.NoError(t, err)

	assert.Equal(t, "jazz-night-2026-06-02-21-00", event.Slug)
	assert.Contains(t, result.Message, "start_date")
	assert.Contains(t, result.Message, "slug")
	f.assets.AssertNumberOfCalls(t, "RenameFolder", 1)
}

func TestEventUseCase_UpdateNoChanges(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()
	event := existingEvent(f.loc)

	f.eventRepo.On("GetBySlug", ctx, event.Slug).Return(event, nil)
	f.expectResponseLookups(event)

	sameName := event.NameEn
	samePrice := *event.PriceAmount
	result, err := f.uc.Update(ctx, event.Slug, dto.UpdateEventRequest{
		NameEn:      &sameName,
		PriceAmount: &samePrice,
	})
	require.NoError(t, err)

	assert.Equal(t, diff.NoChangesMessage, result.Message)
	f.eventRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	f.assets.AssertNotCalled(t, "RenameFolder", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestEventUseCase_UpdatePriceTypeRevalidatesAmount(t *testing.T) {
	ctx := context.Background()
	free := domain.PriceFree

	t.Run("free cannot keep a price amount", func(t *testing.T) {
		f := newEventFixture(t)
		event := existingEvent(f.loc)
		f.eventRepo.On("GetBySlug", ctx, event.Slug).Return(event, nil)

		_, err := f.uc.Update(ctx, event.Slug, dto.UpdateEventRequest{PriceType: &free})
		require.Error(t, err)
		assert.True(t, errors.IsCode(err, errors.CodeValidation))
		f.eventRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("free together with a cleared amount", func(t *testing.T) {
		f := newEventFixture(t)
		event := existingEvent(f.loc)
		f.eventRepo.On("GetBySlug", ctx, event.Slug).Return(event, nil)
		f.eventRepo.On("Update", ctx, event).Return(nil)
		f.expectResponseLookups(event)

		result, err := f.uc.Update(ctx, event.Slug, dto.UpdateEventRequest{
			PriceType:  &free,
			ClearPrice: true,
		})
		require.NoError(t, err)
		assert.Contains(t, result.Message, "Updated fields: price_type, price_amount.")
		assert.Nil(t, event.PriceAmount)
	})
}

func TestEventUseCase_DeletePullsFavorites(t *testing.T) {
	f := newEventFixture(t)
	ctx := context.Background()
	event := existingEvent(f.loc)

	f.eventRepo.On("GetBySlug", ctx, event.Slug).Return(event, nil)
	f.eventRepo.On("Delete", ctx, event.ID).Return(nil)
	f.userRepo.On("PullFavoriteFromAll", ctx, event.ID).Return(int64(2), nil)
	f.assets.On("DeleteFolder", ctx, "events", event.Slug).Return(nil)

	require.NoError(t, f.uc.Delete(ctx, event.Slug))

	f.userRepo.AssertExpectations(t)
	f.assets.AssertExpectations(t)
}
