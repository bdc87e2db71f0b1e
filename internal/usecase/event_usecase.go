package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/domain/repository"
	"github.com/events-directory/internal/pkg/dates"
	"github.com/events-directory/internal/pkg/slugs"
	"github.com/events-directory/internal/pkg/validator"
	"github.com/events-directory/internal/usecase/diff"
	"github.com/events-directory/internal/usecase/dto"
)

const assetKindEvents = "events"

// EventUseCase управляет событиями афиши. Слаг события включает дату
// начала и пересчитывается при смене названия или даты.
type EventUseCase struct {
	eventRepo repository.EventRepository
	venueRepo repository.VenueRepository
	typeRepo  repository.EventTypeRepository
	cityRepo  repository.CityRepository
	userRepo  repository.UserRepository
	autoFill  *AutoFiller
	assets    repository.AssetStoreRepository
	cache     *listCache
	loc       *time.Location
	logger    *zap.Logger
}

func NewEventUseCase(
	eventRepo repository.EventRepository,
	venueRepo repository.VenueRepository,
	typeRepo repository.EventTypeRepository,
	cityRepo repository.CityRepository,
	userRepo repository.UserRepository,
	autoFill *AutoFiller,
	assets repository.AssetStoreRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	loc *time.Location,
	logger *zap.Logger,
) *EventUseCase {
	return &EventUseCase{
		eventRepo: eventRepo,
		venueRepo: venueRepo,
		typeRepo:  typeRepo,
		cityRepo:  cityRepo,
		userRepo:  userRepo,
		autoFill:  autoFill,
		assets:    assets,
		cache:     newListCache(cache, cacheTTL, logger),
		loc:       loc,
		logger:    logger,
	}
}

// Create создает событие с дозаполнением языков и проверкой цены и дат
func (uc *EventUseCase) Create(ctx context.Context, req dto.CreateEventRequest) (*dto.EventResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	venue, err := uc.venueRepo.GetBySlug(ctx, req.Venue)
	if err != nil {
		return nil, err
	}
	eventType, err := uc.typeRepo.GetBySlug(ctx, req.EventType)
	if err != nil {
		return nil, err
	}

	startDate, err := dates.ParseLocal(req.StartDate, true, uc.loc)
	if err != nil {
		return nil, err
	}
	endDate, err := dates.ParseLocal(req.EndDate, false, uc.loc)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidatePrice(req.PriceType, req.PriceAmount); err != nil {
		return nil, err
	}

	name := domain.LocalizedText{En: req.NameEn, Ru: req.NameRu, He: req.NameHe}
	if err := uc.autoFill.Fill(ctx, &name); err != nil {
		return nil, err
	}
	description := domain.LocalizedText{En: req.DescriptionEn, Ru: req.DescriptionRu, He: req.DescriptionHe}
	if err := uc.autoFill.Fill(ctx, &description); err != nil {
		return nil, err
	}

	event := &domain.Event{
		NameEn:        name.En,
		NameRu:        name.Ru,
		NameHe:        name.He,
		DescriptionEn: description.En,
		DescriptionRu: description.Ru,
		DescriptionHe: description.He,
		VenueID:       venue.ID,
		EventTypeID:   eventType.ID,
		StartDate:     startDate,
		EndDate:       endDate,
		PriceType:     req.PriceType,
		PriceAmount:   req.PriceAmount,
		IsActive:      true,
		Slug:          slugs.ForEvent(name.En, dates.ToLocal(startDate, uc.loc)),
	}
	if err := event.ValidateDates(); err != nil {
		return nil, err
	}

	if len(req.Image) > 0 {
		path, err := uc.assets.SaveImage(ctx, assetKindEvents, event.Slug, req.Image)
		if err != nil {
			return nil, err
		}
		event.ImagePath = path
	} else {
		event.ImagePath = uc.assets.DefaultPath(assetKindEvents)
	}

	if err := uc.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}
	uc.cache.invalidate(ctx, cacheEvents)

	uc.logger.Info("Event created",
		zap.String("slug", event.Slug),
		zap.String("venue", venue.Slug))

	resp := toEventResponse(event, "en", venue.NameEn, eventType.NameEn, uc.loc)
	return &resp, nil
}

// Update - частичное обновление события. Смена name_en или start_date
// пересчитывает слаг и переносит папку картинок ровно один раз.
func (uc *EventUseCase) Update(ctx context.Context, slug string, req dto.UpdateEventRequest) (*dto.UpdateResult[dto.EventResponse], error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	event, err := uc.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	tr := diff.NewTracker()
	visitString := func(name string, current *string, incoming *string) {
		if incoming == nil {
			tr.Skip(name)
			return
		}
		tr.Visit(diff.Field{
			Name:  name,
			Equal: func() bool { return *current == *incoming },
			Apply: func() { *current = *incoming },
		})
	}

	visitString("name_en", &event.NameEn, req.NameEn)
	visitString("name_ru", &event.NameRu, req.NameRu)
	visitString("name_he", &event.NameHe, req.NameHe)
	visitString("description_en", &event.DescriptionEn, req.DescriptionEn)
	visitString("description_ru", &event.DescriptionRu, req.DescriptionRu)
	visitString("description_he", &event.DescriptionHe, req.DescriptionHe)

	if req.Venue != nil {
		venue, err := uc.venueRepo.GetBySlug(ctx, *req.Venue)
		if err != nil {
			return nil, err
		}
		tr.Visit(diff.Field{
			Name:  "venue",
			Equal: func() bool { return event.VenueID == venue.ID },
			Apply: func() { event.VenueID = venue.ID },
		})
	} else {
		tr.Skip("venue")
	}

	if req.EventType != nil {
		eventType, err := uc.typeRepo.GetBySlug(ctx, *req.EventType)
		if err != nil {
			return nil, err
		}
		tr.Visit(diff.Field{
			Name:  "event_type",
			Equal: func() bool { return event.EventTypeID == eventType.ID },
			Apply: func() { event.EventTypeID = eventType.ID },
		})
	} else {
		tr.Skip("event_type")
	}

	if req.StartDate != nil {
		startDate, err := dates.ParseLocal(*req.StartDate, true, uc.loc)
		if err != nil {
			return nil, err
		}
		tr.Visit(diff.Field{
			Name:  "start_date",
			Equal: func() bool { return event.StartDate.Equal(startDate) },
			Apply: func() { event.StartDate = startDate },
		})
	} else {
		tr.Skip("start_date")
	}

	if req.EndDate != nil {
		endDate, err := dates.ParseLocal(*req.EndDate, false, uc.loc)
		if err != nil {
			return nil, err
		}
		tr.Visit(diff.Field{
			Name:  "end_date",
			Equal: func() bool { return event.EndDate.Equal(endDate) },
			Apply: func() { event.EndDate = endDate },
		})
	} else {
		tr.Skip("end_date")
	}

	if req.PriceType != nil {
		tr.Visit(diff.Field{
			Name:  "price_type",
			Equal: func() bool { return event.PriceType == *req.PriceType },
			Apply: func() { event.PriceType = *req.PriceType },
		})
	} else {
		tr.Skip("price_type")
	}

	if req.PriceAmount != nil {
		tr.Visit(diff.Field{
			Name: "price_amount",
			Equal: func() bool {
				return event.PriceAmount != nil && *event.PriceAmount == *req.PriceAmount
			},
			Apply: func() { event.PriceAmount = req.PriceAmount },
		})
	} else if req.ClearPrice {
		tr.Visit(diff.Field{
			Name:  "price_amount",
			Equal: func() bool { return event.PriceAmount == nil },
			Apply: func() { event.PriceAmount = nil },
		})
	} else {
		tr.Skip("price_amount")
	}

	if req.IsActive != nil {
		tr.Visit(diff.Field{
			Name:  "is_active",
			Equal: func() bool { return event.IsActive == *req.IsActive },
			Apply: func() { event.IsActive = *req.IsActive },
		})
	} else {
		tr.Skip("is_active")
	}

	// Каскад: смена цены заново проверяет пару тип/сумма
	if tr.Changed("price_type") || tr.Changed("price_amount") {
		if err := domain.ValidatePrice(event.PriceType, event.PriceAmount); err != nil {
			return nil, err
		}
	}
	if tr.Changed("start_date") || tr.Changed("end_date") {
		if err := event.ValidateDates(); err != nil {
			return nil, err
		}
	}

	// Каскад: новое название или дата начала -> новый слаг -> перенос картинок
	if tr.Changed("name_en") || tr.Changed("start_date") {
		newSlug := slugs.ForEvent(event.NameEn, dates.ToLocal(event.StartDate, uc.loc))
		if newSlug != event.Slug {
			if event.HasCustomImage() {
				path, err := uc.assets.RenameFolder(ctx, assetKindEvents, event.Slug, newSlug)
				if err != nil {
					return nil, err
				}
				event.ImagePath = path
			}
			event.Slug = newSlug
			tr.MarkUpdated("slug")
		}
	}

	if len(req.Image) > 0 {
		path, err := uc.assets.SaveImage(ctx, assetKindEvents, event.Slug, req.Image)
		if err != nil {
			return nil, err
		}
		if path != event.ImagePath {
			event.ImagePath = path
			tr.MarkUpdated("image_path")
		}
	}

	if tr.HasChanges() {
		if err := uc.eventRepo.Update(ctx, event); err != nil {
			return nil, err
		}
		uc.cache.invalidate(ctx, cacheEvents)

		uc.logger.Info("Event updated",
			zap.String("slug", event.Slug),
			zap.Strings("updated_fields", tr.Updated()))
	}

	resp, err := uc.toResponse(ctx, event, "en")
	if err != nil {
		return nil, err
	}
	return &dto.UpdateResult[dto.EventResponse]{Message: tr.Message(), Data: *resp}, nil
}

// List возвращает события по фильтру на выбранном языке
func (uc *EventUseCase) List(ctx context.Context, filter dto.EventListFilter) ([]dto.EventResponse, error) {
	key := cacheEvents + "list:" + filter.Lang + ":" + filter.City + ":" + filter.Venue +
		":" + filter.EventType + ":" + filter.From + ":" + filter.To
	if filter.ActiveOnly {
		key += ":active"
	}
	if filter.SortDesc {
		key += ":desc"
	}

	var cached []dto.EventResponse
	if uc.cache.get(ctx, key, &cached) {
		return cached, nil
	}

	repoFilter := repository.EventFilter{ActiveOnly: filter.ActiveOnly}
	if filter.Venue != "" {
		venue, err := uc.venueRepo.GetBySlug(ctx, filter.Venue)
		if err != nil {
			return nil, err
		}
		repoFilter.VenueID = &venue.ID
	}
	if filter.City != "" {
		city, err := uc.cityRepo.GetBySlug(ctx, filter.City)
		if err != nil {
			return nil, err
		}
		repoFilter.CityID = &city.ID
	}
	if filter.EventType != "" {
		eventType, err := uc.typeRepo.GetBySlug(ctx, filter.EventType)
		if err != nil {
			return nil, err
		}
		repoFilter.EventTypeID = &eventType.ID
	}
	if filter.From != "" {
		from, err := dates.ParseLocal(filter.From, true, uc.loc)
		if err != nil {
			return nil, err
		}
		repoFilter.From = &from
	}
	if filter.To != "" {
		to, err := dates.ParseLocal(filter.To, false, uc.loc)
		if err != nil {
			return nil, err
		}
		repoFilter.To = &to
	}

	events, err := uc.eventRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}
	if filter.SortDesc {
		for i, j := 0, len(events)-1; i < j; i, j = i+1, j-1 {
			events[i], events[j] = events[j], events[i]
		}
	}

	venueNames, typeNames, err := uc.refNames(ctx, filter.Lang)
	if err != nil {
		return nil, err
	}

	result := make([]dto.EventResponse, len(events))
	for i, event := range events {
		result[i] = toEventResponse(event, filter.Lang,
			venueNames[event.VenueID], typeNames[event.EventTypeID], uc.loc)
	}

	uc.cache.set(ctx, key, result)
	return result, nil
}

// GetBySlug возвращает событие на выбранном языке
func (uc *EventUseCase) GetBySlug(ctx context.Context, slug, lang string) (*dto.EventResponse, error) {
	event, err := uc.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, event, lang)
}

// Delete удаляет событие, убирает его из избранного и стирает картинки
func (uc *EventUseCase) Delete(ctx context.Context, slug string) error {
	event, err := uc.eventRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if err := uc.eventRepo.Delete(ctx, event.ID); err != nil {
		return err
	}

	if _, err := uc.userRepo.PullFavoriteFromAll(ctx, event.ID); err != nil {
		uc.logger.Warn("Failed to pull deleted event from favorites",
			zap.String("slug", slug), zap.Error(err))
	}
	if event.HasCustomImage() {
		if err := uc.assets.DeleteFolder(ctx, assetKindEvents, event.Slug); err != nil {
			uc.logger.Warn("Failed to delete event images",
				zap.String("slug", slug), zap.Error(err))
		}
	}
	uc.cache.invalidate(ctx, cacheEvents)

	uc.logger.Info("Event deleted", zap.String("slug", slug))
	return nil
}

func (uc *EventUseCase) toResponse(ctx context.Context, event *domain.Event, lang string) (*dto.EventResponse, error) {
	venue, err := uc.venueRepo.GetByID(ctx, event.VenueID)
	if err != nil {
		return nil, err
	}
	eventType, err := uc.typeRepo.GetByID(ctx, event.EventTypeID)
	if err != nil {
		return nil, err
	}
	resp := toEventResponse(event, lang, venue.Name(lang), eventType.Name(lang), uc.loc)
	return &resp, nil
}

func (uc *EventUseCase) refNames(ctx context.Context, lang string) (map[primitive.ObjectID]string, map[primitive.ObjectID]string, error) {
	venues, err := uc.venueRepo.List(ctx, repository.VenueFilter{})
	if err != nil {
		return nil, nil, err
	}
	types, err := uc.typeRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	venueNames := make(map[primitive.ObjectID]string, len(venues))
	for _, venue := range venues {
		venueNames[venue.ID] = venue.Name(lang)
	}
	typeNames := make(map[primitive.ObjectID]string, len(types))
	for _, et := range types {
		typeNames[et.ID] = et.Name(lang)
	}
	return venueNames, typeNames, nil
}
