package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/domain/repository"
	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/slugs"
	"github.com/events-directory/internal/pkg/validator"
	"github.com/events-directory/internal/usecase/diff"
	"github.com/events-directory/internal/usecase/dto"
)

const assetKindVenues = "venues"

// VenueUseCase управляет площадками: дозаполнение языков, геокодирование
// адреса, каскады при обновлении и охранные проверки при удалении.
type VenueUseCase struct {
	venueRepo repository.VenueRepository
	eventRepo repository.EventRepository
	cityRepo  repository.CityRepository
	typeRepo  repository.VenueTypeRepository
	userRepo  repository.UserRepository
	autoFill  *AutoFiller
	address   *AddressResolver
	assets    repository.AssetStoreRepository
	cache     *listCache
	logger    *zap.Logger
}

func NewVenueUseCase(
	venueRepo repository.VenueRepository,
	eventRepo repository.EventRepository,
	cityRepo repository.CityRepository,
	typeRepo repository.VenueTypeRepository,
	userRepo repository.UserRepository,
	autoFill *AutoFiller,
	address *AddressResolver,
	assets repository.AssetStoreRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *VenueUseCase {
	return &VenueUseCase{
		venueRepo: venueRepo,
		eventRepo: eventRepo,
		cityRepo:  cityRepo,
		typeRepo:  typeRepo,
		userRepo:  userRepo,
		autoFill:  autoFill,
		address:   address,
		assets:    assets,
		cache:     newListCache(cache, cacheTTL, logger),
		logger:    logger,
	}
}

// Create создает площадку: уникальность имени, дозаполнение языков,
// геокодирование адреса, сохранение картинки. Любая ошибка до записи
// оставляет базу нетронутой.
func (uc *VenueUseCase) Create(ctx context.Context, req dto.CreateVenueRequest) (*dto.VenueResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	city, err := uc.cityRepo.GetBySlug(ctx, req.City)
	if err != nil {
		return nil, err
	}
	venueType, err := uc.typeRepo.GetBySlug(ctx, req.VenueType)
	if err != nil {
		return nil, err
	}

	name := domain.LocalizedText{En: req.NameEn, Ru: req.NameRu, He: req.NameHe}
	lookup := func(ctx context.Context, n string) error {
		_, err := uc.venueRepo.GetByName(ctx, n)
		return err
	}
	if err := EnsureUniqueName(ctx, lookup, name, "Venue"); err != nil {
		return nil, err
	}
	if err := uc.autoFill.Fill(ctx, &name); err != nil {
		return nil, err
	}

	description := domain.LocalizedText{En: req.DescriptionEn, Ru: req.DescriptionRu, He: req.DescriptionHe}
	if err := uc.autoFill.Fill(ctx, &description); err != nil {
		return nil, err
	}

	addr := domain.LocalizedText{En: req.AddressEn, Ru: req.AddressRu, He: req.AddressHe}
	location, err := uc.address.Resolve(ctx, &addr)
	if err != nil {
		return nil, err
	}

	venue := &domain.Venue{
		NameEn:        name.En,
		NameRu:        name.Ru,
		NameHe:        name.He,
		AddressEn:     addr.En,
		AddressRu:     addr.Ru,
		AddressHe:     addr.He,
		DescriptionEn: description.En,
		DescriptionRu: description.Ru,
		DescriptionHe: description.He,
		VenueTypeID:   venueType.ID,
		CityID:        city.ID,
		Location:      *location,
		Website:       req.Website,
		Phone:         req.Phone,
		Email:         req.Email,
		IsActive:      true,
		Slug:          slugs.ForName(name.En),
	}

	if len(req.Image) > 0 {
		path, err := uc.assets.SaveImage(ctx, assetKindVenues, venue.Slug, req.Image)
		if err != nil {
			return nil, err
		}
		venue.ImagePath = path
	} else {
		venue.ImagePath = uc.assets.DefaultPath(assetKindVenues)
	}

	if err := uc.venueRepo.Create(ctx, venue); err != nil {
		return nil, err
	}
	uc.cache.invalidate(ctx, cacheVenues)

	uc.logger.Info("Venue created",
		zap.String("slug", venue.Slug),
		zap.String("city", city.Slug))

	resp := toVenueResponse(venue, "en", venueType.NameEn, city.NameEn)
	return &resp, nil
}

// Update - частичное обновление площадки через diff-движок. Каскады
// срабатывают ровно один раз и только если их поле реально изменилось:
// смена name_en пересчитывает слаг и переносит папку картинок, смена
// address_en заново геокодирует адрес, деактивация проверяется охранным
// условием до записи.
func (uc *VenueUseCase) Update(ctx context.Context, slug string, req dto.UpdateVenueRequest) (*dto.UpdateResult[dto.VenueResponse], error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	venue, err := uc.venueRepo.GetBySlug(ctx, slug)
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

	visitString("name_en", &venue.NameEn, req.NameEn)
	visitString("name_ru", &venue.NameRu, req.NameRu)
	visitString("name_he", &venue.NameHe, req.NameHe)
	visitString("address_en", &venue.AddressEn, req.AddressEn)
	visitString("address_ru", &venue.AddressRu, req.AddressRu)
	visitString("address_he", &venue.AddressHe, req.AddressHe)
	visitString("description_en", &venue.DescriptionEn, req.DescriptionEn)
	visitString("description_ru", &venue.DescriptionRu, req.DescriptionRu)
	visitString("description_he", &venue.DescriptionHe, req.DescriptionHe)
	visitString("website", &venue.Website, req.Website)
	visitString("phone", &venue.Phone, req.Phone)
	visitString("email", &venue.Email, req.Email)

	if req.City != nil {
		city, err := uc.cityRepo.GetBySlug(ctx, *req.City)
		if err != nil {
			return nil, err
		}
		tr.Visit(diff.Field{
			Name:  "city",
			Equal: func() bool { return venue.CityID == city.ID },
			Apply: func() { venue.CityID = city.ID },
		})
	} else {
		tr.Skip("city")
	}

	if req.VenueType != nil {
		venueType, err := uc.typeRepo.GetBySlug(ctx, *req.VenueType)
		if err != nil {
			return nil, err
		}
		tr.Visit(diff.Field{
			Name:  "venue_type",
			Equal: func() bool { return venue.VenueTypeID == venueType.ID },
			Apply: func() { venue.VenueTypeID = venueType.ID },
		})
	} else {
		tr.Skip("venue_type")
	}

	if req.IsActive != nil {
		// Деактивация проверяется до любой записи
		if venue.IsActive && !*req.IsActive {
			if err := uc.ensureNoActiveEvents(ctx, venue); err != nil {
				return nil, err
			}
		}
		tr.Visit(diff.Field{
			Name:  "is_active",
			Equal: func() bool { return venue.IsActive == *req.IsActive },
			Apply: func() { venue.IsActive = *req.IsActive },
		})
	} else {
		tr.Skip("is_active")
	}

	// Каскад: новое английское название -> новый слаг -> перенос картинок
	if tr.Changed("name_en") {
		newSlug := slugs.ForName(venue.NameEn)
		if newSlug != venue.Slug {
			if err := uc.moveAssets(ctx, venue, newSlug); err != nil {
				return nil, err
			}
			venue.Slug = newSlug
			tr.MarkUpdated("slug")
		}
	}

	if len(req.Image) > 0 {
		path, err := uc.assets.SaveImage(ctx, assetKindVenues, venue.Slug, req.Image)
		if err != nil {
			return nil, err
		}
		if path != venue.ImagePath {
			venue.ImagePath = path
			tr.MarkUpdated("image_path")
		}
	}

	if !tr.HasChanges() {
		// Ни одной записи и ни одного внешнего вызова
		resp, err := uc.toResponse(ctx, venue, "en")
		if err != nil {
			return nil, err
		}
		return &dto.UpdateResult[dto.VenueResponse]{Message: tr.Message(), Data: *resp}, nil
	}

	if err := uc.venueRepo.Update(ctx, venue); err != nil {
		return nil, err
	}
	uc.cache.invalidate(ctx, cacheVenues)

	// Каскад: изменившийся английский адрес геокодируется заново.
	// Геокодирование идёт после записи полей - при его отказе изменение
	// адреса уже сохранено, координаты догоняют при повторной попытке.
	if tr.Changed("address_en") {
		addr := domain.LocalizedText{En: venue.AddressEn}
		location, err := uc.address.Resolve(ctx, &addr)
		if err != nil {
			return nil, err
		}
		// Переводы адреса, присланные в этом же запросе, имеют приоритет
		// над производными от геокодера
		if req.AddressRu == nil && venue.AddressRu != addr.Ru {
			venue.AddressRu = addr.Ru
			tr.MarkUpdated("address_ru")
		}
		if req.AddressHe == nil && venue.AddressHe != addr.He {
			venue.AddressHe = addr.He
			tr.MarkUpdated("address_he")
		}
		if !venue.Location.Equal(*location) {
			venue.Location = *location
			tr.MarkUpdated("location")
		}
		if err := uc.venueRepo.Update(ctx, venue); err != nil {
			return nil, err
		}
	}

	uc.logger.Info("Venue updated",
		zap.String("slug", venue.Slug),
		zap.Strings("updated_fields", tr.Updated()))

	resp, err := uc.toResponse(ctx, venue, "en")
	if err != nil {
		return nil, err
	}
	return &dto.UpdateResult[dto.VenueResponse]{Message: tr.Message(), Data: *resp}, nil
}

// List возвращает площадки по фильтру на выбранном языке
func (uc *VenueUseCase) List(ctx context.Context, filter dto.VenueListFilter) ([]dto.VenueResponse, error) {
	key := cacheVenues + "list:" + filter.Lang + ":" + filter.City + ":" + filter.VenueType
	if filter.ActiveOnly {
		key += ":active"
	}

	var cached []dto.VenueResponse
	if uc.cache.get(ctx, key, &cached) {
		return cached, nil
	}

	repoFilter := repository.VenueFilter{ActiveOnly: filter.ActiveOnly}
	if filter.City != "" {
		city, err := uc.cityRepo.GetBySlug(ctx, filter.City)
		if err != nil {
			return nil, err
		}
		repoFilter.CityID = &city.ID
	}
	if filter.VenueType != "" {
		venueType, err := uc.typeRepo.GetBySlug(ctx, filter.VenueType)
		if err != nil {
			return nil, err
		}
		repoFilter.VenueTypeID = &venueType.ID
	}

	venues, err := uc.venueRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	cityNames, typeNames, err := uc.refNames(ctx, filter.Lang)
	if err != nil {
		return nil, err
	}

	result := make([]dto.VenueResponse, len(venues))
	for i, venue := range venues {
		result[i] = toVenueResponse(venue, filter.Lang,
			typeNames[venue.VenueTypeID], cityNames[venue.CityID])
	}

	uc.cache.set(ctx, key, result)
	return result, nil
}

// GetBySlug возвращает площадку на выбранном языке
func (uc *VenueUseCase) GetBySlug(ctx context.Context, slug, lang string) (*dto.VenueResponse, error) {
	venue, err := uc.venueRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return uc.toResponse(ctx, venue, lang)
}

// Delete удаляет площадку вместе с её событиями и картинками.
// Блокируется, пока у площадки есть активные события.
func (uc *VenueUseCase) Delete(ctx context.Context, slug string) error {
	venue, err := uc.venueRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	if err := uc.ensureNoActiveEvents(ctx, venue); err != nil {
		return err
	}

	// Каскад: события площадки, их избранное и картинки
	events, err := uc.eventRepo.ListByVenue(ctx, venue.ID)
	if err != nil {
		return err
	}

	deleted, err := uc.eventRepo.DeleteByVenue(ctx, venue.ID)
	if err != nil {
		return err
	}

	for _, event := range events {
		if _, err := uc.userRepo.PullFavoriteFromAll(ctx, event.ID); err != nil {
			uc.logger.Warn("Failed to pull deleted event from favorites",
				zap.String("event_slug", event.Slug), zap.Error(err))
		}
		if event.HasCustomImage() {
			if err := uc.assets.DeleteFolder(ctx, assetKindEvents, event.Slug); err != nil {
				uc.logger.Warn("Failed to delete event images",
					zap.String("event_slug", event.Slug), zap.Error(err))
			}
		}
	}

	if err := uc.venueRepo.Delete(ctx, venue.ID); err != nil {
		return err
	}
	if venue.HasCustomImage() {
		if err := uc.assets.DeleteFolder(ctx, assetKindVenues, venue.Slug); err != nil {
			uc.logger.Warn("Failed to delete venue images",
				zap.String("slug", venue.Slug), zap.Error(err))
		}
	}
	uc.cache.invalidate(ctx, cacheVenues, cacheEvents)

	uc.logger.Info("Venue deleted",
		zap.String("slug", slug),
		zap.Int64("cascade_deleted_events", deleted))
	return nil
}

func (uc *VenueUseCase) ensureNoActiveEvents(ctx context.Context, venue *domain.Venue) error {
	events, err := uc.eventRepo.ListByVenue(ctx, venue.ID)
	if err != nil {
		return err
	}
	active := 0
	for _, event := range events {
		if event.IsActive {
			active++
		}
	}
	if active > 0 {
		return errors.Conflict(
			"Venue %q has %d active event(s); deactivate or delete them first",
			venue.NameEn, active)
	}
	return nil
}

func (uc *VenueUseCase) moveAssets(ctx context.Context, venue *domain.Venue, newSlug string) error {
	if !venue.HasCustomImage() {
		return nil
	}
	path, err := uc.assets.RenameFolder(ctx, assetKindVenues, venue.Slug, newSlug)
	if err != nil {
		return err
	}
	venue.ImagePath = path
	return nil
}

func (uc *VenueUseCase) toResponse(ctx context.Context, venue *domain.Venue, lang string) (*dto.VenueResponse, error) {
	venueType, err := uc.typeRepo.GetByID(ctx, venue.VenueTypeID)
	if err != nil {
		return nil, err
	}
	city, err := uc.cityRepo.GetByID(ctx, venue.CityID)
	if err != nil {
		return nil, err
	}
	resp := toVenueResponse(venue, lang, venueType.Name(lang), city.Name(lang))
	return &resp, nil
}

// refNames собирает карты локализованных названий справочников для списков
func (uc *VenueUseCase) refNames(ctx context.Context, lang string) (map[primitive.ObjectID]string, map[primitive.ObjectID]string, error) {
	cities, err := uc.cityRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}
	types, err := uc.typeRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	cityNames := make(map[primitive.ObjectID]string, len(cities))
	for _, city := range cities {
		cityNames[city.ID] = city.Name(lang)
	}
	typeNames := make(map[primitive.ObjectID]string, len(types))
	for _, vt := range types {
		typeNames[vt.ID] = vt.Name(lang)
	}
	return cityNames, typeNames, nil
}
