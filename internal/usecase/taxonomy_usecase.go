package usecase

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/domain/repository"
	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/slugs"
	"github.com/events-directory/internal/pkg/validator"
	"github.com/events-directory/internal/usecase/diff"
	"github.com/events-directory/internal/usecase/dto"
)

// Типы площадок и событий хранятся в нижнем регистре
func normalizeTaxonomyNames(text *domain.LocalizedText) {
	text.En = strings.ToLower(strings.TrimSpace(text.En))
	text.Ru = strings.ToLower(strings.TrimSpace(text.Ru))
	text.He = strings.TrimSpace(text.He)
}

// VenueTypeUseCase управляет справочником типов площадок
type VenueTypeUseCase struct {
	typeRepo  repository.VenueTypeRepository
	venueRepo repository.VenueRepository
	autoFill  *AutoFiller
	cache     *listCache
	logger    *zap.Logger
}

func NewVenueTypeUseCase(
	typeRepo repository.VenueTypeRepository,
	venueRepo repository.VenueRepository,
	autoFill *AutoFiller,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *VenueTypeUseCase {
	return &VenueTypeUseCase{
		typeRepo:  typeRepo,
		venueRepo: venueRepo,
		autoFill:  autoFill,
		cache:     newListCache(cache, cacheTTL, logger),
		logger:    logger,
	}
}

// Create дозаполняет недостающие языки и сохраняет тип площадки
func (uc *VenueTypeUseCase) Create(ctx context.Context, req dto.TaxonomyRequest) (*dto.TaxonomyFullResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	names := domain.LocalizedText{En: req.NameEn, Ru: req.NameRu, He: req.NameHe}
	normalizeTaxonomyNames(&names)

	lookup := func(ctx context.Context, name string) error {
		_, err := uc.typeRepo.GetByName(ctx, name)
		return err
	}
	if err := EnsureUniqueName(ctx, lookup, names, "Venue type"); err != nil {
		return nil, err
	}

	if err := uc.autoFill.Fill(ctx, &names); err != nil {
		return nil, err
	}
	normalizeTaxonomyNames(&names)

	vt := &domain.VenueType{
		NameEn: names.En,
		NameRu: names.Ru,
		NameHe: names.He,
		Slug:   slugs.ForName(names.En),
	}
	if err := validateNameLengths(vt.NameEn, vt.NameRu, vt.NameHe, 2, 30); err != nil {
		return nil, err
	}

	if err := uc.typeRepo.Create(ctx, vt); err != nil {
		return nil, err
	}
	uc.cache.invalidate(ctx, cacheVenueTypes)

	uc.logger.Info("Venue type created", zap.String("slug", vt.Slug))
	resp := toVenueTypeFullResponse(vt)
	return &resp, nil
}

// List возвращает типы площадок на выбранном языке
func (uc *VenueTypeUseCase) List(ctx context.Context, lang string) ([]dto.TaxonomyResponse, error) {
	key := cacheVenueTypes + "list:" + lang

	var cached []dto.TaxonomyResponse
	if uc.cache.get(ctx, key, &cached) {
		return cached, nil
	}

	types, err := uc.typeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TaxonomyResponse, len(types))
	for i, vt := range types {
		result[i] = toVenueTypeResponse(vt, lang)
	}

	uc.cache.set(ctx, key, result)
	return result, nil
}

// GetBySlug возвращает тип площадки со всеми языками
func (uc *VenueTypeUseCase) GetBySlug(ctx context.Context, slug string) (*dto.TaxonomyFullResponse, error) {
	vt, err := uc.typeRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	resp := toVenueTypeFullResponse(vt)
	return &resp, nil
}

// Update - полное обновление типа площадки с отчётом об изменениях.
// При смене английского названия слаг пересчитывается.
func (uc *VenueTypeUseCase) Update(ctx context.Context, slug string, req dto.UpdateTaxonomyRequest) (*dto.UpdateResult[dto.TaxonomyFullResponse], error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	vt, err := uc.typeRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	names := domain.LocalizedText{En: req.NameEn, Ru: req.NameRu, He: req.NameHe}
	normalizeTaxonomyNames(&names)
	if err := validateNameLengths(names.En, names.Ru, names.He, 2, 30); err != nil {
		return nil, err
	}

	tr := diff.NewTracker()
	tr.Visit(diff.Field{
		Name:  "name_en",
		Equal: func() bool { return vt.NameEn == names.En },
		Apply: func() { vt.NameEn = names.En },
	})
	tr.Visit(diff.Field{
		Name:  "name_ru",
		Equal: func() bool { return vt.NameRu == names.Ru },
		Apply: func() { vt.NameRu = names.Ru },
	})
	tr.Visit(diff.Field{
		Name:  "name_he",
		Equal: func() bool { return vt.NameHe == names.He },
		Apply: func() { vt.NameHe = names.He },
	})

	if tr.Changed("name_en") {
		vt.Slug = slugs.ForName(vt.NameEn)
		tr.MarkUpdated("slug")
	}

	if tr.HasChanges() {
		if err := uc.typeRepo.Update(ctx, vt); err != nil {
			return nil, err
		}
		uc.cache.invalidate(ctx, cacheVenueTypes)
	}

	return &dto.UpdateResult[dto.TaxonomyFullResponse]{
		Message: tr.Message(),
		Data:    toVenueTypeFullResponse(vt),
	}, nil
}

// Delete удаляет тип, если на него не ссылается ни одна площадка
func (uc *VenueTypeUseCase) Delete(ctx context.Context, slug string) error {
	vt, err := uc.typeRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	count, err := uc.venueRepo.CountByVenueType(ctx, vt.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.Conflict(
			"Venue type %q cannot be deleted: %d venue(s) reference it", vt.NameEn, count)
	}

	if err := uc.typeRepo.Delete(ctx, vt.ID); err != nil {
		return err
	}
	uc.cache.invalidate(ctx, cacheVenueTypes)

	uc.logger.Info("Venue type deleted", zap.String("slug", slug))
	return nil
}

// EventTypeUseCase управляет справочником типов событий
type EventTypeUseCase struct {
	typeRepo  repository.EventTypeRepository
	eventRepo repository.EventRepository
	autoFill  *AutoFiller
	cache     *listCache
	logger    *zap.Logger
}

func NewEventTypeUseCase(
	typeRepo repository.EventTypeRepository,
	eventRepo repository.EventRepository,
	autoFill *AutoFiller,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *EventTypeUseCase {
	return &EventTypeUseCase{
		typeRepo:  typeRepo,
		eventRepo: eventRepo,
		autoFill:  autoFill,
		cache:     newListCache(cache, cacheTTL, logger),
		logger:    logger,
	}
}

// Create дозаполняет недостающие языки и сохраняет тип события
func (uc *EventTypeUseCase) Create(ctx context.Context, req dto.TaxonomyRequest) (*dto.TaxonomyFullResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	names := domain.LocalizedText{En: req.NameEn, Ru: req.NameRu, He: req.NameHe}
	normalizeTaxonomyNames(&names)

	lookup := func(ctx context.Context, name string) error {
		_, err := uc.typeRepo.GetByName(ctx, name)
		return err
	}
	if err := EnsureUniqueName(ctx, lookup, names, "Event type"); err != nil {
		return nil, err
	}

	if err := uc.autoFill.Fill(ctx, &names); err != nil {
		return nil, err
	}
	normalizeTaxonomyNames(&names)

	et := &domain.EventType{
		NameEn: names.En,
		NameRu: names.Ru,
		NameHe: names.He,
		Slug:   slugs.ForName(names.En),
	}
	if err := validateNameLengths(et.NameEn, et.NameRu, et.NameHe, 3, 20); err != nil {
		return nil, err
	}

	if err := uc.typeRepo.Create(ctx, et); err != nil {
		return nil, err
	}
	uc.cache.invalidate(ctx, cacheEventTypes)

	uc.logger.Info("Event type created", zap.String("slug", et.Slug))
	resp := toEventTypeFullResponse(et)
	return &resp, nil
}

// List возвращает типы событий на выбранном языке
func (uc *EventTypeUseCase) List(ctx context.Context, lang string) ([]dto.TaxonomyResponse, error) {
	key := cacheEventTypes + "list:" + lang

	var cached []dto.TaxonomyResponse
	if uc.cache.get(ctx, key, &cached) {
		return cached, nil
	}

	types, err := uc.typeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.TaxonomyResponse, len(types))
	for i, et := range types {
		result[i] = toEventTypeResponse(et, lang)
	}

	uc.cache.set(ctx, key, result)
	return result, nil
}

// GetBySlug возвращает тип события со всеми языками
func (uc *EventTypeUseCase) GetBySlug(ctx context.Context, slug string) (*dto.TaxonomyFullResponse, error) {
	et, err := uc.typeRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	resp := toEventTypeFullResponse(et)
	return &resp, nil
}

// Update - полное обновление типа события с отчётом об изменениях
func (uc *EventTypeUseCase) Update(ctx context.Context, slug string, req dto.UpdateTaxonomyRequest) (*dto.UpdateResult[dto.TaxonomyFullResponse], error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	et, err := uc.typeRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	names := domain.LocalizedText{En: req.NameEn, Ru: req.NameRu, He: req.NameHe}
	normalizeTaxonomyNames(&names)
	if err := validateNameLengths(names.En, names.Ru, names.He, 3, 20); err != nil {
		return nil, err
	}

	tr := diff.NewTracker()
	tr.Visit(diff.Field{
		Name:  "name_en",
		Equal: func() bool { return et.NameEn == names.En },
		Apply: func() { et.NameEn = names.En },
	})
	tr.Visit(diff.Field{
		Name:  "name_ru",
		Equal: func() bool { return et.NameRu == names.Ru },
		Apply: func() { et.NameRu = names.Ru },
	})
	tr.Visit(diff.Field{
		Name:  "name_he",
		Equal: func() bool { return et.NameHe == names.He },
		Apply: func() { et.NameHe = names.He },
	})

	if tr.Changed("name_en") {
		et.Slug = slugs.ForName(et.NameEn)
		tr.MarkUpdated("slug")
	}

	if tr.HasChanges() {
		if err := uc.typeRepo.Update(ctx, et); err != nil {
			return nil, err
		}
		uc.cache.invalidate(ctx, cacheEventTypes)
	}

	return &dto.UpdateResult[dto.TaxonomyFullResponse]{
		Message: tr.Message(),
		Data:    toEventTypeFullResponse(et),
	}, nil
}

// Delete удаляет тип, если на него не ссылается ни одно событие
func (uc *EventTypeUseCase) Delete(ctx context.Context, slug string) error {
	et, err := uc.typeRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	count, err := uc.eventRepo.CountByEventType(ctx, et.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.Conflict(
			"Event type %q cannot be deleted: %d event(s) reference it", et.NameEn, count)
	}

	if err := uc.typeRepo.Delete(ctx, et.ID); err != nil {
		return err
	}
	uc.cache.invalidate(ctx, cacheEventTypes)

	uc.logger.Info("Event type deleted", zap.String("slug", slug))
	return nil
}

// validateNameLengths проверяет длину названий всех языков после дозаполнения
func validateNameLengths(en, ru, he string, min, max int) error {
	for _, name := range []string{en, ru, he} {
		runes := len([]rune(name))
		if runes < min || runes > max {
			return errors.Validation(
				"Name %q must be between %d and %d characters", name, min, max)
		}
	}
	return nil
}
