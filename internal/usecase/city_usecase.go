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
	"github.com/events-directory/internal/pkg/translit"
	"github.com/events-directory/internal/pkg/validator"
	"github.com/events-directory/internal/usecase/dto"
)

// CityUseCase управляет справочником городов. Город создается только через
// географический справочник: он даёт каноническое написание и переводы.
type CityUseCase struct {
	cityRepo     repository.CityRepository
	venueRepo    repository.VenueRepository
	geoDirectory repository.GeoDirectoryRepository
	cache        *listCache
	logger       *zap.Logger
}

func NewCityUseCase(
	cityRepo repository.CityRepository,
	venueRepo repository.VenueRepository,
	geoDirectory repository.GeoDirectoryRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *CityUseCase {
	return &CityUseCase{
		cityRepo:     cityRepo,
		venueRepo:    venueRepo,
		geoDirectory: geoDirectory,
		cache:        newListCache(cache, cacheTTL, logger),
		logger:       logger,
	}
}

// Create проверяет город по справочнику и сохраняет его со всеми языками
func (uc *CityUseCase) Create(ctx context.Context, req dto.CreateCityRequest) (*dto.CityFullResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	nameEn := strings.TrimSpace(req.NameEn)
	if _, err := uc.cityRepo.GetByName(ctx, nameEn); err == nil {
		return nil, errors.Conflict("City with name %q already exists", nameEn)
	} else if !errors.IsCode(err, errors.CodeNotFound) {
		return nil, err
	}

	names, err := uc.geoDirectory.LookupCity(ctx, nameEn)
	if err != nil {
		return nil, err
	}

	city := &domain.City{
		NameEn: names.NameEn,
		NameRu: names.NameRu,
		NameHe: names.NameHe,
		Slug:   slugs.ForName(names.NameEn),
	}
	// У небольших населённых пунктов в справочнике не всегда есть переводы
	if city.NameRu == "" {
		city.NameRu = translit.EnToRu(names.NameEn)
	}
	if city.NameHe == "" {
		city.NameHe = translit.EnToHe(names.NameEn)
	}

	if err := uc.cityRepo.Create(ctx, city); err != nil {
		return nil, err
	}
	uc.cache.invalidate(ctx, cacheCities)

	uc.logger.Info("City created",
		zap.String("slug", city.Slug),
		zap.String("name_en", city.NameEn))

	resp := toCityFullResponse(city)
	return &resp, nil
}

// List возвращает города на выбранном языке
func (uc *CityUseCase) List(ctx context.Context, lang string) ([]dto.CityResponse, error) {
	key := cacheCities + "list:" + lang

	var cached []dto.CityResponse
	if uc.cache.get(ctx, key, &cached) {
		return cached, nil
	}

	cities, err := uc.cityRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.CityResponse, len(cities))
	for i, city := range cities {
		result[i] = toCityResponse(city, lang)
	}

	uc.cache.set(ctx, key, result)
	return result, nil
}

// GetBySlug возвращает город со всеми языками
func (uc *CityUseCase) GetBySlug(ctx context.Context, slug string) (*dto.CityFullResponse, error) {
	city, err := uc.cityRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	resp := toCityFullResponse(city)
	return &resp, nil
}

// Delete удаляет город, если на него не ссылается ни одна площадка
func (uc *CityUseCase) Delete(ctx context.Context, slug string) error {
	city, err := uc.cityRepo.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}

	count, err := uc.venueRepo.CountByCity(ctx, city.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return errors.Conflict(
			"City %q cannot be deleted: %d venue(s) reference it", city.NameEn, count)
	}

	if err := uc.cityRepo.Delete(ctx, city.ID); err != nil {
		return err
	}
	uc.cache.invalidate(ctx, cacheCities)

	uc.logger.Info("City deleted", zap.String("slug", slug))
	return nil
}
