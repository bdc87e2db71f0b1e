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
	"github.com/events-directory/internal/usecase/dto"
)

type cityFixture struct {
	cityRepo  *MockCityRepository
	venueRepo *MockVenueRepository
	geo       *MockGeoDirectory
	uc        *usecase.CityUseCase
}

func newCityFixture() *cityFixture {
	logger, _ := zap.NewDevelopment()
	f := &cityFixture{
		cityRepo:  new(MockCityRepository),
		venueRepo: new(MockVenueRepository),
		geo:       new(MockGeoDirectory),
	}
	f.uc = usecase.NewCityUseCase(
		f.cityRepo, f.venueRepo, f.geo, nil, 5*time.Minute, logger,
	)
	return f
}

func TestCityUseCase_CreateCanonicalizesThroughDirectory(t *testing.T) {
	f := newCityFixture()
	ctx := context.Background()

	f.cityRepo.On("GetByName", ctx, "tel aviv").Return(nil, errors.NotFound("city not found"))
	f.geo.On("LookupCity", ctx, "tel aviv").Return(&repository.CityNames{
		NameEn: "Tel Aviv",
		NameRu: "Тель-Авив",
		NameHe: "תל אביב",
	}, nil)

	var created *domain.City
	f.cityRepo.On("Create", ctx, mock.AnythingOfType("*domain.City")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.City)
		}).Return(nil)

	resp, err := f.uc.Create(ctx, dto.CreateCityRequest{NameEn: "tel aviv"})
	require.NoError(t, err)
	require.NotNil(t, created)

	// сохраняется каноническое написание из справочника, не ввод пользователя
	assert.Equal(t, "Tel Aviv", created.NameEn)
	assert.Equal(t, "Тель-Авив", created.NameRu)
	assert.Equal(t, "תל אביב", created.NameHe)
	assert.Equal(t, "tel-aviv", created.Slug)
	assert.Equal(t, "Tel Aviv", resp.NameEn)
}

func TestCityUseCase_CreateFallsBackToTransliteration(t *testing.T) {
	f := newCityFixture()
	ctx := context.Background()

	// у небольшого города в справочнике нет переводов
	f.cityRepo.On("GetByName", ctx, "Metula").Return(nil, errors.NotFound("city not found"))
	f.geo.On("LookupCity", ctx, "Metula").Return(&repository.CityNames{NameEn: "Metula"}, nil)

	var created *domain.City
	f.cityRepo.On("Create", ctx, mock.AnythingOfType("*domain.City")).
		Run(func(args mock.Arguments) {
			created = args.Get(1).(*domain.City)
		}).Return(nil)

	_, err := f.uc.Create(ctx, dto.CreateCityRequest{NameEn: "Metula"})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, "Метула", created.NameRu)
	assert.Equal(t, "מאתולא", created.NameHe)
}

func TestCityUseCase_CreateUnknownCity(t *testing.T) {
	f := newCityFixture()
	ctx := context.Background()

	f.cityRepo.On("GetByName", ctx, "Atlantis").Return(nil, errors.NotFound("city not found"))
	f.geo.On("LookupCity", ctx, "Atlantis").
		Return(nil, errors.NotFound("City %q not found. Did you mean %q?", "Atlantis", "Atlit"))

	_, err := f.uc.Create(ctx, dto.CreateCityRequest{NameEn: "Atlantis"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
	assert.Contains(t, err.Error(), "Did you mean")
	f.cityRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCityUseCase_CreateDuplicate(t *testing.T) {
	f := newCityFixture()
	ctx := context.Background()

	existing := &domain.City{ID: primitive.NewObjectID(), NameEn: "Tel Aviv", Slug: "tel-aviv"}
	f.cityRepo.On("GetByName", ctx, "Tel Aviv").Return(existing, nil)

	_, err := f.uc.Create(ctx, dto.CreateCityRequest{NameEn: "Tel Aviv"})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeConflict))
	f.geo.AssertNotCalled(t, "LookupCity", mock.Anything, mock.Anything)
}

func TestCityUseCase_DeleteBlockedByVenues(t *testing.T) {
	f := newCityFixture()
	ctx := context.Background()

	city := &domain.City{ID: primitive.NewObjectID(), NameEn: "Tel Aviv", Slug: "tel-aviv"}
	f.cityRepo.On("GetBySlug", ctx, "tel-aviv").Return(city, nil)
	f.venueRepo.On("CountByCity", ctx, city.ID).Return(int64(7), nil)

	err := f.uc.Delete(ctx, "tel-aviv")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeConflict))
	assert.Contains(t, err.Error(), "7 venue(s)")
	f.cityRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestCityUseCase_DeleteUnreferenced(t *testing.T) {
	f := newCityFixture()
	ctx := context.Background()

	city := &domain.City{ID: primitive.NewObjectID(), NameEn: "Haifa", Slug: "haifa"}
	f.cityRepo.On("GetBySlug", ctx, "haifa").Return(city, nil)
	f.venueRepo.On("CountByCity", ctx, city.ID).Return(int64(0), nil)
	f.cityRepo.On("Delete", ctx, city.ID).Return(nil)

	require.NoError(t, f.uc.Delete(ctx, "haifa"))
	f.cityRepo.AssertExpectations(t)
}
