package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/domain/repository"
	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/langs"
	"github.com/events-directory/internal/pkg/validator"
	"github.com/events-directory/internal/usecase/diff"
	"github.com/events-directory/internal/usecase/dto"
)

// ProfileUseCase - кабинет пользователя: профиль и избранные события
type ProfileUseCase struct {
	userRepo  repository.UserRepository
	eventRepo repository.EventRepository
	venueRepo repository.VenueRepository
	typeRepo  repository.EventTypeRepository
	loc       *time.Location
	logger    *zap.Logger
}

func NewProfileUseCase(
	userRepo repository.UserRepository,
	eventRepo repository.EventRepository,
	venueRepo repository.VenueRepository,
	typeRepo repository.EventTypeRepository,
	loc *time.Location,
	logger *zap.Logger,
) *ProfileUseCase {
	return &ProfileUseCase{
		userRepo:  userRepo,
		eventRepo: eventRepo,
		venueRepo: venueRepo,
		typeRepo:  typeRepo,
		loc:       loc,
		logger:    logger,
	}
}

// Get возвращает профиль текущего пользователя
func (uc *ProfileUseCase) Get(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Update - обновление собственного профиля. Роль и активность
// через этот путь не меняются.
func (uc *ProfileUseCase) Update(ctx context.Context, userID string, req dto.UpdateProfileRequest) (*dto.UpdateResult[dto.UserResponse], error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	tr := diff.NewTracker()

	if req.Email != nil {
		tr.Visit(diff.Field{
			Name:  "email",
			Equal: func() bool { return user.Email == *req.Email },
			Apply: func() { user.Email = *req.Email },
		})
	} else {
		tr.Skip("email")
	}

	if req.Password != nil {
		hash, err := domain.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		tr.Visit(diff.Field{
			Name:  "password",
			Equal: func() bool { return user.VerifyPassword(*req.Password) },
			Apply: func() { user.Password = hash },
		})
	} else {
		tr.Skip("password")
	}

	if req.DefaultLang != nil {
		lang := langs.Resolve(*req.DefaultLang)
		if lang == "" {
			return nil, errors.ErrUnsupportedLanguage
		}
		tr.Visit(diff.Field{
			Name:  "default_lang",
			Equal: func() bool { return user.DefaultLang == lang },
			Apply: func() { user.DefaultLang = lang },
		})
	} else {
		tr.Skip("default_lang")
	}

	if tr.HasChanges() {
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, err
		}
	}

	return &dto.UpdateResult[dto.UserResponse]{
		Message: tr.Message(),
		Data:    toUserResponse(user),
	}, nil
}

// AddFavorite добавляет событие в избранное по его слагу
func (uc *ProfileUseCase) AddFavorite(ctx context.Context, userID, eventSlug string) error {
	user, err := uc.load(ctx, userID)
	if err != nil {
		return err
	}
	event, err := uc.eventRepo.GetBySlug(ctx, eventSlug)
	if err != nil {
		return err
	}
	return uc.userRepo.AddFavorite(ctx, user.ID, event.ID)
}

// RemoveFavorite убирает событие из избранного
func (uc *ProfileUseCase) RemoveFavorite(ctx context.Context, userID, eventSlug string) error {
	user, err := uc.load(ctx, userID)
	if err != nil {
		return err
	}
	event, err := uc.eventRepo.GetBySlug(ctx, eventSlug)
	if err != nil {
		return err
	}
	return uc.userRepo.RemoveFavorite(ctx, user.ID, event.ID)
}

// ListFavorites возвращает избранные события пользователя.
// События, удалённые после добавления, просто пропускаются.
func (uc *ProfileUseCase) ListFavorites(ctx context.Context, userID, lang string) ([]dto.EventResponse, error) {
	user, err := uc.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	events, err := uc.eventRepo.ListByIDs(ctx, user.FavoriteEvents)
	if err != nil {
		return nil, err
	}

	result := make([]dto.EventResponse, len(events))
	for i, event := range events {
		venueName, typeName := "", ""
		if venue, err := uc.venueRepo.GetByID(ctx, event.VenueID); err == nil {
			venueName = venue.Name(lang)
		}
		if et, err := uc.typeRepo.GetByID(ctx, event.EventTypeID); err == nil {
			typeName = et.Name(lang)
		}
		result[i] = toEventResponse(event, lang, venueName, typeName, uc.loc)
	}
	return result, nil
}

func (uc *ProfileUseCase) load(ctx context.Context, userID string) (*domain.User, error) {
	oid, err := parseObjectID(userID)
	if err != nil {
		return nil, err
	}
	return uc.userRepo.GetByID(ctx, oid)
}
