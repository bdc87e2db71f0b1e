package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/domain/repository"
	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/langs"
	"github.com/events-directory/internal/pkg/validator"
	"github.com/events-directory/internal/usecase/diff"
	"github.com/events-directory/internal/usecase/dto"
)

// UserUseCase - административное управление пользователями
type UserUseCase struct {
	userRepo repository.UserRepository
	logger   *zap.Logger
}

func NewUserUseCase(userRepo repository.UserRepository, logger *zap.Logger) *UserUseCase {
	return &UserUseCase{userRepo: userRepo, logger: logger}
}

// Create заводит пользователя от имени администратора, без подтверждения почты
func (uc *UserUseCase) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}
	if !domain.IsValidRole(req.Role) {
		return nil, errors.Validation("Unknown role %q", req.Role)
	}

	hash, err := domain.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	lang := langs.Resolve(req.DefaultLang)
	if lang == "" {
		return nil, errors.ErrUnsupportedLanguage
	}

	user := &domain.User{
		Email:          req.Email,
		Password:       hash,
		Role:           req.Role,
		IsActive:       req.IsActive,
		DefaultLang:    lang,
		FavoriteEvents: []primitive.ObjectID{},
		CreatedAt:      time.Now().UTC(),
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("User created by admin",
		zap.String("email", user.Email),
		zap.String("role", user.Role))
	resp := toUserResponse(user)
	return &resp, nil
}

// List возвращает всех пользователей, опционально по роли и активности
func (uc *UserUseCase) List(ctx context.Context, role string, isActive *bool) ([]dto.UserResponse, error) {
	users, err := uc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]dto.UserResponse, 0, len(users))
	for _, user := range users {
		if role != "" && user.Role != role {
			continue
		}
		if isActive != nil && user.IsActive != *isActive {
			continue
		}
		result = append(result, toUserResponse(user))
	}
	return result, nil
}

// GetByID возвращает пользователя по ID
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*dto.UserResponse, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	resp := toUserResponse(user)
	return &resp, nil
}

// Update - частичное обновление пользователя с отчётом об изменениях
func (uc *UserUseCase) Update(ctx context.Context, id string, req dto.UpdateUserRequest) (*dto.UpdateResult[dto.UserResponse], error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}
	user, err := uc.userRepo.GetByID(ctx, oid)
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

	if req.Role != nil {
		if !domain.IsValidRole(*req.Role) {
			return nil, errors.Validation("Unknown role %q", *req.Role)
		}
		tr.Visit(diff.Field{
			Name:  "role",
			Equal: func() bool { return user.Role == *req.Role },
			Apply: func() { user.Role = *req.Role },
		})
	} else {
		tr.Skip("role")
	}

	if req.IsActive != nil {
		tr.Visit(diff.Field{
			Name:  "is_active",
			Equal: func() bool { return user.IsActive == *req.IsActive },
			Apply: func() { user.IsActive = *req.IsActive },
		})
	} else {
		tr.Skip("is_active")
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

// Delete удаляет пользователя
func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}
	if err := uc.userRepo.Delete(ctx, oid); err != nil {
		return err
	}
	uc.logger.Info("User deleted", zap.String("id", id))
	return nil
}

func parseObjectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, errors.Validation("Invalid identifier %q", id)
	}
	return oid, nil
}
