package usecase

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/events-directory/internal/config"
	"github.com/events-directory/internal/domain"
	"github.com/events-directory/internal/domain/repository"
	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/langs"
	"github.com/events-directory/internal/pkg/validator"
	"github.com/events-directory/internal/usecase/dto"
)

// Окно действия токена сброса пароля
const resetTokenTTL = time.Hour

// Claims - полезная нагрузка JWT
type Claims struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthUseCase - регистрация, подтверждение почты, вход и сброс пароля
type AuthUseCase struct {
	userRepo  repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
	logger    *zap.Logger
}

func NewAuthUseCase(userRepo repository.UserRepository, cfg *config.AuthConfig, logger *zap.Logger) *AuthUseCase {
	return &AuthUseCase{
		userRepo:  userRepo,
		jwtSecret: []byte(cfg.JWTSecret),
		tokenTTL:  cfg.TokenTTL,
		logger:    logger,
	}
}

// Register создает неактивный аккаунт с токеном подтверждения почты.
// Аккаунт, не подтверждённый за 48 часов, удаляется фоновой задачей.
func (uc *AuthUseCase) Register(ctx context.Context, req dto.RegisterRequest) (*dto.UserResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	hash, err := domain.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	lang := langs.Resolve(req.DefaultLang)
	if lang == "" {
		return nil, errors.ErrUnsupportedLanguage
	}

	now := time.Now().UTC()
	token := uuid.NewString()
	user := &domain.User{
		Email:                    req.Email,
		Password:                 hash,
		Role:                     domain.RoleUser,
		IsActive:                 false,
		DefaultLang:              lang,
		FavoriteEvents:           []primitive.ObjectID{},
		ConfirmationToken:        &token,
		ConfirmationTokenCreated: &now,
		CreatedAt:                now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	uc.logger.Info("User registered", zap.String("email", user.Email))
	resp := toUserResponse(user)
	return &resp, nil
}

// ConfirmEmail активирует аккаунт по токену из письма
func (uc *AuthUseCase) ConfirmEmail(ctx context.Context, token string) error {
	user, err := uc.userRepo.GetByConfirmationToken(ctx, token)
	if err != nil {
		if errors.IsCode(err, errors.CodeNotFound) {
			return errors.Validation("Invalid or expired confirmation token")
		}
		return err
	}

	if user.ConfirmationTokenCreated != nil &&
		time.Since(*user.ConfirmationTokenCreated) > domain.ConfirmationGracePeriod {
		return errors.Validation("Confirmation token has expired, please register again")
	}

	user.IsActive = true
	user.ConfirmationToken = nil
	user.ConfirmationTokenCreated = nil

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}

	uc.logger.Info("Email confirmed", zap.String("email", user.Email))
	return nil
}

// Login проверяет пароль и выдаёт JWT. Неподтверждённый аккаунт не входит.
func (uc *AuthUseCase) Login(ctx context.Context, req dto.LoginRequest) (*dto.TokenResponse, error) {
	if err := validator.Validate(req); err != nil {
		return nil, err
	}

	user, err := uc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.IsCode(err, errors.CodeNotFound) {
			return nil, errors.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.VerifyPassword(req.Password) {
		return nil, errors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return nil, errors.ErrAccountInactive
	}

	user.LastLogin = time.Now().UTC()
	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(uc.tokenTTL)
	token, err := uc.sign(user, expiresAt)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("User logged in", zap.String("email", user.Email))
	return &dto.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      toUserResponse(user),
	}, nil
}

// RequestPasswordReset выдаёт токен сброса. Ответ одинаков для
// существующей и несуществующей почты.
func (uc *AuthUseCase) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.IsCode(err, errors.CodeNotFound) {
			return nil
		}
		return err
	}

	now := time.Now().UTC()
	token := uuid.NewString()
	user.ResetToken = &token
	user.ResetTokenCreated = &now

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}

	uc.logger.Info("Password reset requested", zap.String("email", email))
	return nil
}

// ResetPassword устанавливает новый пароль по действующему токену
func (uc *AuthUseCase) ResetPassword(ctx context.Context, token, password string) error {
	user, err := uc.userRepo.GetByResetToken(ctx, token)
	if err != nil {
		if errors.IsCode(err, errors.CodeNotFound) {
			return errors.Validation("Invalid or expired reset token")
		}
		return err
	}

	if user.ResetTokenCreated == nil || time.Since(*user.ResetTokenCreated) > resetTokenTTL {
		return errors.Validation("Reset token has expired")
	}

	hash, err := domain.HashPassword(password)
	if err != nil {
		return err
	}

	user.Password = hash
	user.ResetToken = nil
	user.ResetTokenCreated = nil

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return err
	}

	uc.logger.Info("Password reset completed", zap.String("email", user.Email))
	return nil
}

// ParseToken проверяет подпись и срок действия JWT
func (uc *AuthUseCase) ParseToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Unauthorized("Unexpected token signing method")
		}
		return uc.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.Unauthorized("Invalid or expired token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.Unauthorized("Invalid token claims")
	}
	return claims, nil
}

func (uc *AuthUseCase) sign(user *domain.User, expiresAt time.Time) (string, error) {
	claims := Claims{
		UserID: user.ID.Hex(),
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(uc.jwtSecret)
	if err != nil {
		return "", errors.ErrInternalServer
	}
	return signed, nil
}
