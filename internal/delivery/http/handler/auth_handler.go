package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/utils"
	"github.com/events-directory/internal/usecase"
	"github.com/events-directory/internal/usecase/dto"
)

// AuthHandler - регистрация, вход и восстановление доступа
type AuthHandler struct {
	authUC *usecase.AuthUseCase
	logger *zap.Logger
}

// NewAuthHandler - создание нового AuthHandler
func NewAuthHandler(authUC *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		logger: logger,
	}
}

// Register godoc
// @Summary Регистрация
// @Description Создает неактивный аккаунт с токеном подтверждения почты. Неподтвержденный аккаунт удаляется через 48 часов.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Почта и пароль"
// @Success 201 {object} utils.SuccessResponse{data=dto.UserResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyBody)
	}

	user, err := h.authUC.Register(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, "Registration successful, please confirm your email", user)
}

// ConfirmEmail godoc
// @Summary Подтверждение почты
// @Description Активирует аккаунт по токену из письма
// @Tags Auth
// @Produce json
// @Param token path string true "Токен подтверждения"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/auth/confirm-email/{token} [get]
func (h *AuthHandler) ConfirmEmail(c *fiber.Ctx) error {
	if err := h.authUC.ConfirmEmail(c.Context(), c.Params("token")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, "Email confirmed", nil)
}

// Login godoc
// @Summary Вход
// @Description Проверяет пароль и выдает JWT. Неподтвержденный аккаунт получает 403.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Почта и пароль"
// @Success 200 {object} utils.SuccessResponse{data=dto.TokenResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyBody)
	}

	token, err := h.authUC.Login(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, "Login successful", token)
}

// Logout godoc
// @Summary Выход
// @Description Токены не хранятся на сервере, клиент просто забывает свой JWT
// @Tags Auth
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Security BearerAuth
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return utils.SendSuccess(c, "Logged out", nil)
}

// RequestPasswordReset godoc
// @Summary Запрос сброса пароля
// @Description Выдает токен сброса. Ответ одинаков для существующей и несуществующей почты.
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.PasswordResetRequest true "Почта"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/auth/password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *fiber.Ctx) error {
	var req dto.PasswordResetRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyBody)
	}

	if err := h.authUC.RequestPasswordReset(c.Context(), req.Email); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, "If the account exists, a reset link has been sent", nil)
}

// ResetPassword godoc
// @Summary Установка нового пароля
// @Description Меняет пароль по токену сброса, токен действует один час
// @Tags Auth
// @Accept json
// @Produce json
// @Param token path string true "Токен сброса"
// @Param request body dto.PasswordResetConfirmRequest true "Новый пароль"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/auth/password-reset/{token} [post]
func (h *AuthHandler) ResetPassword(c *fiber.Ctx) error {
	var req dto.PasswordResetConfirmRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyBody)
	}

	if err := h.authUC.ResetPassword(c.Context(), c.Params("token"), req.Password); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, "Password updated", nil)
}
