package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/events-directory/internal/delivery/http/middleware"
	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/utils"
	"github.com/events-directory/internal/usecase"
	"github.com/events-directory/internal/usecase/dto"
)

// ProfileHandler - личный кабинет аутентифицированного пользователя
type ProfileHandler struct {
	profileUC *usecase.ProfileUseCase
	logger    *zap.Logger
}

// NewProfileHandler - создание нового ProfileHandler
func NewProfileHandler(profileUC *usecase.ProfileUseCase, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{
		profileUC: profileUC,
		logger:    logger,
	}
}

// Get godoc
// @Summary Собственный профиль
// @Tags Profile
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.UserResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/profile [get]
func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	user, err := h.profileUC.Get(c.Context(), middleware.UserID(c))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, "", user)
}

// Update godoc
// @Summary Обновление профиля
// @Description Обновляет только фактически изменившиеся поля с отчетом об изменениях
// @Tags Profile
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=dto.UserResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/profile [patch]
func (h *ProfileHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyBody)
	}

	result, err := h.profileUC.Update(c.Context(), middleware.UserID(c), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result.Message, result.Data)
}

// ListFavorites godoc
// @Summary Избранные события
// @Tags Profile
// @Produce json
// @Param lang query string false "Язык ответа (en, ru, he)" default(en)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.EventResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/profile/favorites [get]
func (h *ProfileHandler) ListFavorites(c *fiber.Ctx) error {
	lang, err := queryLang(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	events, err := h.profileUC.ListFavorites(c.Context(), middleware.UserID(c), lang)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendList(c, events, len(events))
}

// AddFavorite godoc
// @Summary Добавление события в избранное
// @Tags Profile
// @Produce json
// @Param event_slug path string true "Слаг события"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/profile/favorites/{event_slug} [put]
func (h *ProfileHandler) AddFavorite(c *fiber.Ctx) error {
	if err := h.profileUC.AddFavorite(c.Context(), middleware.UserID(c), c.Params("event_slug")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, "Event added to favorites", nil)
}

// RemoveFavorite godoc
// @Summary Удаление события из избранного
// @Tags Profile
// @Produce json
// @Param event_slug path string true "Слаг события"
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/profile/favorites/{event_slug} [delete]
func (h *ProfileHandler) RemoveFavorite(c *fiber.Ctx) error {
	if err := h.profileUC.RemoveFavorite(c.Context(), middleware.UserID(c), c.Params("event_slug")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, "Event removed from favorites", nil)
}
