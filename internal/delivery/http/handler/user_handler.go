package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/utils"
	"github.com/events-directory/internal/usecase"
	"github.com/events-directory/internal/usecase/dto"
)

// UserHandler - администрирование пользователей
type UserHandler struct {
	userUC *usecase.UserUseCase
	logger *zap.Logger
}

// NewUserHandler - создание нового UserHandler
func NewUserHandler(userUC *usecase.UserUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUC: userUC,
		logger: logger,
	}
}

// List godoc
// @Summary Список пользователей
// @Tags Users
// @Produce json
// @Param role query string false "Фильтр по роли (admin, manager, user)"
// @Param is_active query bool false "Фильтр по активности"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.UserResponse}
// @Failure 403 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var isActive *bool
	if c.Query("is_active") != "" {
		v := c.QueryBool("is_active")
		isActive = &v
	}

	users, err := h.userUC.List(c.Context(), c.Query("role"), isActive)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendList(c, users, len(users))
}

// Create godoc
// @Summary Создание пользователя администратором
// @Tags Users
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "Данные пользователя"
// @Success 201 {object} utils.SuccessResponse{data=dto.UserResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyBody)
	}

	user, err := h.userUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, "User created", user)
}

// GetByID godoc
// @Summary Пользователь по идентификатору
// @Tags Users
// @Produce json
// @Param id path string true "Идентификатор пользователя"
// @Success 200 {object} utils.SuccessResponse{data=dto.UserResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.userUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, "", user)
}

// Update godoc
// @Summary Обновление пользователя
// @Description Обновляет только фактически изменившиеся поля с отчетом об изменениях
// @Tags Users
// @Accept json
// @Produce json
// @Param id path string true "Идентификатор пользователя"
// @Param request body dto.UpdateUserRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=dto.UserResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/users/{id} [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyBody)
	}

	result, err := h.userUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result.Message, result.Data)
}

// Delete godoc
// @Summary Удаление пользователя
// @Tags Users
// @Produce json
// @Param id path string true "Идентификатор пользователя"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.userUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
