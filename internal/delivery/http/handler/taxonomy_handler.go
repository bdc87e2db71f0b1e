package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/utils"
	"github.com/events-directory/internal/usecase"
	"github.com/events-directory/internal/usecase/dto"
)

// VenueTypeHandler - обработчик справочника типов площадок
type VenueTypeHandler struct {
	typeUC *usecase.VenueTypeUseCase
	logger *zap.Logger
}

// NewVenueTypeHandler - создание нового VenueTypeHandler
func NewVenueTypeHandler(typeUC *usecase.VenueTypeUseCase, logger *zap.Logger) *VenueTypeHandler {
	return &VenueTypeHandler{
		typeUC: typeUC,
		logger: logger,
	}
}

// List godoc
// @Summary Список типов площадок
// @Tags VenueTypes
// @Produce json
// @Param lang query string false "Язык ответа (en, ru, he)" default(en)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.TaxonomyResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/venue-types [get]
func (h *VenueTypeHandler) List(c *fiber.Ctx) error {
	lang, err := queryLang(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	types, err := h.typeUC.List(c.Context(), lang)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendList(c, types, len(types))
}

// Create godoc
// @Summary Добавление типа площадки
// @Description Достаточно одного языка, недостающие дозаполняются автопереводом
// @Tags VenueTypes
// @Accept json
// @Produce json
// @Param request body dto.TaxonomyRequest true "Названия типа"
// @Success 201 {object} utils.SuccessResponse{data=dto.TaxonomyFullResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/venue-types [post]
func (h *VenueTypeHandler) Create(c *fiber.Ctx) error {
	var req dto.TaxonomyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyBody)
	}

	vt, err := h.typeUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, "Venue type created", vt)
}

// GetBySlug godoc
// @Summary Тип площадки по слагу
// @Tags VenueTypes
// @Produce json
// @Param slug path string true "Слаг типа"
// @Success 200 {object} utils.SuccessResponse{data=dto.TaxonomyFullResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/venue-types/{slug} [get]
func (h *VenueTypeHandler) GetBySlug(c *fiber.Ctx) error {
	vt, err := h.typeUC.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, "", vt)
}

// Update godoc
// @Summary Обновление типа площадки
// @Description Полное обновление с отчетом об измененных полях
// @Tags VenueTypes
// @Accept json
// @Produce json
// @Param slug path string true "Слаг типа"
// @Param request body dto.UpdateTaxonomyRequest true "Названия на всех языках"
// @Success 200 {object} utils.SuccessResponse{data=dto.TaxonomyFullResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/venue-types/{slug} [put]
func (h *VenueTypeHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTaxonomyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyBody)
	}

	result, err := h.typeUC.Update(c.Context(), c.Params("slug"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result.Message, result.Data)
}

// Delete godoc
// @Summary Удаление типа площадки
// @Description Блокируется, пока тип используется хотя бы одной площадкой
// @Tags VenueTypes
// @Produce json
// @Param slug path string true "Слаг типа"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/venue-types/{slug} [delete]
func (h *VenueTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.typeUC.Delete(c.Context(), c.Params("slug")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// EventTypeHandler - обработчик справочника типов событий
type EventTypeHandler struct {
	typeUC *usecase.EventTypeUseCase
	logger *zap.Logger
}

// NewEventTypeHandler - создание нового EventTypeHandler
func NewEventTypeHandler(typeUC *usecase.EventTypeUseCase, logger *zap.Logger) *EventTypeHandler {
	return &EventTypeHandler{
		typeUC: typeUC,
		logger: logger,
	}
}

// List godoc
// @Summary Список типов событий
// @Tags EventTypes
// @Produce json
// @Param lang query string false "Язык ответа (en, ru, he)" default(en)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.TaxonomyResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/event-types [get]
func (h *EventTypeHandler) List(c *fiber.Ctx) error {
	lang, err := queryLang(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	types, err := h.typeUC.List(c.Context(), lang)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendList(c, types, len(types))
}

// Create godoc
// @Summary Добавление типа события
// @Tags EventTypes
// @Accept json
// @Produce json
// @Param request body dto.TaxonomyRequest true "Названия типа"
// @Success 201 {object} utils.SuccessResponse{data=dto.TaxonomyFullResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/event-types [post]
func (h *EventTypeHandler) Create(c *fiber.Ctx) error {
	var req dto.TaxonomyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyBody)
	}

	et, err := h.typeUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, "Event type created", et)
}

// GetBySlug godoc
// @Summary Тип события по слагу
// @Tags EventTypes
// @Produce json
// @Param slug path string true "Слаг типа"
// @Success 200 {object} utils.SuccessResponse{data=dto.TaxonomyFullResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/event-types/{slug} [get]
func (h *EventTypeHandler) GetBySlug(c *fiber.Ctx) error {
	et, err := h.typeUC.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, "", et)
}

// Update godoc
// @Summary Обновление типа события
// @Tags EventTypes
// @Accept json
// @Produce json
// @Param slug path string true "Слаг типа"
// @Param request body dto.UpdateTaxonomyRequest true "Названия на всех языках"
// @Success 200 {object} utils.SuccessResponse{data=dto.TaxonomyFullResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/event-types/{slug} [put]
func (h *EventTypeHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTaxonomyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyBody)
	}

	result, err := h.typeUC.Update(c.Context(), c.Params("slug"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result.Message, result.Data)
}

// Delete godoc
// @Summary Удаление типа события
// @Description Блокируется, пока тип используется хотя бы одним событием
// @Tags EventTypes
// @Produce json
// @Param slug path string true "Слаг типа"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/event-types/{slug} [delete]
func (h *EventTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.typeUC.Delete(c.Context(), c.Params("slug")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
