package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/utils"
	"github.com/events-directory/internal/usecase"
	"github.com/events-directory/internal/usecase/dto"
)

// VenueHandler - обработчик площадок
type VenueHandler struct {
	venueUC      *usecase.VenueUseCase
	maxImageSize int64
	logger       *zap.Logger
}

// NewVenueHandler - создание нового VenueHandler
func NewVenueHandler(venueUC *usecase.VenueUseCase, maxImageSize int64, logger *zap.Logger) *VenueHandler {
	return &VenueHandler{
		venueUC:      venueUC,
		maxImageSize: maxImageSize,
		logger:       logger,
	}
}

// List godoc
// @Summary Список площадок
// @Tags Venues
// @Produce json
// @Param lang query string false "Язык ответа (en, ru, he)" default(en)
// @Param city query string false "Слаг города"
// @Param venue_type query string false "Слаг типа площадки"
// @Param is_active query bool false "Только активные"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.VenueResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/venues [get]
func (h *VenueHandler) List(c *fiber.Ctx) error {
	lang, err := queryLang(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	venues, err := h.venueUC.List(c.Context(), dto.VenueListFilter{
		Lang:       lang,
		City:       c.Query("city"),
		VenueType:  c.Query("venue_type"),
		ActiveOnly: c.QueryBool("is_active"),
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendList(c, venues, len(venues))
}

// Create godoc
// @Summary Добавление площадки
// @Description Создает площадку: недостающие языки дозаполняются, адрес геокодируется. Принимает JSON или multipart с полем image.
// @Tags Venues
// @Accept json
// @Accept mpfd
// @Produce json
// @Param request body dto.CreateVenueRequest true "Данные площадки"
// @Success 201 {object} utils.SuccessResponse{data=dto.VenueResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/venues [post]
func (h *VenueHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateVenueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyBody)
	}

	image, err := formImage(c, h.maxImageSize)
	if err != nil {
		return utils.SendError(c, err)
	}
	req.Image = image

	venue, err := h.venueUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, "Venue created", venue)
}

// GetBySlug godoc
// @Summary Площадка по слагу
// @Tags Venues
// @Produce json
// @Param slug path string true "Слаг площадки"
// @Param lang query string false "Язык ответа (en, ru, he)" default(en)
// @Success 200 {object} utils.SuccessResponse{data=dto.VenueResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/venues/{slug} [get]
func (h *VenueHandler) GetBySlug(c *fiber.Ctx) error {
	lang, err := queryLang(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	venue, err := h.venueUC.GetBySlug(c.Context(), c.Params("slug"), lang)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, "", venue)
}

// Update godoc
// @Summary Обновление площадки
// @Description Обновляет только фактически изменившиеся поля. Смена адреса перегеокодирует координаты, смена английского названия пересчитывает слаг и переносит картинки.
// @Tags Venues
// @Accept json
// @Accept mpfd
// @Produce json
// @Param slug path string true "Слаг площадки"
// @Param request body dto.UpdateVenueRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=dto.VenueResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/venues/{slug} [patch]
func (h *VenueHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateVenueRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyBody)
	}

	image, err := formImage(c, h.maxImageSize)
	if err != nil {
		return utils.SendError(c, err)
	}
	req.Image = image

	result, err := h.venueUC.Update(c.Context(), c.Params("slug"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result.Message, result.Data)
}

// Delete godoc
// @Summary Удаление площадки
// @Description Блокируется при наличии активных событий; иначе каскадно удаляет события площадки и их картинки
// @Tags Venues
// @Produce json
// @Param slug path string true "Слаг площадки"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/venues/{slug} [delete]
func (h *VenueHandler) Delete(c *fiber.Ctx) error {
	if err := h.venueUC.Delete(c.Context(), c.Params("slug")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
