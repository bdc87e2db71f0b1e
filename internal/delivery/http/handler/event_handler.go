package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/utils"
	"github.com/events-directory/internal/usecase"
	"github.com/events-directory/internal/usecase/dto"
)

// EventHandler - обработчик событий афиши
type EventHandler struct {
	eventUC      *usecase.EventUseCase
	maxImageSize int64
	logger       *zap.Logger
}

// NewEventHandler - создание нового EventHandler
func NewEventHandler(eventUC *usecase.EventUseCase, maxImageSize int64, logger *zap.Logger) *EventHandler {
	return &EventHandler{
		eventUC:      eventUC,
		maxImageSize: maxImageSize,
		logger:       logger,
	}
}

// List godoc
// @Summary Список событий
// @Tags Events
// @Produce json
// @Param lang query string false "Язык ответа (en, ru, he)" default(en)
// @Param city query string false "Слаг города"
// @Param venue query string false "Слаг площадки"
// @Param event_type query string false "Слаг типа события"
// @Param from query string false "Нижняя граница даты (2006-01-02)"
// @Param to query string false "Верхняя граница даты (2006-01-02)"
// @Param is_active query bool false "Только активные"
// @Param sort query string false "Порядок по дате начала (asc, desc)" default(asc)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.EventResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/events [get]
func (h *EventHandler) List(c *fiber.Ctx) error {
	lang, err := queryLang(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	sort := c.Query("sort", "asc")
	if sort != "asc" && sort != "desc" {
		return utils.SendError(c, errors.Validation("Sort order must be asc or desc"))
	}

	events, err := h.eventUC.List(c.Context(), dto.EventListFilter{
		Lang:       lang,
		City:       c.Query("city"),
		Venue:      c.Query("venue"),
		EventType:  c.Query("event_type"),
		From:       c.Query("from"),
		To:         c.Query("to"),
		ActiveOnly: c.QueryBool("is_active"),
		SortDesc:   sort == "desc",
	})
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendList(c, events, len(events))
}

// Create godoc
// @Summary Добавление события
// @Description Создает событие с автопереводом названия и описания. Даты в местном времени "2006-01-02 15:04". Принимает JSON или multipart с полем image.
// @Tags Events
// @Accept json
// @Accept mpfd
// @Produce json
// @Param request body dto.CreateEventRequest true "Данные события"
// @Success 201 {object} utils.SuccessResponse{data=dto.EventResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/events [post]
func (h *EventHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyBody)
	}

	image, err := formImage(c, h.maxImageSize)
	if err != nil {
		return utils.SendError(c, err)
	}
	req.Image = image

	event, err := h.eventUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, "Event created", event)
}

// GetBySlug godoc
// @Summary Событие по слагу
// @Tags Events
// @Produce json
// @Param slug path string true "Слаг события"
// @Param lang query string false "Язык ответа (en, ru, he)" default(en)
// @Success 200 {object} utils.SuccessResponse{data=dto.EventResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/events/{slug} [get]
func (h *EventHandler) GetBySlug(c *fiber.Ctx) error {
	lang, err := queryLang(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	event, err := h.eventUC.GetBySlug(c.Context(), c.Params("slug"), lang)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, "", event)
}

// Update godoc
// @Summary Обновление события
// @Description Обновляет только фактически изменившиеся поля. Смена английского названия или даты начала пересчитывает слаг и переносит картинки.
// @Tags Events
// @Accept json
// @Accept mpfd
// @Produce json
// @Param slug path string true "Слаг события"
// @Param request body dto.UpdateEventRequest true "Изменяемые поля"
// @Success 200 {object} utils.SuccessResponse{data=dto.EventResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/events/{slug} [patch]
func (h *EventHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateEventRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyBody)
	}

	image, err := formImage(c, h.maxImageSize)
	if err != nil {
		return utils.SendError(c, err)
	}
	req.Image = image

	result, err := h.eventUC.Update(c.Context(), c.Params("slug"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result.Message, result.Data)
}

// Delete godoc
// @Summary Удаление события
// @Description Удаляет событие, убирает его из избранного всех пользователей и стирает картинки
// @Tags Events
// @Produce json
// @Param slug path string true "Слаг события"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/events/{slug} [delete]
func (h *EventHandler) Delete(c *fiber.Ctx) error {
	if err := h.eventUC.Delete(c.Context(), c.Params("slug")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
