package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/utils"
	"github.com/events-directory/internal/usecase"
	"github.com/events-directory/internal/usecase/dto"
)

// CityHandler - обработчик справочника городов
type CityHandler struct {
	cityUC *usecase.CityUseCase
	logger *zap.Logger
}

// NewCityHandler - создание нового CityHandler
func NewCityHandler(cityUC *usecase.CityUseCase, logger *zap.Logger) *CityHandler {
	return &CityHandler{
		cityUC: cityUC,
		logger: logger,
	}
}

// List godoc
// @Summary Список городов
// @Description Возвращает все города афиши на выбранном языке
// @Tags Cities
// @Produce json
// @Param lang query string false "Язык ответа (en, ru, he)" default(en)
// @Success 200 {object} utils.SuccessResponse{data=[]dto.CityResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/cities [get]
func (h *CityHandler) List(c *fiber.Ctx) error {
	lang, err := queryLang(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	cities, err := h.cityUC.List(c.Context(), lang)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendList(c, cities, len(cities))
}

// Create godoc
// @Summary Добавление города
// @Description Проверяет город по географическому справочнику и сохраняет каноническое написание со всеми языками
// @Tags Cities
// @Accept json
// @Produce json
// @Param request body dto.CreateCityRequest true "Английское название города"
// @Success 201 {object} utils.SuccessResponse{data=dto.CityFullResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/cities [post]
func (h *CityHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCityRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrEmptyBody)
	}

	city, err := h.cityUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, "City created", city)
}

// GetBySlug godoc
// @Summary Город по слагу
// @Tags Cities
// @Produce json
// @Param slug path string true "Слаг города"
// @Success 200 {object} utils.SuccessResponse{data=dto.CityFullResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/cities/{slug} [get]
func (h *CityHandler) GetBySlug(c *fiber.Ctx) error {
	city, err := h.cityUC.GetBySlug(c.Context(), c.Params("slug"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, "", city)
}

// Delete godoc
// @Summary Удаление города
// @Description Удаляет город, если на него не ссылается ни одна площадка
// @Tags Cities
// @Produce json
// @Param slug path string true "Слаг города"
// @Success 204 "No Content"
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/cities/{slug} [delete]
func (h *CityHandler) Delete(c *fiber.Ctx) error {
	if err := h.cityUC.Delete(c.Context(), c.Params("slug")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
