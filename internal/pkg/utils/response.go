package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/events-directory/internal/pkg/errors"
)

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
}

type ErrorResponse struct {
	Status string           `json:"status"`
	Error  *errors.AppError `json:"error"`
}

func SendSuccess(c *fiber.Ctx, message string, data interface{}) error {
	return c.JSON(SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

// SendList - успешный ответ со списком и количеством элементов
func SendList(c *fiber.Ctx, data interface{}, count int) error {
	return c.JSON(SuccessResponse{
		Status: "success",
		Data:   data,
		Count:  &count,
	})
}

func SendCreated(c *fiber.Ctx, message string, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(SuccessResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func SendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Status: "error",
			Error:  appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Status: "error",
		Error:  errors.ErrInternalServer,
	})
}
