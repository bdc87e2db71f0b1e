package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HealthChecker - зависимость, умеющая отвечать на ping
type HealthChecker interface {
	Health(ctx context.Context) error
}

// HealthHandler - проверка живости сервиса и его зависимостей
type HealthHandler struct {
	mongo HealthChecker
	redis HealthChecker
}

// NewHealthHandler - создание нового HealthHandler
func NewHealthHandler(mongo, redis HealthChecker) *HealthHandler {
	return &HealthHandler{
		mongo: mongo,
		redis: redis,
	}
}

// Check godoc
// @Summary Проверка здоровья сервиса
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	status := "healthy"
	checks := fiber.Map{}

	if err := h.mongo.Health(ctx); err != nil {
		status = "degraded"
		checks["mongo"] = err.Error()
	} else {
		checks["mongo"] = "ok"
	}

	if h.redis != nil {
		if err := h.redis.Health(ctx); err != nil {
			status = "degraded"
			checks["redis"] = err.Error()
		} else {
			checks["redis"] = "ok"
		}
	}

	code := fiber.StatusOK
	if status != "healthy" {
		code = fiber.StatusServiceUnavailable
	}
	return c.Status(code).JSON(fiber.Map{
		"status": status,
		"checks": checks,
		"time":   time.Now(),
	})
}
