package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/events-directory/internal/pkg/errors"
	"github.com/events-directory/internal/pkg/utils"
	"github.com/events-directory/internal/usecase"
)

// Ключи в Locals запроса после успешной аутентификации
const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

// Auth проверяет Bearer-токен и кладет идентификатор и роль
// пользователя в контекст запроса
func Auth(authUC *usecase.AuthUseCase) fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return utils.SendError(c, errors.Unauthorized("Missing or malformed authorization header"))
		}

		claims, err := authUC.ParseToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			return utils.SendError(c, err)
		}

		c.Locals(ContextUserID, claims.UserID)
		c.Locals(ContextRole, claims.Role)
		return c.Next()
	}
}

// RequireRole пропускает только перечисленные роли. Ставится после Auth.
func RequireRole(roles ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(ContextRole).(string)
		for _, allowed := range roles {
			if role == allowed {
				return c.Next()
			}
		}
		return utils.SendError(c, errors.ErrInsufficientRole)
	}
}

// UserID возвращает идентификатор аутентифицированного пользователя
func UserID(c *fiber.Ctx) string {
	id, _ := c.Locals(ContextUserID).(string)
	return id
}
