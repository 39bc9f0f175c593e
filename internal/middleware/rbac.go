package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/craviont/craviont-site-api/internal/utils"
)

// RoleAdmin is the operator role allowed to read dispatch diagnostics.
const RoleAdmin = "admin"

// RequireRole ensures that the authenticated operator possesses one of the allowed roles.
func RequireRole(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		normalized := strings.ToLower(strings.TrimSpace(role))
		if normalized != "" {
			allowed[normalized] = struct{}{}
		}
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocalOperatorRole).(string)
		if role == "" {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		if _, ok := allowed[strings.ToLower(role)]; !ok {
			return utils.SendError(c, fiber.StatusForbidden, "insufficient permissions")
		}
		return c.Next()
	}
}
