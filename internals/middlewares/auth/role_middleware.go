package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// RequireRoles menolak request jika role di token tidak termasuk daftar.
func RequireRoles(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[strings.ToLower(r)] = struct{}{}
	}
	return func(c *fiber.Ctx) error {
		role, _ := c.Locals(LocRole).(string)
		if _, ok := allowed[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Role tidak diizinkan mengakses resource ini")
		}
		return c.Next()
	}
}
