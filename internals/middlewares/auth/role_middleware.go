package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"kampusku_backend/internals/constants"
)

// RequireRoles menolak request kalau role di token tidak ada di daftar.
// Dipasang SETELAH AuthJWT (butuh locals "role").
func RequireRoles(feature string, allowed ...string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	adminOnly := true
	for _, r := range allowed {
		r = strings.ToLower(r)
		allowedSet[r] = struct{}{}
		if r != constants.RoleAdmin {
			adminOnly = false
		}
	}

	return func(c *fiber.Ctx) error {
		role, _ := c.Locals("role").(string)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}
		if _, ok := allowedSet[role]; !ok {
			msg := constants.RoleErrorLecturer(feature)
			if adminOnly {
				msg = constants.RoleErrorAdmin(feature)
			}
			return fiber.NewError(fiber.StatusForbidden, msg)
		}
		return c.Next()
	}
}
