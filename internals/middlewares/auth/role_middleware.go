package auth

import (
	"github.com/gofiber/fiber/v2"
)

// GrantMiddlewareWithCustomError validasi grant pada token + custom error message
func GrantMiddlewareWithCustomError(requiredGrant string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		grants, ok := c.Locals("grants").([]string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "Unauthorized: missing grant information",
			})
		}

		for _, g := range grants {
			if g == requiredGrant {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status":  "error",
			"message": customForbiddenMessage,
		})
	}
}
