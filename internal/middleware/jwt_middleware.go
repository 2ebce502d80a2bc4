package middleware

import (
	"errors"
	"log"
	"strings"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/gofiber/fiber/v2"
)

// AuthRequired is a Fiber middleware to check for a valid bearer token. A
// rejection returns immediately; the downstream handler is never invoked
// once an error response has been sent.
func AuthRequired(authService *services.AuthService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "no token",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "invalid token",
			})
		}

		email, ok := claims["email"].(string)
		if !ok || email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "invalid token",
			})
		}

		// Store the verified identity in the Fiber context for downstream
		// handlers and role checks.
		c.Locals("email", email)

		return c.Next()
	}
}

// RequireRole is a Fiber middleware that confirms the verified identity
// holds the required role. It must run after AuthRequired.
func RequireRole(userRepo repositories.UserRepository, role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		email, ok := c.Locals("email").(string)
		if !ok || email == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "no token",
			})
		}

		user, err := userRepo.GetByEmail(c.Context(), email)
		if err != nil {
			if errors.Is(err, repositories.ErrUserNotFound) {
				return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
					"message": "forbidden access.",
				})
			}
			log.Printf("Role check failed for %s: %v", email, err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "could not verify role",
			})
		}

		if user.EffectiveRole() != role {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "forbidden access.",
			})
		}

		return c.Next()
	}
}
