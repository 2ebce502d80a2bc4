package handlers

import (
	"log"

	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles HTTP requests for token issuance.
type AuthHandler struct {
	authService *services.AuthService
	validate    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the authentication routes with the Fiber app.
func (h *AuthHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/authentication", h.HandleIssueToken)
}

// TokenRequest represents the request body for token issuance.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// HandleIssueToken issues a bearer token for the email in the payload.
func (h *AuthHandler) HandleIssueToken(c *fiber.Ctx) error {
	var req TokenRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing authentication request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	token, err := h.authService.IssueToken(req.Email)
	if err != nil {
		log.Printf("Error issuing token for %s: %v", req.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not issue token",
		})
	}

	return c.JSON(fiber.Map{
		"token": token,
	})
}
