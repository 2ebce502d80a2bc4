package handlers

import (
	"errors"
	"log"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// UserHandler handles HTTP requests for user accounts and roles.
type UserHandler struct {
	userService *services.UserService
	validate    *validator.Validate
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the user routes with the Fiber app. Listing users
// requires a bearer token; role changes and deletion additionally require
// the admin role.
func (h *UserHandler) RegisterRoutes(router fiber.Router, authRequired, adminOnly fiber.Handler) {
	router.Get("/user/:email", h.HandleGetUser)
	router.Get("/users", authRequired, h.HandleGetUsers)
	router.Post("/users", h.HandleRegister)
	router.Patch("/users/:id", authRequired, adminOnly, h.HandleChangeRole)
	router.Delete("/users/:id", authRequired, adminOnly, h.HandleDeleteUser)
}

// HandleGetUser fetches one user by email.
func (h *UserHandler) HandleGetUser(c *fiber.Ctx) error {
	email := c.Params("email")
	user, err := h.userService.GetByEmail(c.Context(), email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "no user found",
			})
		}
		log.Printf("Error getting user %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve user",
		})
	}
	return c.JSON(user)
}

// HandleGetUsers lists all users.
func (h *UserHandler) HandleGetUsers(c *fiber.Ctx) error {
	users, err := h.userService.GetAll(c.Context())
	if err != nil {
		log.Printf("Error getting all users: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve users",
		})
	}
	return c.JSON(users)
}

// RegisterRequest represents the request body for registration. The
// password is optional; the model itself never accepts one from JSON.
type RegisterRequest struct {
	Name     string `json:"name" validate:"omitempty,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"omitempty,min=6"`
}

// HandleRegister registers a new user. Registering an existing email is a
// no-op reported as a conflict.
func (h *UserHandler) HandleRegister(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing register request body: %v", err)
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

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	}

	if err := h.userService.Register(c.Context(), &user); err != nil {
		if errors.Is(err, services.ErrUserExists) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{
				"message": "User Already Exist",
			})
		}
		log.Printf("Error registering user %s: %v", user.Email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not register user",
		})
	}

	user.Password = ""
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"user":    user,
	})
}

// RoleChangeRequest represents the request body for a role change.
type RoleChangeRequest struct {
	Role models.Role `json:"role" validate:"required"`
}

// HandleChangeRole sets a user's role.
func (h *UserHandler) HandleChangeRole(c *fiber.Ctx) error {
	id := c.Params("id")

	var req RoleChangeRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing role change request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.userService.ChangeRole(c.Context(), id, req.Role); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidUserID), errors.Is(err, services.ErrInvalidRole):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		case errors.Is(err, repositories.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "no user found",
			})
		}
		log.Printf("Error changing role for user %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not change role",
		})
	}

	return c.JSON(fiber.Map{
		"message": "Role updated successfully",
	})
}

// HandleDeleteUser deletes a user by id.
func (h *UserHandler) HandleDeleteUser(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := h.userService.Delete(c.Context(), id); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidUserID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		case errors.Is(err, repositories.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "no user found",
			})
		}
		log.Printf("Error deleting user %s: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete user",
		})
	}

	return c.JSON(fiber.Map{
		"message": "User deleted successfully",
	})
}
