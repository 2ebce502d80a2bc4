package handlers

import (
	"context"
	"errors"
	"log"

	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// WishlistHandler handles HTTP requests for per-user wishlists.
type WishlistHandler struct {
	wishlistService *services.WishlistService
	validate        *validator.Validate
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
		validate:        validator.New(),
	}
}

// RegisterRoutes registers the wishlist routes with the Fiber app. Resolving
// a wishlist requires a bearer token; add/remove are open, matching the
// original endpoint contract.
func (h *WishlistHandler) RegisterRoutes(router fiber.Router, authRequired fiber.Handler) {
	router.Patch("/wishlist/add", h.HandleAdd)
	router.Get("/wishlist/:userId", authRequired, h.HandleResolve)
	router.Patch("/wishlist/remove", h.HandleRemove)
}

// WishlistRequest represents the request body for wishlist mutations.
type WishlistRequest struct {
	UserEmail string `json:"userEmail" validate:"required,email"`
	ProductID string `json:"productId" validate:"required"`
}

// HandleAdd adds a product to a user's wishlist. Adding a product that is
// already present is a no-op success.
func (h *WishlistHandler) HandleAdd(c *fiber.Ctx) error {
	return h.mutate(c, h.wishlistService.Add, "Product added to wishlist")
}

// HandleRemove removes a product from a user's wishlist. Removing an absent
// product is a no-op success.
func (h *WishlistHandler) HandleRemove(c *fiber.Ctx) error {
	return h.mutate(c, h.wishlistService.Remove, "Product removed from wishlist")
}

// mutate parses and validates a wishlist mutation request and maps service
// errors to responses. Add and remove share the exact same surface.
func (h *WishlistHandler) mutate(c *fiber.Ctx, op func(ctx context.Context, email, productIDHex string) error, successMessage string) error {
	var req WishlistRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing wishlist request body: %v", err)
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

	if err := op(c.Context(), req.UserEmail, req.ProductID); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidProductID):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": err.Error(),
			})
		case errors.Is(err, repositories.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "no user found",
			})
		}
		log.Printf("Error mutating wishlist for %s: %v", req.UserEmail, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update wishlist",
		})
	}

	return c.JSON(fiber.Map{
		"message": successMessage,
	})
}

// HandleResolve fetches a user's wishlist and hydrates it into full product
// records.
func (h *WishlistHandler) HandleResolve(c *fiber.Ctx) error {
	userID := c.Params("userId")

	products, err := h.wishlistService.Resolve(c.Context(), userID)
	if err != nil {
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
		log.Printf("Error resolving wishlist for user %s: %v", userID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not resolve wishlist",
		})
	}

	return c.JSON(products)
}
