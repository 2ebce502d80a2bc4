package handlers

import (
	"log"

	"pasar/internal/models"
	"pasar/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ProductHandler handles HTTP requests for the product catalog.
type ProductHandler struct {
	catalogService *services.CatalogService
	validate       *validator.Validate
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(catalogService *services.CatalogService) *ProductHandler {
	return &ProductHandler{
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app. Creating
// products and listing own products require a bearer token and the seller
// role; the catalog listing is public.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, authRequired, sellerOnly fiber.Handler) {
	router.Post("/add-products", authRequired, sellerOnly, h.HandleAddProduct)
	router.Get("/my-products", authRequired, sellerOnly, h.HandleMyProducts)
	router.Get("/all-products", h.HandleAllProducts)
}

// HandleAddProduct creates a new product owned by the requesting seller.
// The seller email comes from the verified token, not the request body.
func (h *ProductHandler) HandleAddProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		log.Printf("Error parsing add-product request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   err.Error(),
		})
	}

	email, _ := c.Locals("email").(string)
	product.SellerEmail = email

	if err := h.catalogService.AddProduct(c.Context(), &product); err != nil {
		log.Printf("Error creating product for seller %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create product",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(product)
}

// HandleMyProducts lists the requesting seller's products.
func (h *ProductHandler) HandleMyProducts(c *fiber.Ctx) error {
	email, _ := c.Locals("email").(string)

	products, err := h.catalogService.ProductsBySeller(c.Context(), email)
	if err != nil {
		log.Printf("Error getting products for seller %s: %v", email, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
		})
	}
	if products == nil {
		products = []models.Product{}
	}
	return c.JSON(products)
}

// HandleAllProducts serves the filtered, sorted, paginated catalog together
// with the facet values. Non-numeric page/limit fall back to the defaults.
func (h *ProductHandler) HandleAllProducts(c *fiber.Ctx) error {
	query := services.CatalogQuery{
		Title:    c.Query("title"),
		Category: c.Query("category"),
		Brand:    c.Query("brand"),
		Sort:     c.Query("sort"),
		Page:     c.QueryInt("page", services.DefaultPage),
		Limit:    c.QueryInt("limit", services.DefaultPageSize),
	}

	page, err := h.catalogService.ListProducts(c.Context(), query)
	if err != nil {
		log.Printf("Error listing products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve products",
		})
	}

	return c.JSON(page)
}
