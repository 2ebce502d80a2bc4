package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"pasar/internal/middleware"
	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestAuthRequired_RejectionNeverReachesHandler(t *testing.T) {
	authService := services.NewAuthService("test_jwt_secret")

	handlerInvoked := false
	app := fiber.New()
	app.Get("/protected", middleware.AuthRequired(authService), func(c *fiber.Ctx) error {
		handlerInvoked = true
		return c.SendString("ok")
	})

	// Missing header halts the chain.
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, handlerInvoked)
	resp.Body.Close()

	// Garbage token halts the chain.
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, handlerInvoked)
	resp.Body.Close()

	// Token signed with a different secret halts the chain.
	otherIssuer := services.NewAuthService("another_secret")
	foreignToken, err := otherIssuer.IssueToken("buyer@example.com")
	assert.NoError(t, err)
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+foreignToken)
	resp, err = app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.False(t, handlerInvoked)
	resp.Body.Close()
}

func TestAuthRequired_AttachesClaims(t *testing.T) {
	authService := services.NewAuthService("test_jwt_secret")

	var seenEmail string
	app := fiber.New()
	app.Get("/protected", middleware.AuthRequired(authService), func(c *fiber.Ctx) error {
		seenEmail, _ = c.Locals("email").(string)
		return c.SendString("ok")
	})

	token, err := authService.IssueToken("buyer@example.com")
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "buyer@example.com", seenEmail)
	resp.Body.Close()
}

func TestRequireRole(t *testing.T) {
	authService := services.NewAuthService("test_jwt_secret")
	userRepo := repositories.NewMockUserRepository()

	seller := &models.User{Email: "seller@example.com", Role: models.RoleSeller}
	buyer := &models.User{Email: "buyer@example.com"}
	assert.NoError(t, userRepo.Create(context.Background(), seller))
	assert.NoError(t, userRepo.Create(context.Background(), buyer))

	handlerInvocations := 0
	app := fiber.New()
	app.Post("/seller-only",
		middleware.AuthRequired(authService),
		middleware.RequireRole(userRepo, models.RoleSeller),
		func(c *fiber.Ctx) error {
			handlerInvocations++
			return c.SendString("ok")
		})

	request := func(email string) int {
		token, err := authService.IssueToken(email)
		assert.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/seller-only", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := app.Test(req, -1)
		assert.NoError(t, err)
		resp.Body.Close()
		return resp.StatusCode
	}

	// Exact role match is the only way in.
	assert.Equal(t, http.StatusOK, request("seller@example.com"))
	assert.Equal(t, 1, handlerInvocations)

	// A plain buyer is forbidden, and the handler is never invoked.
	assert.Equal(t, http.StatusForbidden, request("buyer@example.com"))
	assert.Equal(t, 1, handlerInvocations)

	// A token for an unknown account is forbidden as well.
	assert.Equal(t, http.StatusForbidden, request("ghost@example.com"))
	assert.Equal(t, 1, handlerInvocations)
}
