package services_test

import (
	"log"
	"os"
	"testing"
	"time"

	"pasar/internal/services"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
)

// TestMain is used to setup test environment
func TestMain(m *testing.M) {
	log.SetOutput(os.Stdout)
	code := m.Run()
	os.Exit(code)
}

func TestAuthService_IssueAndValidateToken(t *testing.T) {
	authService := services.NewAuthService("test_jwt_secret")

	token, err := authService.IssueToken("buyer@example.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := authService.ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, "buyer@example.com", claims["email"])
	assert.NotEmpty(t, claims["jti"])

	// Tokens expire 10 days after issuance.
	exp, ok := claims["exp"].(float64)
	assert.True(t, ok)
	assert.InDelta(t, time.Now().Add(240*time.Hour).Unix(), int64(exp), 5)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	issuer := services.NewAuthService("secret_one")
	verifier := services.NewAuthService("secret_two")

	token, err := issuer.IssueToken("buyer@example.com")
	assert.NoError(t, err)

	claims, err := verifier.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestAuthService_ValidateToken_Expired(t *testing.T) {
	secret := "test_jwt_secret"
	authService := services.NewAuthService(secret)

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": "buyer@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
		"iat":   time.Now().Add(-2 * time.Hour).Unix(),
	})
	tokenString, err := expired.SignedString([]byte(secret))
	assert.NoError(t, err)

	claims, err := authService.ValidateToken(tokenString)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestAuthService_ValidateToken_Malformed(t *testing.T) {
	authService := services.NewAuthService("test_jwt_secret")

	claims, err := authService.ValidateToken("not-a-token")
	assert.Error(t, err)
	assert.Nil(t, claims)
}
