package middleware

import (
	"context"
	"strings"

	"tradepost/internal/config"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var cfg *config.Config

// InitMiddleware initializes identity middleware with the given config.
func InitMiddleware(c *config.Config) {
	cfg = c
}

// OptionalIdentity resolves the current user's email from a bearer token
// when one is present, storing it in c.Locals("userEmail"). It never rejects
// a request: endpoints are public and the resolved identity only drives
// per-user view shaping (the wishlist flag). A missing or invalid token
// simply leaves the request anonymous.
func OptionalIdentity(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" || cfg == nil {
		return c.Next()
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return c.Next()
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return c.Next()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return c.Next()
	}

	// The storefront issues tokens with the account email as subject.
	// The email also goes into the request context directly: identity
	// resolves after ContextMiddleware has run, so relying on Locals alone
	// would never get it in front of the context-aware logger.
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		c.Locals("userEmail", sub)
		c.SetUserContext(context.WithValue(c.UserContext(), UserEmailKey, sub))
	}

	return c.Next()
}
