package middleware

import (
	"strings"

	"github.com/daypanel/daypanel-backend/internal/models"
	jwtPkg "github.com/daypanel/daypanel-backend/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// Principal is the authenticated identity derived from a verified token.
type Principal struct {
	ID        uint
	Email     string
	City      *string
	Region    *string
	Country   *string
	Latitude  *float64
	Longitude *float64
}

func (p *Principal) HasCountry() bool {
	return p.Country != nil && *p.Country != ""
}

func (p *Principal) HasCoordinates() bool {
	return p.Latitude != nil && p.Longitude != nil &&
		p.City != nil && *p.City != "" &&
		p.Region != nil && *p.Region != ""
}

func principalFromClaims(claims *jwtPkg.Claims) *Principal {
	return &Principal{
		ID:        claims.UserID,
		Email:     claims.Email,
		City:      claims.City,
		Region:    claims.Region,
		Country:   claims.Country,
		Latitude:  claims.Latitude,
		Longitude: claims.Longitude,
	}
}

func verify(c *fiber.Ctx, secret string) *Principal {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return nil
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	claims, err := jwtPkg.ValidateToken(secret, tokenString)
	if err != nil {
		return nil
	}

	return principalFromClaims(claims)
}

// Auth rejects requests without a valid bearer token. Missing token,
// bad signature, expiry and a missing signing secret all yield the same
// 401 body.
func Auth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		principal := verify(c, secret)
		if principal == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Unauthorized"))
		}

		c.Locals(principalKey, principal)
		return c.Next()
	}
}

// OptionalAuth attaches the principal when a valid token is present but
// lets anonymous requests through. Used by the lookup and upload routes,
// which degrade to IP-based or transient behavior without a session.
func OptionalAuth(secret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if principal := verify(c, secret); principal != nil {
			c.Locals(principalKey, principal)
		}
		return c.Next()
	}
}

// PrincipalFromCtx returns the authenticated principal, or nil on
// anonymous requests.
func PrincipalFromCtx(c *fiber.Ctx) *Principal {
	principal, _ := c.Locals(principalKey).(*Principal)
	return principal
}
