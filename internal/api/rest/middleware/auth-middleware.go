package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"github.com/tyforge/launchpad-backend/internal/services"
)

// AuthMiddleware verifies the caller's token, cookie first then the
// Authorization header, and puts the claims in ctx.Locals("user").
func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		claims, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		ctx.Locals("userID", claims.UserID)
		ctx.Locals("user", claims)
		return ctx.Next()
	}
}

// OptionalAuth attaches claims when a valid token is present and lets the
// request through either way. Used by the public idea endpoints, which
// behave differently for logged-in students.
func OptionalAuth(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}
		if tokenStr == "" {
			return ctx.Next()
		}

		claims, err := auth.VerifyToken(tokenStr)
		if err != nil {
			// a bad token on an optional route is treated as anonymous
			return ctx.Next()
		}

		ctx.Locals("userID", claims.UserID)
		ctx.Locals("user", claims)
		return ctx.Next()
	}
}

// AdminOnly re-checks the admin flag against the database rather than
// trusting the token, so a demoted admin is locked out as soon as the row
// changes.
func AdminOnly(userSvc services.UserService) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userID, ok := ctx.Locals("userID").(string)
		if !ok || userID == "" {
			return ctx.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "unauthorized",
			})
		}

		if !userSvc.IsAdmin(userID) {
			return ctx.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "admin only",
			})
		}

		return ctx.Next()
	}
}
