package utils

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/launchpad-backend/internal/apperr"
)

func ResponseError(ctx *fiber.Ctx, status int, msg string) error {
	return ctx.Status(status).JSON(fiber.Map{
		"error": msg,
	})
}

func ResponseSuccess(ctx *fiber.Ctx, status int, data interface{}) error {
	return ctx.Status(status).JSON(fiber.Map{"data": data})
}

// ResponseAppError translates an application error to its stable status
// code and JSON body. Anything unrecognized is logged with full detail and
// returned opaque.
func ResponseAppError(ctx *fiber.Ctx, err error) error {
	status := apperr.StatusCode(err)
	if status == http.StatusInternalServerError {
		log.Printf("internal error on %s %s: %v", ctx.Method(), ctx.Path(), err)
		return ResponseError(ctx, status, "internal server error")
	}

	body := fiber.Map{"error": err.Error()}
	var e *apperr.Error
	if errors.As(err, &e) && e.Field != "" {
		body["field"] = e.Field
		body["error"] = e.Message
	}
	return ctx.Status(status).JSON(body)
}

// ClampLimit applies the server-side pagination bound: requested limits
// above max are clamped, non-positive values fall back to def.
func ClampLimit(limit, def, max int) int {
	if limit <= 0 {
		return def
	}
	if limit > max {
		return max
	}
	return limit
}
