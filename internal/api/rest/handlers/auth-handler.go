package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/launchpad-backend/internal/api/rest/middleware"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/services"
)

type AuthHandler struct {
	svc      services.UserService
	activity services.ActivityService
	auth     helper.Auth
}

func NewAuthHandler(svc services.UserService, activity services.ActivityService, auth helper.Auth) *AuthHandler {
	return &AuthHandler{svc: svc, activity: activity, auth: auth}
}

func (h *AuthHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", h.Signup)
	auth.Post("/login", h.Login)

	auth.Get("/me", middleware.AuthMiddleware(h.auth), h.Me)
}

func (h *AuthHandler) Signup(ctx *fiber.Ctx) error {
	var requestBody dto.SignupRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	resp, err := h.svc.Register(requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     resp.User.ID,
		Action:     "signup",
		EntityType: "user",
		EntityID:   resp.User.ID,
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, resp)
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.LoginRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	resp, err := h.svc.Login(requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     resp.User.ID,
		Action:     "login",
		EntityType: "user",
		EntityID:   resp.User.ID,
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AuthHandler) Me(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	user, err := h.svc.GetProfile(claims.UserID)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}
