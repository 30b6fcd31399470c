package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/launchpad-backend/internal/api/rest/middleware"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/services"
)

type UserHandler struct {
	svc      services.UserService
	activity services.ActivityService
	auth     helper.Auth
}

func NewUserHandler(svc services.UserService, activity services.ActivityService, auth helper.Auth) *UserHandler {
	return &UserHandler{svc: svc, activity: activity, auth: auth}
}

func (h *UserHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	user := api.Group("/user", middleware.AuthMiddleware(h.auth))
	user.Get("/profile", h.GetProfile)
	user.Patch("/profile", h.UpdateProfile)
	user.Post("/select-plan", h.SelectPlan)

	admin := api.Group("/admin/users",
		middleware.AuthMiddleware(h.auth), middleware.AdminOnly(h.svc))
	admin.Get("/", h.ListUsers)
	admin.Get("/:userID", h.GetUser)
	admin.Delete("/:userID", h.DeleteUser)
}

func (h *UserHandler) GetProfile(ctx *fiber.Ctx) error {
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

func (h *UserHandler) UpdateProfile(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	var requestBody dto.UpdateUserRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	user, err := h.svc.UpdateProfile(claims.UserID, requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}

func (h *UserHandler) SelectPlan(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	var requestBody dto.SelectPlanRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "plan_id is required")
	}

	resp, err := h.svc.SelectPlan(claims.UserID, requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     claims.UserID,
		Action:     "select_plan",
		EntityType: "order",
		EntityID:   resp.OrderID,
		Details:    map[string]any{"plan_id": resp.PlanID, "plan_name": resp.PlanName},
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, resp)
}

func (h *UserHandler) ListUsers(ctx *fiber.Ctx) error {
	users, err := h.svc.ListUsers(queryInt(ctx, "limit", 50), queryInt(ctx, "offset", 0))
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, users)
}

func (h *UserHandler) GetUser(ctx *fiber.Ctx) error {
	user, err := h.svc.GetUser(ctx.Params("userID"))
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, user)
}

func (h *UserHandler) DeleteUser(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	targetID := ctx.Params("userID")
	if err := h.svc.DeleteUser(targetID); err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     claims.UserID,
		Action:     "delete_user",
		EntityType: "user",
		EntityID:   targetID,
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"deleted": targetID})
}
