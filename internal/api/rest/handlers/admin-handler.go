package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/launchpad-backend/internal/api/rest/middleware"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/services"
)

type AdminHandler struct {
	svc      services.AdminService
	userSvc  services.UserService
	activity services.ActivityService
	auth     helper.Auth
}

func NewAdminHandler(svc services.AdminService, userSvc services.UserService,
	activity services.ActivityService, auth helper.Auth) *AdminHandler {
	return &AdminHandler{svc: svc, userSvc: userSvc, activity: activity, auth: auth}
}

func (h *AdminHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	// Students file and read their own support requests.
	requests := api.Group("/requests", middleware.AuthMiddleware(h.auth))
	requests.Post("/", h.CreateRequest)
	requests.Get("/", h.ListMyRequests)

	admin := api.Group("/admin",
		middleware.AuthMiddleware(h.auth), middleware.AdminOnly(h.userSvc))
	admin.Get("/requests", h.ListRequests)
	admin.Patch("/requests/:requestID", h.UpdateRequest)
	admin.Get("/stats", h.Stats)
	admin.Get("/overview", h.UserOverview)
	admin.Get("/activity", h.ActivityLogs)
}

func (h *AdminHandler) CreateRequest(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	var requestBody dto.AdminRequestCreate
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	req, err := h.svc.CreateRequest(claims.UserID, requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, req)
}

func (h *AdminHandler) ListMyRequests(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	reqs, err := h.svc.ListMyRequests(claims.UserID)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, reqs)
}

func (h *AdminHandler) ListRequests(ctx *fiber.Ctx) error {
	reqs, err := h.svc.ListRequests(queryInt(ctx, "limit", 50), queryInt(ctx, "offset", 0))
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, reqs)
}

func (h *AdminHandler) UpdateRequest(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	var requestBody dto.AdminRequestUpdate
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	req, err := h.svc.UpdateRequest(ctx.Params("requestID"), claims.UserID, requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     claims.UserID,
		Action:     "respond_request",
		EntityType: "admin_request",
		EntityID:   req.ID,
		Details:    map[string]any{"status": string(req.Status)},
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	return utils.ResponseSuccess(ctx, fiber.StatusOK, req)
}

func (h *AdminHandler) Stats(ctx *fiber.Ctx) error {
	stats, err := h.svc.Stats()
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, stats)
}

func (h *AdminHandler) UserOverview(ctx *fiber.Ctx) error {
	rows, err := h.svc.UserOverview(queryInt(ctx, "limit", 50), queryInt(ctx, "offset", 0))
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, rows)
}

func (h *AdminHandler) ActivityLogs(ctx *fiber.Ctx) error {
	userID := ctx.Query("user_id")
	limit, offset := queryInt(ctx, "limit", 50), queryInt(ctx, "offset", 0)

	if userID != "" {
		logs, err := h.activity.ListByUser(userID, limit, offset)
		if err != nil {
			return utils.ResponseAppError(ctx, err)
		}
		return utils.ResponseSuccess(ctx, fiber.StatusOK, logs)
	}

	logs, err := h.activity.List(limit, offset)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, logs)
}
