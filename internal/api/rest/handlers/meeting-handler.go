package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/launchpad-backend/internal/api/rest/middleware"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/services"
)

type MeetingHandler struct {
	svc     services.MeetingService
	userSvc services.UserService
	auth    helper.Auth
}

func NewMeetingHandler(svc services.MeetingService, userSvc services.UserService, auth helper.Auth) *MeetingHandler {
	return &MeetingHandler{svc: svc, userSvc: userSvc, auth: auth}
}

func (h *MeetingHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	meetings := api.Group("/meetings", middleware.AuthMiddleware(h.auth))
	meetings.Post("/", h.Request)
	meetings.Get("/", h.ListMine)
	meetings.Post("/:meetingID/cancel", h.Cancel)

	admin := api.Group("/admin/meetings",
		middleware.AuthMiddleware(h.auth), middleware.AdminOnly(h.userSvc))
	admin.Get("/", h.AdminList)
	admin.Patch("/:meetingID", h.AdminUpdate)
}

func (h *MeetingHandler) Request(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	var requestBody dto.MeetingCreateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	meeting, err := h.svc.Request(claims.UserID, requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, meeting)
}

func (h *MeetingHandler) ListMine(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	meetings, err := h.svc.ListMine(claims.UserID)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, meetings)
}

func (h *MeetingHandler) Cancel(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	meeting, err := h.svc.Cancel(ctx.Params("meetingID"), claims.UserID)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, meeting)
}

func (h *MeetingHandler) AdminList(ctx *fiber.Ctx) error {
	meetings, err := h.svc.AdminList(queryInt(ctx, "limit", 50), queryInt(ctx, "offset", 0))
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, meetings)
}

func (h *MeetingHandler) AdminUpdate(ctx *fiber.Ctx) error {
	var requestBody dto.MeetingUpdateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	meeting, err := h.svc.AdminUpdate(ctx.Params("meetingID"), requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, meeting)
}
