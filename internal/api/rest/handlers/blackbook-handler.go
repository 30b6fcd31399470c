package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/launchpad-backend/internal/api/rest/middleware"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/services"
)

type BlackbookHandler struct {
	svc      services.BlackbookService
	userSvc  services.UserService
	activity services.ActivityService
	auth     helper.Auth
	maxSize  int64
}

func NewBlackbookHandler(svc services.BlackbookService, userSvc services.UserService,
	activity services.ActivityService, auth helper.Auth, maxSize int64) *BlackbookHandler {
	return &BlackbookHandler{svc: svc, userSvc: userSvc, activity: activity, auth: auth, maxSize: maxSize}
}

func (h *BlackbookHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	blackbook := api.Group("/blackbook", middleware.AuthMiddleware(h.auth))
	blackbook.Get("/download", h.Download)

	admin := api.Group("/admin/blackbook",
		middleware.AuthMiddleware(h.auth), middleware.AdminOnly(h.userSvc))
	admin.Post("/", h.Upload)
}

func (h *BlackbookHandler) Download(ctx *fiber.Ctx) error {
	if _, err := h.auth.GetCurrentUser(ctx); err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	rc, name, err := h.svc.Download()
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.SendStream(rc)
}

func (h *BlackbookHandler) Upload(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	filename, data, err := readUpload(ctx, "file", h.maxSize)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	if _, err := h.svc.Upload(filename, data); err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     claims.UserID,
		Action:     "upload_blackbook",
		EntityType: "blackbook",
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{"message": "blackbook uploaded"})
}
