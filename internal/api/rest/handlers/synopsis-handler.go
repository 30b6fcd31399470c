package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/launchpad-backend/internal/api/rest/middleware"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/services"
)

type SynopsisHandler struct {
	svc      services.SynopsisService
	userSvc  services.UserService
	activity services.ActivityService
	auth     helper.Auth
	maxSize  int64
}

func NewSynopsisHandler(svc services.SynopsisService, userSvc services.UserService,
	activity services.ActivityService, auth helper.Auth, maxSize int64) *SynopsisHandler {
	return &SynopsisHandler{svc: svc, userSvc: userSvc, activity: activity, auth: auth, maxSize: maxSize}
}

func (h *SynopsisHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	synopsis := api.Group("/synopsis", middleware.AuthMiddleware(h.auth))
	synopsis.Post("/", h.Upload)
	synopsis.Get("/", h.ListMine)
	synopsis.Get("/:synopsisID/download", h.Download)
	synopsis.Get("/:synopsisID", h.GetMine)

	admin := api.Group("/admin/synopsis",
		middleware.AuthMiddleware(h.auth), middleware.AdminOnly(h.userSvc))
	admin.Get("/", h.AdminList)
	admin.Patch("/:synopsisID", h.Review)
	admin.Get("/:synopsisID/download", h.Download)
}

func (h *SynopsisHandler) Upload(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	filename, data, err := readUpload(ctx, "file", h.maxSize)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	synopsis, err := h.svc.Upload(claims.UserID, filename, data)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     claims.UserID,
		Action:     "upload_synopsis",
		EntityType: "synopsis",
		EntityID:   synopsis.ID,
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, synopsis)
}

func (h *SynopsisHandler) ListMine(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	synopses, err := h.svc.ListMine(claims.UserID)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, synopses)
}

func (h *SynopsisHandler) GetMine(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	synopsis, err := h.svc.GetMine(ctx.Params("synopsisID"), claims.UserID)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, synopsis)
}

func (h *SynopsisHandler) Download(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	rc, name, err := h.svc.Download(ctx.Params("synopsisID"), claims)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	ctx.Set(fiber.HeaderContentType, "application/pdf")
	return ctx.SendStream(rc)
}

func (h *SynopsisHandler) AdminList(ctx *fiber.Ctx) error {
	synopses, err := h.svc.AdminList(ctx.Query("status"),
		queryInt(ctx, "limit", 50), queryInt(ctx, "offset", 0))
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, synopses)
}

func (h *SynopsisHandler) Review(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	var requestBody dto.SynopsisReviewRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	synopsis, err := h.svc.Review(ctx.Params("synopsisID"), requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     claims.UserID,
		Action:     "review_synopsis",
		EntityType: "synopsis",
		EntityID:   synopsis.ID,
		Details:    map[string]any{"status": string(synopsis.Status)},
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	return utils.ResponseSuccess(ctx, fiber.StatusOK, synopsis)
}
