package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/launchpad-backend/internal/api/rest/middleware"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/services"
)

type IdeaHandler struct {
	svc      services.IdeaService
	userSvc  services.UserService
	activity services.ActivityService
	auth     helper.Auth
}

func NewIdeaHandler(svc services.IdeaService, userSvc services.UserService,
	activity services.ActivityService, auth helper.Auth) *IdeaHandler {
	return &IdeaHandler{svc: svc, userSvc: userSvc, activity: activity, auth: auth}
}

// The generation endpoints are public with optional auth: guests are
// tracked by phone number, logged-in students by account.
func (h *IdeaHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	ideas := api.Group("/ideas", middleware.OptionalAuth(h.auth))
	ideas.Post("/generate", h.Generate)
	ideas.Get("/count", h.Count)
	ideas.Post("/submit", h.Submit)
	ideas.Post("/approved", h.SubmitApproved)

	authed := api.Group("/ideas", middleware.AuthMiddleware(h.auth))
	authed.Get("/history", h.History)
	authed.Post("/chat", h.Chat)

	admin := api.Group("/admin/ideas",
		middleware.AuthMiddleware(h.auth), middleware.AdminOnly(h.userSvc))
	admin.Get("/submissions", h.ListSubmissions)
	admin.Get("/approved", h.ListApproved)
}

func currentUserID(ctx *fiber.Ctx) string {
	if id, ok := ctx.Locals("userID").(string); ok {
		return id
	}
	return ""
}

func (h *IdeaHandler) Generate(ctx *fiber.Ctx) error {
	var requestBody dto.IdeaGenerateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "field_of_interest is required")
	}

	userID := currentUserID(ctx)
	resp, err := h.svc.Generate(ctx.UserContext(), userID, requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     userID,
		Action:     "generate_idea",
		EntityType: "idea",
		Details:    map[string]any{"field": resp.Field},
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *IdeaHandler) Count(ctx *fiber.Ctx) error {
	resp, err := h.svc.Count(currentUserID(ctx), ctx.Query("phone"))
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *IdeaHandler) Submit(ctx *fiber.Ctx) error {
	var requestBody dto.IdeaSubmitRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	resp, err := h.svc.SubmitIdea(currentUserID(ctx), requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *IdeaHandler) SubmitApproved(ctx *fiber.Ctx) error {
	var requestBody dto.ApprovedIdeaSubmitRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	sub, err := h.svc.SubmitApprovedIdea(requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, sub)
}

func (h *IdeaHandler) History(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	history, err := h.svc.ListMyHistory(claims.UserID, queryInt(ctx, "limit", 20))
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, history)
}

func (h *IdeaHandler) Chat(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	var requestBody dto.ChatRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	resp, err := h.svc.Chat(ctx.UserContext(), claims.UserID, requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *IdeaHandler) ListSubmissions(ctx *fiber.Ctx) error {
	subs, err := h.svc.ListSubmissions(queryInt(ctx, "limit", 50), queryInt(ctx, "offset", 0))
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, subs)
}

func (h *IdeaHandler) ListApproved(ctx *fiber.Ctx) error {
	subs, err := h.svc.ListApprovedIdeas(queryInt(ctx, "limit", 50), queryInt(ctx, "offset", 0))
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, subs)
}
