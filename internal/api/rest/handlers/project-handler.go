package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/launchpad-backend/internal/api/rest/middleware"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/services"
)

type ProjectHandler struct {
	svc      services.ProjectService
	userSvc  services.UserService
	activity services.ActivityService
	auth     helper.Auth
	maxSize  int64
}

func NewProjectHandler(svc services.ProjectService, userSvc services.UserService,
	activity services.ActivityService, auth helper.Auth, maxSize int64) *ProjectHandler {
	return &ProjectHandler{svc: svc, userSvc: userSvc, activity: activity, auth: auth, maxSize: maxSize}
}

func (h *ProjectHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	projects := api.Group("/projects", middleware.AuthMiddleware(h.auth))
	projects.Post("/", h.Create)
	projects.Get("/", h.ListMine)
	projects.Get("/download", h.DownloadDeliverable)
	projects.Get("/:projectID", h.GetMine)
	projects.Patch("/:projectID", h.Update)

	admin := api.Group("/admin/projects",
		middleware.AuthMiddleware(h.auth), middleware.AdminOnly(h.userSvc))
	admin.Get("/", h.AdminList)
	admin.Get("/:projectID", h.AdminGet)
	admin.Patch("/:projectID", h.AdminUpdate)
	admin.Post("/deliverable/:userID", h.UploadDeliverable)
	admin.Get("/download/:userID", h.AdminDownloadDeliverable)
	admin.Post("/share-url", h.ShareURL)
}

func (h *ProjectHandler) Create(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	var requestBody dto.ProjectCreateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	project, err := h.svc.Create(claims.UserID, requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, project)
}

func (h *ProjectHandler) ListMine(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	projects, err := h.svc.ListMine(claims.UserID)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, projects)
}

func (h *ProjectHandler) GetMine(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	project, err := h.svc.GetMine(ctx.Params("projectID"), claims.UserID)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, project)
}

func (h *ProjectHandler) Update(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	var requestBody dto.ProjectUpdateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	project, err := h.svc.Update(ctx.Params("projectID"), claims.UserID, requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, project)
}

// DownloadDeliverable is the student-facing gate: payment first, then the
// file, then the admin's approval.
func (h *ProjectHandler) DownloadDeliverable(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	rc, name, err := h.svc.DownloadDeliverable(claims.UserID, false)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     claims.UserID,
		Action:     "download_deliverable",
		EntityType: "project",
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	ctx.Set(fiber.HeaderContentType, "application/octet-stream")
	return ctx.SendStream(rc)
}

// AdminDownloadDeliverable fetches any student's deliverable without the
// payment or approval gates.
func (h *ProjectHandler) AdminDownloadDeliverable(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	ownerID := ctx.Params("userID")
	rc, name, err := h.svc.DownloadDeliverable(ownerID, true)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     claims.UserID,
		Action:     "download_deliverable",
		EntityType: "project",
		EntityID:   ownerID,
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	ctx.Set(fiber.HeaderContentType, "application/octet-stream")
	return ctx.SendStream(rc)
}

func (h *ProjectHandler) AdminList(ctx *fiber.Ctx) error {
	projects, err := h.svc.AdminList(queryInt(ctx, "limit", 50), queryInt(ctx, "offset", 0))
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, projects)
}

func (h *ProjectHandler) AdminGet(ctx *fiber.Ctx) error {
	project, err := h.svc.AdminGet(ctx.Params("projectID"))
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, project)
}

func (h *ProjectHandler) AdminUpdate(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	var requestBody dto.AdminProjectUpdateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	project, err := h.svc.AdminUpdate(ctx.Params("projectID"), requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     claims.UserID,
		Action:     "update_project",
		EntityType: "project",
		EntityID:   project.ID,
		Details:    map[string]any{"status": string(project.Status)},
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	return utils.ResponseSuccess(ctx, fiber.StatusOK, project)
}

func (h *ProjectHandler) UploadDeliverable(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	filename, data, err := readUpload(ctx, "file", h.maxSize)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	project, err := h.svc.UploadDeliverable(ctx.Params("userID"), filename, data)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     claims.UserID,
		Action:     "upload_deliverable",
		EntityType: "project",
		EntityID:   project.ID,
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	return utils.ResponseSuccess(ctx, fiber.StatusOK, project)
}

func (h *ProjectHandler) ShareURL(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	var requestBody dto.ShareProjectURLRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	project, err := h.svc.ShareDownloadURL(requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     claims.UserID,
		Action:     "share_project_url",
		EntityType: "project",
		EntityID:   project.ID,
		Details:    map[string]any{"approved": project.URLApproved},
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	return utils.ResponseSuccess(ctx, fiber.StatusOK, project)
}
