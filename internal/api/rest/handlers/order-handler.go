package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/launchpad-backend/internal/api/rest/middleware"
	"github.com/tyforge/launchpad-backend/internal/dto"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/services"
)

type OrderHandler struct {
	svc      services.OrderService
	userSvc  services.UserService
	activity services.ActivityService
	auth     helper.Auth
	maxSize  int64
}

func NewOrderHandler(svc services.OrderService, userSvc services.UserService,
	activity services.ActivityService, auth helper.Auth, maxSize int64) *OrderHandler {
	return &OrderHandler{svc: svc, userSvc: userSvc, activity: activity, auth: auth, maxSize: maxSize}
}

func (h *OrderHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")

	orders := api.Group("/orders", middleware.AuthMiddleware(h.auth))
	orders.Post("/", h.Create)
	orders.Get("/", h.ListMine)
	orders.Get("/:orderID", h.GetMine)
	orders.Post("/:orderID/payment-proof", h.UploadProof)
	orders.Get("/:orderID/payment-proof", h.GetProof)

	admin := api.Group("/admin/orders",
		middleware.AuthMiddleware(h.auth), middleware.AdminOnly(h.userSvc))
	admin.Get("/", h.AdminList)
	admin.Get("/:orderID", h.AdminGet)
	admin.Patch("/:orderID", h.AdminUpdate)
	admin.Get("/:orderID/payment-proof", h.AdminGetProof)
	admin.Post("/:orderID/approve-payment", h.ApprovePayment)
}

func (h *OrderHandler) Create(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	var requestBody dto.OrderCreateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	order, err := h.svc.Create(claims.UserID, requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusCreated, order)
}

func (h *OrderHandler) ListMine(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	orders, err := h.svc.ListMine(claims.UserID)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, orders)
}

func (h *OrderHandler) GetMine(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	order, err := h.svc.GetMine(ctx.Params("orderID"), claims.UserID)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, order)
}

func (h *OrderHandler) UploadProof(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	filename, data, err := readUpload(ctx, "file", h.maxSize)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	resp, err := h.svc.UploadPaymentProof(ctx.Params("orderID"), claims.UserID, filename, data)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     claims.UserID,
		Action:     "upload_payment_proof",
		EntityType: "order",
		EntityID:   resp.OrderID,
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *OrderHandler) GetProof(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	rc, name, err := h.svc.GetProof(ctx.Params("orderID"), claims.UserID)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	ctx.Set(fiber.HeaderContentDisposition, `inline; filename="`+name+`"`)
	ctx.Set(fiber.HeaderContentType, "image/jpeg")
	return ctx.SendStream(rc)
}

func (h *OrderHandler) AdminList(ctx *fiber.Ctx) error {
	orders, err := h.svc.AdminList(queryInt(ctx, "limit", 50), queryInt(ctx, "offset", 0))
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, orders)
}

func (h *OrderHandler) AdminGet(ctx *fiber.Ctx) error {
	order, err := h.svc.AdminGet(ctx.Params("orderID"))
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, order)
}

func (h *OrderHandler) AdminUpdate(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	var requestBody dto.OrderUpdateRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "please provide valid inputs")
	}

	order, err := h.svc.AdminUpdate(ctx.Params("orderID"), requestBody)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     claims.UserID,
		Action:     "update_order",
		EntityType: "order",
		EntityID:   order.ID,
		Details:    map[string]any{"status": string(order.Status)},
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	return utils.ResponseSuccess(ctx, fiber.StatusOK, order)
}

func (h *OrderHandler) AdminGetProof(ctx *fiber.Ctx) error {
	rc, name, err := h.svc.AdminGetProof(ctx.Params("orderID"))
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	ctx.Set(fiber.HeaderContentDisposition, `inline; filename="`+name+`"`)
	ctx.Set(fiber.HeaderContentType, "image/jpeg")
	return ctx.SendStream(rc)
}

func (h *OrderHandler) ApprovePayment(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	order, err := h.svc.ApprovePayment(ctx.Params("orderID"), claims.UserID)
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}

	h.activity.Record(dto.ActivityEntry{
		UserID:     claims.UserID,
		Action:     "approve_payment",
		EntityType: "order",
		EntityID:   order.ID,
		IPAddress:  ctx.IP(),
		UserAgent:  ctx.Get("User-Agent"),
	})

	return utils.ResponseSuccess(ctx, fiber.StatusOK, order)
}
