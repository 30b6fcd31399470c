package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tyforge/launchpad-backend/internal/helper/utils"
	"github.com/tyforge/launchpad-backend/internal/services"
)

type PlanHandler struct {
	svc services.PlanService
}

func NewPlanHandler(svc services.PlanService) *PlanHandler {
	return &PlanHandler{svc: svc}
}

// Plans are public: the pricing page renders before signup.
func (h *PlanHandler) SetupRoutes(app *fiber.App) {
	api := app.Group("/api")
	api.Get("/plans", h.ListPlans)
	api.Get("/plans/:planID", h.GetPlan)
}

func (h *PlanHandler) ListPlans(ctx *fiber.Ctx) error {
	plans, err := h.svc.List()
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, plans)
}

func (h *PlanHandler) GetPlan(ctx *fiber.Ctx) error {
	plan, err := h.svc.Get(ctx.Params("planID"))
	if err != nil {
		return utils.ResponseAppError(ctx, err)
	}
	return utils.ResponseSuccess(ctx, fiber.StatusOK, plan)
}
