package repository

import (
	"github.com/tyforge/launchpad-backend/internal/apperr"
	"github.com/tyforge/launchpad-backend/internal/domain"
	"github.com/tyforge/launchpad-backend/internal/helper"
	"gorm.io/gorm"
)

type PlanRepository interface {
	ListPlans() ([]domain.Plan, error)
	FindPlanByID(planID string) (*domain.Plan, error)
	UpsertPlan(plan *domain.Plan) error
}

type planRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

func (r *planRepository) ListPlans() ([]domain.Plan, error) {
	var plans []domain.Plan
	err := r.db.Order("price ASC").Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *planRepository) FindPlanByID(planID string) (*domain.Plan, error) {
	plan := &domain.Plan{}
	if err := r.db.First(plan, "id = ?", planID).Error; err != nil {
		if helper.IsNotFound(err) {
			return nil, apperr.NotFound("plan not found")
		}
		return nil, err
	}
	return plan, nil
}

// UpsertPlan is used by the seed routine; existing plans keep their id but
// pick up name/price changes.
func (r *planRepository) UpsertPlan(plan *domain.Plan) error {
	existing := &domain.Plan{}
	err := r.db.First(existing, "id = ?", plan.ID).Error
	if err != nil {
		if helper.IsNotFound(err) {
			return r.db.Create(plan).Error
		}
		return err
	}
	existing.Name = plan.Name
	existing.Price = plan.Price
	existing.Description = plan.Description
	existing.Features = plan.Features
	existing.BlogIncluded = plan.BlogIncluded
	existing.MaxProjects = plan.MaxProjects
	existing.SupportLevel = plan.SupportLevel
	return r.db.Save(existing).Error
}
